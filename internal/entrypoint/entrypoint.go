package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/catalog/internal/auth"
	"github.com/openshelf/catalog/internal/config"
	"github.com/openshelf/catalog/internal/database"
	"github.com/openshelf/catalog/internal/database/books"
	"github.com/openshelf/catalog/internal/database/comments"
	http_controllers "github.com/openshelf/catalog/internal/http"
)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts it down
// gracefully within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires the catalog together and serves it.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting Openshelf Catalog v%s", version)

	if cfg.Auth.AdminToken == "" {
		log.Printf("WARNING: ADMIN_TOKEN is not set. Admin operations will be rejected for every caller.")
	}

	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	bookRepo := books.NewRepository(db.DB)
	commentRepo := comments.NewRepository(db.DB)

	tokenAuthorizer := auth.NewTokenAuthorizer(cfg.Auth)
	var authorizer auth.Authorizer = tokenAuthorizer

	var sessionManager *auth.SessionManager
	if cfg.Auth.SessionsEnabled {
		sqlDB, err := db.SQLDB()
		if err != nil {
			log.Fatalf("Failed to get SQL DB for sessions: %v", err)
		}
		sessionManager, err = auth.NewSessionManager(sqlDB, db.Driver(), cfg.Auth)
		if err != nil {
			log.Fatalf("Failed to initialize session manager: %v", err)
		}
		authorizer = auth.NewSessionAuthorizer(tokenAuthorizer, sessionManager)
		log.Printf("Admin sessions enabled (lifetime %v)", cfg.Auth.SessionLifetime)
	}

	routerCfg := http_controllers.RouterConfig{
		Books:            bookRepo,
		Comments:         commentRepo,
		Authorizer:       authorizer,
		SessionManager:   sessionManager,
		Database:         db,
		TemplatesPath:    cfg.UI.TemplatesPath,
		StaticPath:       cfg.UI.StaticPath,
		CSRFSecret:       []byte(cfg.Auth.CSRFSecret),
		SecureCookies:    cfg.Auth.SecureCookies,
		StrictValidation: cfg.Catalog.StrictValidation,
		Version:          version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg)
}
