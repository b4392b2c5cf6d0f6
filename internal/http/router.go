package http

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/catalog/internal/auth"
	"github.com/openshelf/catalog/internal/database"
)

// RouterConfig carries all dependencies for router construction, so the
// handler layer never reaches for process-wide state.
type RouterConfig struct {
	Books            BookStore
	Comments         CommentStore
	Authorizer       auth.Authorizer
	SessionManager   *auth.SessionManager
	Database         *database.Database
	TemplatesPath    string
	StaticPath       string
	CSRFSecret       []byte
	SecureCookies    bool
	StrictValidation bool
	Version          string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(auth.SecurityHeadersMiddleware())

	// CSRF must run before session load so the session context is
	// layered on top of CSRF's request replacement.
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}

	tmpl := template.Must(template.New("").ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	router.Static("/static", cfg.StaticPath)

	catalog := NewCatalogController(cfg.Books, cfg.Comments, cfg.Authorizer, cfg.StrictValidation)
	health := NewHealthController(cfg.Database, cfg.Version)

	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	router.GET("/", catalog.BooksPage)
	router.GET("/add", catalog.AddBookPage)
	router.POST("/add", catalog.AddBook)
	router.GET("/book/:id", catalog.BookPage)
	router.POST("/book/:id/notes", catalog.UpdateBookNotes)
	router.POST("/book/:id/edit", catalog.EditBook)
	router.POST("/book/:id/delete", catalog.DeleteBook)
	router.POST("/edit-notes", catalog.EditNotes)
	router.POST("/comment", catalog.AddComment)

	return router
}
