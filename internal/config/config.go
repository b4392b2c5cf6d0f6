package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Auth
		Catalog
		UI
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		// Postgres connection values. When Host is empty the catalog
		// falls back to a local SQLite file at Path.
		Host     string
		Port     int
		User     string
		Password string
		Name     string
		Path     string
	}
	Auth struct {
		AdminToken       string
		AdminTokenHashed bool // AdminToken holds a bcrypt hash instead of the plaintext secret
		SessionsEnabled  bool
		SessionLifetime  time.Duration
		SecureCookies    bool
		CSRFSecret       string
	}
	Catalog struct {
		StrictValidation bool
	}
	UI struct {
		TemplatesPath string
		StaticPath    string
	}
	Global struct {
		Environment              string
		ShutdownTimeoutInSeconds int
	}
)

// IsProduction reports whether the process runs in production mode.
// Outside production a local .env file is merged into the environment.
func (g Global) IsProduction() bool {
	return g.Environment == EnvProduction
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 3000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("app_env", EnvDevelopment)
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	v.SetDefault("db_host", "")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "")
	v.SetDefault("database_path", DefaultDatabasePath)

	v.SetDefault("admin_token", "")
	v.SetDefault("admin_token_hashed", false)
	v.SetDefault("sessions_enabled", false)
	v.SetDefault("session_lifetime", "24h")
	v.SetDefault("secure_cookies", true)
	v.SetDefault("csrf_secret", "")

	v.SetDefault("strict_validation", false)

	v.SetDefault("templates_path", "./templates")
	v.SetDefault("static_path", "./static")

	// Merge a local .env file outside production, matching the original
	// deployment which loaded dotenv config in development.
	if v.GetString("APP_ENV") != EnvProduction {
		v.SetConfigFile(".env")
		v.SetConfigType("env")
		_ = v.MergeInConfig() // missing .env is fine
	}

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			Path:     v.GetString("DATABASE_PATH"),
		},
		Auth: Auth{
			AdminToken:       v.GetString("ADMIN_TOKEN"),
			AdminTokenHashed: v.GetBool("ADMIN_TOKEN_HASHED"),
			SessionsEnabled:  v.GetBool("SESSIONS_ENABLED"),
			SessionLifetime:  v.GetDuration("SESSION_LIFETIME"),
			SecureCookies:    v.GetBool("SECURE_COOKIES"),
			CSRFSecret:       v.GetString("CSRF_SECRET"),
		},
		Catalog: Catalog{
			StrictValidation: v.GetBool("STRICT_VALIDATION"),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
			StaticPath:    v.GetString("STATIC_PATH"),
		},
		Global: Global{
			Environment:              v.GetString("APP_ENV"),
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
