package config

// Environment modes
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// DefaultDatabasePath is the default path for the local SQLite database
// used when no Postgres host is configured.
const DefaultDatabasePath = "./catalog.db"
