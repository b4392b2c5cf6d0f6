package database

import (
	"database/sql"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/openshelf/catalog/internal/config"
	"github.com/openshelf/catalog/internal/entities"
)

// Driver names for the two supported stores.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Database struct {
	DB     *gorm.DB
	driver string
}

// NewDatabase opens the catalog database and runs migrations.
// A configured DB_HOST selects Postgres; otherwise a local SQLite file
// is used, which is also what the test suite runs against.
func NewDatabase(cfg config.Database) (*Database, error) {
	var dialector gorm.Dialector
	driver := DriverSQLite

	if cfg.Host != "" {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
		)
		dialector = postgres.Open(dsn)
		driver = DriverPostgres
	} else {
		dialector = sqlite.Open(cfg.Path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Comment deliberately carries no foreign key to Book: deleting a
	// book leaves its comments orphaned rather than cascading.
	err = db.AutoMigrate(
		&entities.Book{},
		&entities.Comment{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized (%s)", driver)

	return &Database{DB: db, driver: driver}, nil
}

// Driver returns the name of the underlying store.
func (d *Database) Driver() string {
	return d.driver
}

// SQLDB exposes the underlying *sql.DB, used by the session store.
func (d *Database) SQLDB() (*sql.DB, error) {
	return d.DB.DB()
}

func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
