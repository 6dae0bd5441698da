package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/petlink/petlink-api/internal/config"
	"github.com/petlink/petlink-api/internal/models"
)

var db *gorm.DB

// Connect opens the Postgres connection described by the configuration.
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey and can be translated to a Conflict in one place.
func Connect(cfg *config.Config) error {
	var err error
	db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	return nil
}

// Migrate creates or updates the schema for all models.
func Migrate() error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.CareOrder{},
		&models.Proposal{},
		&models.Message{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// GetDB returns the database instance.
func GetDB() *gorm.DB {
	return db
}

// SetDB sets the database instance (used for testing).
func SetDB(d *gorm.DB) {
	db = d
}
