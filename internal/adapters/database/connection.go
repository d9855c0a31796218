// Package database provides the GORM connection and repositories for
// persisted location entries.
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"imsweather.app/internal/config"
	"imsweather.app/pkg/errors"
)

// Open connects to the configured database and migrates the schema
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DatabaseDriverPostgres:
		dialector = postgres.Open(cfg.GetDSN())
	case config.DatabaseDriverSQLite:
		dialector = sqlite.Open(cfg.GetDSN())
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported database driver: %s", cfg.Driver.String()), nil)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.NewDatabaseError("connect to database", err)
	}

	if err := RunMigrations(db); err != nil {
		_ = Close(db)
		return nil, err
	}

	return db, nil
}

// RunMigrations executes database schema migrations
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&EntryModel{}); err != nil {
		return errors.NewDatabaseError("migrate database schema", err)
	}
	return nil
}

// Close safely closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
