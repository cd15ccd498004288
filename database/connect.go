package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/config"
	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/models"
)

// Connect opens the configured database and tunes the connection pool.
// TranslateError is on so unique-key violations surface as
// gorm.ErrDuplicatedKey regardless of driver.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dialector = mysql.Open(cfg.DatabaseURL)
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	// Connections older than an hour are re-established before reuse;
	// avoids MySQL wait_timeout drops on quiet event days.
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection established and connection pool configured.")
	return db, nil
}

// Migrate creates or updates the rally tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Challenge{},
		&models.Photo{},
		&models.FacebookAlbum{},
		&models.FacebookPhoto{},
	)
}
