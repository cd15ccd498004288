package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StorageDatabase = "database"
)

// Config carries everything the server reads from the environment.
// A .env file in the working directory is honored for local runs.
type Config struct {
	Port           int
	StorageBackend string // memory | database
	DBDriver       string // postgres | mysql
	DatabaseURL    string
	UploadDir      string
	JWTSecret      string

	// Bootstrap admin account, created at startup when it does not exist.
	AdminUsername string
	AdminPassword string

	SeedDemoData bool
}

func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:           8080,
		StorageBackend: getEnv("STORAGE", StorageMemory),
		DBDriver:       getEnv("DB_DRIVER", "postgres"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		UploadDir:      getEnv("UPLOAD_DIR", "public/uploads"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-only-secret-change-me"),
		AdminUsername:  os.Getenv("ADMIN_USERNAME"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		SeedDemoData:   getEnv("SEED_DEMO_DATA", "true") == "true",
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
		}
		cfg.Port = port
	}

	switch cfg.StorageBackend {
	case StorageMemory, StorageDatabase:
	default:
		return nil, fmt.Errorf("invalid STORAGE %q (want %q or %q)", cfg.StorageBackend, StorageMemory, StorageDatabase)
	}

	if cfg.StorageBackend == StorageDatabase && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when STORAGE=database")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
