package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/config"
	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/database"
	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/models"
	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/routes"
	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	if err := ensureAdminUser(store, cfg); err != nil {
		log.Fatalf("Failed to create bootstrap admin: %v", err)
	}

	r := routes.SetupRouter(store, cfg)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("Starting server on %s (storage=%s)", addr, cfg.StorageBackend)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func buildStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case config.StorageDatabase:
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
		return storage.NewDB(db), nil
	default:
		store := storage.NewMemory()
		if cfg.SeedDemoData {
			if err := storage.SeedDemoData(store); err != nil {
				return nil, err
			}
			log.Println("Memory store seeded with demo rally data.")
		}
		return store, nil
	}
}

// ensureAdminUser creates the ADMIN_USERNAME account on first start so
// the admin dashboard is reachable without manual database edits.
func ensureAdminUser(store storage.Store, cfg *config.Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Println("No bootstrap admin configured (ADMIN_USERNAME/ADMIN_PASSWORD); admin API will be unreachable until a user exists.")
		return nil
	}

	_, err := store.GetUserByUsername(cfg.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	admin := models.User{Username: cfg.AdminUsername, Password: cfg.AdminPassword}
	if err := store.CreateUser(&admin); err != nil {
		return err
	}
	log.Printf("Bootstrap admin %q created.", cfg.AdminUsername)
	return nil
}
