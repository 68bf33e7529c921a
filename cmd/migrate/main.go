// Command migrate runs the schema migration against the configured database.
// Production deployments run this ahead of the server, which only
// auto-migrates in development.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"northgate/internal/config"
	"northgate/internal/database"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.DemoMode() {
		log.Fatal("No database configured (DB_HOST is empty); nothing to migrate")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration completed successfully")
}
