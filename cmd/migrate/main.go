package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Jaymi-01/framez/internal/config"
	"github.com/Jaymi-01/framez/internal/database"
	"github.com/Jaymi-01/framez/internal/logger"
)

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "up", "reset":
	default:
		fmt.Println("Usage: migrate [up|reset]")
		fmt.Println("  up    - Create or update all tables and indexes")
		fmt.Println("  reset - Drop all tables, then migrate (destroys data)")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	if err := database.Initialize(cfg); err != nil {
		logger.FatalWithFields("Failed to connect to database", err)
	}
	defer database.Close()

	if command == "reset" {
		logger.Log.Warn("Dropping all tables")
		if err := database.Reset(); err != nil {
			logger.FatalWithFields("Reset failed", err)
		}
	}

	if err := database.Migrate(); err != nil {
		logger.FatalWithFields("Migration failed", err)
	}
	logger.Log.Info("All migrations completed successfully")
}
