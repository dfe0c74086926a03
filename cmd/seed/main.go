package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Jaymi-01/framez/internal/config"
	"github.com/Jaymi-01/framez/internal/database"
	"github.com/Jaymi-01/framez/internal/logger"
	"github.com/Jaymi-01/framez/internal/seed"
)

func main() {
	command := "dev"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "dev", "test", "clean":
	default:
		fmt.Println("Usage: seed [dev|test|clean]")
		fmt.Println("  dev   - Seed the database with random users, posts, likes and comments")
		fmt.Println("  test  - Seed a small fixed data set (alice, bob, charlie)")
		fmt.Println("  clean - Remove all rows (use with caution)")
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

	if err := database.Migrate(); err != nil {
		logger.FatalWithFields("Migration failed", err)
	}

	seeder := seed.NewSeeder(database.DB, cfg.ProfilePictures)
	ctx := context.Background()

	switch command {
	case "dev":
		err = seeder.SeedDev(ctx, seed.DevCounts)
	case "test":
		err = seeder.SeedTest(ctx)
	case "clean":
		err = seeder.Clean()
	}
	if err != nil {
		logger.FatalWithFields("Seeding failed", err)
	}

	logger.Log.Info(fmt.Sprintf("Seed %q completed", command))
	if command != "clean" {
		logger.Log.Info(fmt.Sprintf("Seeded accounts use the password %q", seed.DefaultPassword))
	}
}
