// Seeds the question banks and media links into an existing database.
//
// The server does the same with -seed; this script is for loading content
// without starting the API, e.g. right after provisioning the database.
//
// Usage: go run scripts/seed_content.go -file configs/seed.yaml

package main

import (
	"flag"
	"log"

	"pengasuh_backend/internal/config"
	"pengasuh_backend/pkg/database"
	"pengasuh_backend/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	configDir := flag.String("config", "configs", "directory containing config.yaml")
	seedFile := flag.String("file", "configs/seed.yaml", "seed file to load")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	db, err := database.InitDB(&cfg.Database, false, true)
	if err != nil {
		logger.Log.Fatal("Database connection failed", zap.Error(err))
	}

	if err := database.Seed(db, *seedFile); err != nil {
		logger.Log.Fatal("Seeding failed", zap.String("file", *seedFile), zap.Error(err))
	}
	logger.Log.Info("Seeding finished", zap.String("file", *seedFile))
}
