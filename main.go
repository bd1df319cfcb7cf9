// @title Pengasuh API
// @version 1.0
// @description Backend untuk aplikasi asesmen mandiri kesehatan mental pengasuh.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"pengasuh_backend/internal/app"
	"pengasuh_backend/internal/config"
	"pengasuh_backend/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	migrate := flag.Bool("migrate", false, "force migrations at startup, even in release mode")
	seed := flag.String("seed", "", "load question banks and media from this YAML file")
	flag.Parse()

	// A missing .env is fine; real deployments use the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly
	cfg.SeedFile = *seed

	application, err := app.NewApp(cfg)
	if err != nil {
		app.Fatal(err)
	}
	defer logger.Log.Sync()

	if *migrateOnly {
		logger.Log.Info("Database migration finished, exiting")
		return
	}

	application.Run()
}
