package main

import (
	"log"

	"github.com/mahmoudessam820/planpilot/db"
	"github.com/mahmoudessam820/planpilot/internal/auth"
	"github.com/mahmoudessam820/planpilot/internal/config"
	"github.com/mahmoudessam820/planpilot/internal/handlers"
	"github.com/mahmoudessam820/planpilot/internal/router"
)

func main() {
	cfg := config.Load()

	if err := auth.InitJWTSecret(cfg.JWTSecret); err != nil {
		log.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	if err := db.ConnectDatabase(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	handlers.InitUploads(cfg.UploadDir)
	handlers.InitCookieDomain(cfg.Domain)

	r := router.NewRouter(cfg)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
