package main

import (
	"fmt"
	"log"

	"invoscan/internal/config"
	"invoscan/internal/handler"
	"invoscan/internal/profile"
	"invoscan/internal/router"
	"invoscan/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	registry, err := profile.NewDefaultRegistry(cfg.Extraction.ProfilesFile)
	if err != nil {
		return fmt.Errorf("failed to load supplier profiles: %w", err)
	}
	log.Printf("loaded %d supplier profiles", registry.Len())

	svc := service.NewExtractionService(registry, cfg.Extraction.CoverageTolerance)

	extractH := handler.NewExtractHandler(svc)
	profileH := handler.NewProfileHandler(svc)
	healthH := handler.NewHealthHandler()

	r := router.Setup(cfg.CORS.AllowedOrigins, extractH, profileH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
