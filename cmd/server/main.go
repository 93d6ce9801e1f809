package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/music-box/internal/catalog"
	"github.com/MKhiriev/music-box/internal/config"
	"github.com/MKhiriev/music-box/internal/handler"
	"github.com/MKhiriev/music-box/internal/identity"
	"github.com/MKhiriev/music-box/internal/logger"
	"github.com/MKhiriev/music-box/internal/secrets"
	"github.com/MKhiriev/music-box/internal/server"
	"github.com/MKhiriev/music-box/internal/service"
	"github.com/MKhiriev/music-box/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("music-box-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	secretsLoader := secrets.NewLoader(secrets.NewHTTPStore(cfg.Secrets), log)

	apiKey := secretsLoader.Resolve(ctx, cfg.App.APIKey, cfg.App.APIKeySecretRef)
	if apiKey == "" {
		log.Warn().Msg("device api key is not configured, play routes will reject every request")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, catalog.NewClient(cfg.AppleMusic, log), secretsLoader, cfg, log)

	verifier := identity.NewVerifier(cfg.Identity, log)

	handlers, err := handler.NewHandlers(services, verifier, apiKey, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
