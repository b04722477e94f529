package main

import (
	"context"

	"github.com/MKhiriev/go-helper-market/internal/adapter"
	"github.com/MKhiriev/go-helper-market/internal/config"
	"github.com/MKhiriev/go-helper-market/internal/handler"
	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/internal/server"
	"github.com/MKhiriev/go-helper-market/internal/service"
	"github.com/MKhiriev/go-helper-market/internal/store"
	"github.com/MKhiriev/go-helper-market/internal/utils"
	"github.com/MKhiriev/go-helper-market/internal/workers"
	"github.com/MKhiriev/go-helper-market/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("helper-market-server")

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("build info")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildInfo.HasVersion() {
		cfg.App.Version = buildInfo.BuildVersion()
	}
	log.SetLevel(cfg.App.LogLevel)

	ctx := context.Background()
	ids := utils.NewUUIDGenerator()

	adapters, err := adapter.NewAdapters(cfg.Backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating backend adapters")
	}

	storages, err := store.NewStorages(ctx, *cfg, adapters, ids, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(adapters, storages, ids, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers.HTTP.Init(), workers.NewWorkers(services, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
