package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fault-boundary/internal/config"
	"github.com/MKhiriev/go-fault-boundary/internal/handler"
	"github.com/MKhiriev/go-fault-boundary/internal/logger"
	"github.com/MKhiriev/go-fault-boundary/internal/server"
	"github.com/MKhiriev/go-fault-boundary/internal/service"
	"github.com/MKhiriev/go-fault-boundary/internal/store"
	"github.com/MKhiriev/go-fault-boundary/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("fault-boundary-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, *cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
