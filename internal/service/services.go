package service

import (
	"github.com/MKhiriev/go-fault-boundary/internal/config"
	"github.com/MKhiriev/go-fault-boundary/internal/logger"
	"github.com/MKhiriev/go-fault-boundary/internal/store"
	"github.com/MKhiriev/go-fault-boundary/models"
)

type Services struct {
	AppInfoService AppInfoService
	FaultJournal   FaultJournal
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	var faultRepository store.FaultRepository
	if storages != nil {
		faultRepository = storages.FaultRepository
	}

	return &Services{
		AppInfoService: NewAppInfoService(cfg.App, buildInfo, logger),
		FaultJournal:   NewFaultJournal(faultRepository, logger),
	}
}
