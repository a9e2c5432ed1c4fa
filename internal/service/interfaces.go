package service

import (
	"context"

	"github.com/MKhiriev/go-fault-boundary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// FaultJournal records intercepted faults for later inspection. Record
// failures are reported to the caller and must never change the response
// already decided for the client.
type FaultJournal interface {
	Record(ctx context.Context, record models.FaultRecord) error
	Recent(ctx context.Context, limit int) ([]models.FaultRecord, error)
	Enabled() bool
}
