package store

import (
	"context"

	"github.com/MKhiriev/go-fault-boundary/models"
)

// FaultRepository persists fault journal records.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/fault_repository_mock.go -package=mock
type FaultRepository interface {
	// SaveFault inserts record and returns the assigned ID.
	SaveFault(ctx context.Context, record models.FaultRecord) (int64, error)
	// ListFaults returns at most limit records, newest first.
	ListFaults(ctx context.Context, limit int) ([]models.FaultRecord, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
