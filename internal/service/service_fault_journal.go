package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fault-boundary/internal/logger"
	"github.com/MKhiriev/go-fault-boundary/internal/store"
	"github.com/MKhiriev/go-fault-boundary/models"
)

const (
	// DefaultFaultLimit is used by [FaultJournal.Recent] when limit is zero.
	DefaultFaultLimit = 20
	// MaxFaultLimit caps a single [FaultJournal.Recent] page.
	MaxFaultLimit = 100
)

type faultJournal struct {
	faultRepository store.FaultRepository
	now             func() time.Time

	logger *logger.Logger
}

// NewFaultJournal returns a journal backed by faultRepository. A nil
// repository yields a disabled journal.
func NewFaultJournal(faultRepository store.FaultRepository, logger *logger.Logger) FaultJournal {
	if faultRepository == nil {
		return noopFaultJournal{}
	}

	return &faultJournal{
		faultRepository: faultRepository,
		now:             time.Now,
		logger:          logger,
	}
}

// Record stores record, stamping OccurredAt when the caller left it zero.
func (j *faultJournal) Record(ctx context.Context, record models.FaultRecord) error {
	if record.OccurredAt.IsZero() {
		record.OccurredAt = j.now().UTC()
	}

	id, err := j.faultRepository.SaveFault(ctx, record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRecordingFault, err)
	}

	logger.FromContext(ctx).Debug().Int64("fault_id", id).Msg("fault recorded")
	return nil
}

// Recent returns the newest records. Zero selects [DefaultFaultLimit] and
// values above [MaxFaultLimit] are clamped.
func (j *faultJournal) Recent(ctx context.Context, limit int) ([]models.FaultRecord, error) {
	limit, err := normalizeLimit(limit)
	if err != nil {
		return nil, err
	}

	records, err := j.faultRepository.ListFaults(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListingFaults, err)
	}

	return records, nil
}

func (j *faultJournal) Enabled() bool {
	return true
}

func normalizeLimit(limit int) (int, error) {
	switch {
	case limit < 0:
		return 0, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	case limit == 0:
		return DefaultFaultLimit, nil
	case limit > MaxFaultLimit:
		return MaxFaultLimit, nil
	}

	return limit, nil
}

type noopFaultJournal struct{}

func (noopFaultJournal) Record(context.Context, models.FaultRecord) error {
	return nil
}

func (noopFaultJournal) Recent(context.Context, int) ([]models.FaultRecord, error) {
	return nil, ErrFaultJournalDisabled
}

func (noopFaultJournal) Enabled() bool {
	return false
}
