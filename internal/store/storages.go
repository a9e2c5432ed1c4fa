package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fault-boundary/internal/config"
	"github.com/MKhiriev/go-fault-boundary/internal/logger"
)

// Storages groups the repositories of the service. FaultRepository is nil
// when no journal DSN is configured.
type Storages struct {
	FaultRepository FaultRepository

	db *DB
}

// NewStorages connects the fault journal selected by cfg.DB.Driver and runs
// its migrations. An empty DSN yields a Storages without a journal.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Msg("fault journal is disabled: no DSN configured")
		return &Storages{}, nil
	}

	log.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite, "":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.DB.Driver, err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		FaultRepository: NewFaultRepository(db, log),
		db:              db,
	}, nil
}

// Close releases the journal connection, if any.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}
