package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fault-boundary/internal/logger"
	"github.com/MKhiriev/go-fault-boundary/models"
)

const (
	faultsTable = "faults"

	// maxSaveAttempts bounds retries of transient insert failures.
	maxSaveAttempts = 2
)

var faultColumns = []string{
	"trace_id",
	"method",
	"path",
	"kind",
	"message",
	"stack_trace",
	"source",
	"occurred_at",
}

// faultRepository is the database/sql implementation of [FaultRepository].
// Queries are built with squirrel so the same code serves SQLite and
// PostgreSQL placeholders.
type faultRepository struct {
	*DB
	logger *logger.Logger
}

func NewFaultRepository(db *DB, logger *logger.Logger) FaultRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating fault repository")
	return &faultRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveFault inserts record and returns its ID. Errors classified as
// [Retryable] are attempted once more.
func (r *faultRepository) SaveFault(ctx context.Context, record models.FaultRecord) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Insert(faultsTable).
		Columns(faultColumns...).
		Values(
			record.TraceID,
			record.Method,
			record.Path,
			record.Kind,
			record.Message,
			nullString(record.StackTrace),
			string(record.Source),
			record.OccurredAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*faultRepository.SaveFault").Msg("failed to build insert query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	for attempt := 1; ; attempt++ {
		err = r.DB.QueryRowContext(ctx, query, args...).Scan(&id)
		if err == nil {
			return id, nil
		}

		if attempt >= maxSaveAttempts || r.classify(err) != Retryable {
			break
		}
		log.Warn().Err(err).Int("attempt", attempt).Msg("retrying fault insert")
	}

	log.Err(err).
		Str("func", "*faultRepository.SaveFault").
		Str("trace_id", record.TraceID).
		Msg("failed to save fault")

	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, journalError(err))
}

// ListFaults returns at most limit records ordered by occurrence, newest
// first. Records sharing a timestamp are ordered by descending ID.
func (r *faultRepository) ListFaults(ctx context.Context, limit int) ([]models.FaultRecord, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		return []models.FaultRecord{}, nil
	}

	query, args, err := r.builder().
		Select(append([]string{"id"}, faultColumns...)...).
		From(faultsTable).
		OrderBy("occurred_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*faultRepository.ListFaults").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*faultRepository.ListFaults").Int("limit", limit).Msg("failed to list faults")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, journalError(err))
	}
	defer rows.Close()

	records := make([]models.FaultRecord, 0, limit)
	for rows.Next() {
		var (
			record     models.FaultRecord
			stackTrace sql.NullString
			source     string
		)

		if err := rows.Scan(
			&record.ID,
			&record.TraceID,
			&record.Method,
			&record.Path,
			&record.Kind,
			&record.Message,
			&stackTrace,
			&source,
			&record.OccurredAt,
		); err != nil {
			log.Err(err).Str("func", "*faultRepository.ListFaults").Msg("failed to scan fault")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if stackTrace.Valid {
			record.StackTrace = &stackTrace.String
		}
		record.Source = models.FaultSource(source)
		record.OccurredAt = record.OccurredAt.UTC()

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*faultRepository.ListFaults").Msg("error iterating faults")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *s, Valid: true}
}
