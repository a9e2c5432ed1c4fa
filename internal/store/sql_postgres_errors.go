package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [faultRepository.SaveFault] whether a failed
// insert is worth another attempt.
type ErrorClassification int

const (
	// NonRetryable is the default for unknown errors, constraint
	// violations and schema problems.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: connection loss, serialization
	// failures, deadlocks and a server that is still starting.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError and maps its SQLSTATE code.
// Anything that is not a PostgreSQL error is [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	switch pgErr.Code {
	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Retryable

	// Class 40: transaction rollback
	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Retryable

	// Class 57: operator intervention
	case pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}

// journalError maps well-known PostgreSQL codes onto store sentinels and
// returns err unchanged otherwise.
func journalError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UndefinedTable:
		return errors.Join(ErrFaultJournalNotMigrated, err)
	case pgerrcode.NotNullViolation, pgerrcode.CheckViolation:
		return errors.Join(ErrInvalidFaultRecord, err)
	}

	return err
}
