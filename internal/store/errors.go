package store

import "errors"

// Sentinel errors returned by the fault journal. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrFaultJournalNotMigrated is returned when the faults table does not
	// exist yet.
	ErrFaultJournalNotMigrated = errors.New("fault journal is not migrated")

	// ErrInvalidFaultRecord is returned when the database rejects a record
	// because a required column is missing.
	ErrInvalidFaultRecord = errors.New("invalid fault record")

	// ErrUnsupportedDriver is returned by [NewStorages] for a driver other
	// than sqlite3 or pgx.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning the id of an inserted fault
	// fails.
	ErrScanningRow = errors.New("failed to scan fault row")

	// ErrScanningRows is returned when scanning a listed fault fails.
	ErrScanningRows = errors.New("failed to scan fault rows")
)
