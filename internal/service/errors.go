package service

import "errors"

var (
	// ErrFaultJournalDisabled is returned by the journal when no storage is
	// configured.
	ErrFaultJournalDisabled = errors.New("fault journal is disabled")

	// ErrInvalidLimit is returned for a negative page size.
	ErrInvalidLimit = errors.New("limit must not be negative")

	ErrRecordingFault = errors.New("error recording fault")
	ErrListingFaults  = errors.New("error listing faults")
)
