package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fault-boundary/models"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// FaultError is returned for a 500 answer that carries the JSON error body.
// It matches [ErrInternalServerError] with errors.Is.
type FaultError struct {
	Response models.ErrorResponse
	TraceID  string
}

func (e *FaultError) Error() string {
	if e.TraceID == "" {
		return fmt.Sprintf("server fault: %s", e.Response.Message)
	}
	return fmt.Sprintf("server fault (trace %s): %s", e.TraceID, e.Response.Message)
}

func (e *FaultError) Unwrap() error {
	return ErrInternalServerError
}
