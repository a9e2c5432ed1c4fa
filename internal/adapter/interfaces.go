// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the fault-boundary HTTP API.
//
// The primary abstraction is [ServerAdapter], used by the probe binary to
// trigger faults and read the journal. Non-2xx answers are mapped by
// mapHTTPError to the sentinel values in errors.go so callers can use
// [errors.Is]; a 500 carrying the JSON error body is returned as a
// [*FaultError].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-fault-boundary/models"
)

// ServerAdapter defines communication with a running fault-boundary server.
type ServerAdapter interface {
	// Probe sends GET path and reports how the server answered. A fault
	// answer is not an error: it is returned in ProbeResult.Fault.
	Probe(ctx context.Context, path string) (ProbeResult, error)

	// Version returns the text of GET /api/version/.
	Version(ctx context.Context) (string, error)

	// RecentFaults returns up to limit journal records, newest first. A zero
	// limit uses the server default.
	RecentFaults(ctx context.Context, limit int) ([]models.FaultRecord, error)
}

// ProbeResult is the outcome of a single [ServerAdapter.Probe] call.
type ProbeResult struct {
	StatusCode  int
	ContentType string
	TraceID     string

	// Fault is the decoded error body of a 500 answer; nil otherwise.
	Fault *models.ErrorResponse

	// Body is the raw body of any other answer.
	Body string
}
