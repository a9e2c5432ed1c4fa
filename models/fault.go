// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FaultSource names the interception point that handled a fault.
type FaultSource string

const (
	// FaultSourceBoundary marks faults caught by the HTTP fault boundary middleware.
	FaultSourceBoundary FaultSource = "boundary"

	// FaultSourceFilter marks faults caught by a per-route fault filter.
	FaultSourceFilter FaultSource = "filter"

	// FaultSourceGRPC marks faults caught by the gRPC fault interceptors.
	FaultSourceGRPC FaultSource = "grpc"
)

// Fault is the captured form of an unhandled error or panic, taken at the
// moment of interception and before it is translated into a response.
type Fault struct {
	// Kind is the Go type of the fault value, e.g. "*errors.fundamental"
	// or "runtime.boundsError".
	Kind string

	// Message is the fault's message text.
	Message string

	// StackTrace is the diagnostic trace, nil when the fault carries none.
	StackTrace *string

	// Source is the interception point that captured the fault.
	Source FaultSource
}

// HasStackTrace reports whether the fault carries a non-empty trace.
func (f Fault) HasStackTrace() bool {
	return f.StackTrace != nil && *f.StackTrace != ""
}
