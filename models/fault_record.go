package models

import "time"

// FaultRecord is a single entry of the fault journal. It is an operational
// log record and is never sent back to clients as an [ErrorResponse].
type FaultRecord struct {
	// ID is assigned by the storage on insert.
	ID int64 `json:"id"`

	// TraceID is the X-Trace-ID of the request that faulted, if known.
	TraceID string `json:"trace_id,omitempty"`

	// Method is the HTTP method or the full gRPC method name.
	Method string `json:"method"`

	// Path is the request path; empty for gRPC faults.
	Path string `json:"path,omitempty"`

	Kind       string      `json:"kind"`
	Message    string      `json:"message"`
	StackTrace *string     `json:"stack_trace,omitempty"`
	Source     FaultSource `json:"source"`

	OccurredAt time.Time `json:"occurred_at"`
}

// NewFaultRecord copies the fault fields into a journal record stamped with
// occurredAt.
func NewFaultRecord(fault Fault, traceID, method, path string, occurredAt time.Time) FaultRecord {
	return FaultRecord{
		TraceID:    traceID,
		Method:     method,
		Path:       path,
		Kind:       fault.Kind,
		Message:    fault.Message,
		StackTrace: fault.StackTrace,
		Source:     fault.Source,
		OccurredAt: occurredAt.UTC(),
	}
}
