// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body written to the client for every unhandled
// fault. Field names are lower-camel-case on the wire.
//
// StatusCode always equals the status line of the response that carries the
// body. StackTrace is omitted when the fault has no diagnostic trace or when
// traces are hidden by configuration.
type ErrorResponse struct {
	// StatusCode is the HTTP status code of the response (500 for faults).
	StatusCode int `json:"statusCode"`

	// Message is the fault's message text.
	Message string `json:"message"`

	// StackTrace holds the diagnostic trace of the fault, if any.
	StackTrace *string `json:"stackTrace,omitempty"`
}

// NewErrorResponse builds the client-visible [ErrorResponse] for fault.
// When exposeTrace is false the trace is dropped even if the fault has one.
func NewErrorResponse(statusCode int, fault Fault, exposeTrace bool) ErrorResponse {
	resp := ErrorResponse{
		StatusCode: statusCode,
		Message:    fault.Message,
	}

	if exposeTrace && fault.HasStackTrace() {
		trace := *fault.StackTrace
		resp.StackTrace = &trace
	}

	return resp
}
