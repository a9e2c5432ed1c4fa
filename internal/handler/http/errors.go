// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidLimitParam is returned by GET /api/faults when the limit
	// query parameter is not an integer.
	ErrInvalidLimitParam = errors.New("invalid limit query parameter")

	// ErrWritingResponse is returned by endpoints whose response body could
	// not be written to the client.
	ErrWritingResponse = errors.New("error writing response")
)
