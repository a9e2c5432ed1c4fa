// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// errServerExited is returned by run when a transport stopped serving
	// before shutdown was requested, e.g. because its address is in use.
	errServerExited = errors.New("server exited before shutdown was requested")
)
