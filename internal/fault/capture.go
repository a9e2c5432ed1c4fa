// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fault

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/MKhiriev/go-fault-boundary/models"
)

// stackTracer is implemented by every error created or wrapped with
// github.com/pkg/errors (New, Errorf, Wrap, WithStack, ...).
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// FromError captures err as a fault raised at source.
//
// The fault carries a trace only when err, or an error in its Unwrap chain,
// recorded one via github.com/pkg/errors. A nil err yields a fault with an
// empty message and no trace.
func FromError(err error, source models.FaultSource) models.Fault {
	if err == nil {
		return models.Fault{Kind: "<nil>", Source: source}
	}

	f := models.Fault{
		Kind:    fmt.Sprintf("%T", err),
		Message: err.Error(),
		Source:  source,
	}

	if trace, ok := traceOf(err); ok {
		f.StackTrace = &trace
	}

	return f
}

// FromPanic captures a recovered panic value as a fault raised at source.
// stack is the goroutine stack taken at recovery (runtime/debug.Stack) and
// becomes the fault's trace, so a panic always carries one.
func FromPanic(recovered any, stack []byte, source models.FaultSource) models.Fault {
	f := models.Fault{
		Kind:   fmt.Sprintf("%T", recovered),
		Source: source,
	}

	switch v := recovered.(type) {
	case error:
		f.Message = v.Error()
	default:
		f.Message = fmt.Sprint(v)
	}

	if trace := strings.TrimSpace(string(stack)); trace != "" {
		f.StackTrace = &trace
	}

	return f
}

func traceOf(err error) (string, bool) {
	var st stackTracer
	if !errors.As(err, &st) {
		return "", false
	}

	trace := strings.TrimSpace(fmt.Sprintf("%+v", st.StackTrace()))
	return trace, trace != ""
}
