package fault

import (
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-fault-boundary/models"
)

// Fields adds the fault's kind, message, source and trace (when present) to
// e and returns it for further chaining. A nil event is returned unchanged,
// which keeps disabled log levels free of work.
func Fields(e *zerolog.Event, f models.Fault) *zerolog.Event {
	if e == nil {
		return e
	}

	e = e.Str("fault_kind", f.Kind).
		Str("fault_message", f.Message).
		Str("fault_source", string(f.Source))

	if f.HasStackTrace() {
		e = e.Str("stack_trace", *f.StackTrace)
	}

	return e
}
