package http

import (
	"net/http"

	"github.com/MKhiriev/go-fault-boundary/models"
)

// withFaultFilter applies the fault boundary contract to a single endpoint.
// Faults of fn are handled here and never reach [Handler.withFaultBoundary].
func (h *Handler) withFaultFilter(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.guard(w, r, models.FaultSourceFilter, fn)
	}
}
