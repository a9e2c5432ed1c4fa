package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-fault-boundary/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID reuses the incoming X-Trace-ID or generates one, stores it in
// the request context together with a child logger carrying trace_id, and
// echoes it in the response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = h.traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx = utils.WithTraceID(l.WithContext(ctx), traceID)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
