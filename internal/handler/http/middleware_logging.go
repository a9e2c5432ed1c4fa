package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-fault-boundary/internal/logger"
)

// withLogging writes one access log entry per request. The entry is also
// written when the request is aborted with a panic.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		defer func() {
			log.Info().
				Str("uri", uri).
				Str("method", method).
				Int("status", lw.status).
				Dur("duration", time.Since(start)).
				Int("size", lw.size).
				Send()
		}()

		next.ServeHTTP(lw, r)
	})
}
