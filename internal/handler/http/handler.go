package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-fault-boundary/internal/config"
	"github.com/MKhiriev/go-fault-boundary/internal/logger"
	"github.com/MKhiriev/go-fault-boundary/internal/service"
	"github.com/MKhiriev/go-fault-boundary/internal/utils"
)

// HandlerFunc is an endpoint that reports failure by returning an error.
// Adapt it with [Handler.handle] to raise the error to the enclosing fault
// boundary, or with [Handler.withFaultFilter] to handle it in place.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

type Handler struct {
	services *service.Services

	hideStackTrace bool
	requestTimeout time.Duration
	traceIDs       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().
		Bool("hide_stack_trace", cfg.App.HideStackTrace).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Msg("http handler created")

	return &Handler{
		services:       services,
		hideStackTrace: cfg.App.HideStackTrace,
		requestTimeout: cfg.Server.RequestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// handle adapts fn to http.Handler. A returned error is raised to the fault
// scope of the enclosing boundary. Without a boundary the error is logged and
// answered with a bare 500.
func (h *Handler) handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		if scope, ok := faultScopeFromContext(r.Context()); ok {
			scope.raise(err)
			return
		}

		logger.FromRequest(r).Err(err).Str("path", r.URL.Path).Msg("handler error outside of a fault boundary")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
