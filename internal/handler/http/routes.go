package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Middleware order is trace id, access log, fault
// boundary and, when configured, the request timeout.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withFaultBoundary)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/home", h.withFaultFilter(h.home))
	router.Get("/api/home/panic", h.homePanic)
	router.Get("/api/version/", h.handle(h.getServerVersion))
	router.Get("/api/faults", h.handle(h.listFaults))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
