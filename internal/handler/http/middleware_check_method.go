// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// It answers 404 Not Found instead of chi's 405 when the route matching the
// request path does not serve the requested method, so callers cannot probe
// which routes exist.
//
// Only exact pattern matches are considered; parameterised or wildcard
// segments are not expanded.
//
// Usage:
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		routes := router.Routes()
		i := slices.IndexFunc(routes, func(route chi.Route) bool {
			return route.Pattern == r.URL.Path
		})

		if i < 0 || routes[i].Handlers[r.Method] == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		// the method is registered: delegate to the router's normal pipeline
		router.ServeHTTP(w, r)
	}
}
