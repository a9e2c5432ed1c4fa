// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/MKhiriev/go-fault-boundary/internal/fault"
	"github.com/MKhiriev/go-fault-boundary/internal/logger"
	"github.com/MKhiriev/go-fault-boundary/internal/utils"
	"github.com/MKhiriev/go-fault-boundary/models"
)

// fallbackErrorBody is written when the error response itself cannot be
// encoded.
const fallbackErrorBody = `{"statusCode":500,"message":"internal server error"}`

// marshalErrorResponse encodes the client error body.
var marshalErrorResponse = func(resp models.ErrorResponse) ([]byte, error) {
	return utils.MarshalJSON(resp)
}

// withFaultBoundary turns every unhandled fault raised by next into a JSON
// 500 response. A fault is a panic, or an error returned by an endpoint
// adapted with [Handler.handle].
//
// Successful responses pass through unchanged.
func (h *Handler) withFaultBoundary(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.guard(w, r, models.FaultSourceBoundary, func(w http.ResponseWriter, r *http.Request) error {
			scope := &faultScope{}
			next.ServeHTTP(w, r.WithContext(withFaultScope(r.Context(), scope)))
			return scope.err
		})
	})
}

// guard runs run with fault capture armed for its whole duration and
// intercepts a panic or a returned error as a fault of the given source.
//
// http.ErrAbortHandler panics are re-raised untouched.
func (h *Handler) guard(w http.ResponseWriter, r *http.Request, source models.FaultSource, run HandlerFunc) {
	bw := &boundaryWriter{ResponseWriter: w}
	snapshot := w.Header().Clone()

	defer func() {
		recovered := recover()
		if recovered == nil {
			bw.commit()
			return
		}

		if err, ok := recovered.(error); ok && errors.Is(err, http.ErrAbortHandler) {
			panic(recovered)
		}

		h.intercept(bw, r, snapshot, fault.FromPanic(recovered, debug.Stack(), source))
	}()

	if err := run(bw, r); err != nil {
		h.intercept(bw, r, snapshot, fault.FromError(err, source))
	}
}

// intercept logs and journals f, then replaces the response with the JSON
// error body. When body bytes already reached the client the connection is
// aborted instead.
func (h *Handler) intercept(w *boundaryWriter, r *http.Request, snapshot http.Header, f models.Fault) {
	log := logger.FromRequest(r)

	fault.Fields(log.Error(), f).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Bool("committed", w.committed).
		Msg(interceptMessage(f.Source))

	h.recordFault(r, f)

	if w.committed {
		panic(http.ErrAbortHandler)
	}

	h.writeErrorResponse(w, r, snapshot, f)
}

func (h *Handler) recordFault(r *http.Request, f models.Fault) {
	if h.services == nil || h.services.FaultJournal == nil {
		return
	}

	ctx := context.WithoutCancel(r.Context())
	traceID, _ := utils.GetTraceIDFromContext(ctx)

	record := models.NewFaultRecord(f, traceID, r.Method, r.URL.Path, time.Now())
	if err := h.services.FaultJournal.Record(ctx, record); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to record fault")
	}
}

func (h *Handler) writeErrorResponse(w *boundaryWriter, r *http.Request, snapshot http.Header, f models.Fault) {
	body, err := marshalErrorResponse(models.NewErrorResponse(http.StatusInternalServerError, f, !h.hideStackTrace))
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to encode error response")
		body = []byte(fallbackErrorBody)
	}

	w.discardStatus()
	restoreHeader(w.Header(), snapshot)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)

	if _, err := w.Write(body); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("failed to write error response")
	}
}

// restoreHeader resets header to snapshot, dropping everything downstream
// stages added or changed.
func restoreHeader(header, snapshot http.Header) {
	replaceHeader(header, snapshot)
	header.Del("Content-Length")
}

// replaceHeader makes header hold exactly the entries of snapshot.
func replaceHeader(header, snapshot http.Header) {
	for key := range header {
		delete(header, key)
	}
	for key, values := range snapshot {
		header[key] = values
	}
}

func interceptMessage(source models.FaultSource) string {
	if source == models.FaultSourceFilter {
		return "unhandled fault intercepted by fault filter"
	}
	return "unhandled fault intercepted by fault boundary"
}
