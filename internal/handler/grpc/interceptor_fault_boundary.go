// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"
	"runtime/debug"
	"strings"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-fault-boundary/internal/fault"
	"github.com/MKhiriev/go-fault-boundary/internal/logger"
	"github.com/MKhiriev/go-fault-boundary/internal/utils"
	"github.com/MKhiriev/go-fault-boundary/models"
)

// UnaryFaultBoundary turns panics and non-status errors of unary handlers
// into codes.Internal statuses. The status message is the fault message;
// when the fault has a trace it is attached as an errdetails.DebugInfo.
//
// Errors that already carry a gRPC status pass through unchanged.
func (h *Handler) UnaryFaultBoundary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		var resp any
		err := h.guard(ctx, info.FullMethod, func(ctx context.Context) error {
			var handlerErr error
			resp, handlerErr = handler(ctx, req)
			return handlerErr
		})
		if err != nil {
			return nil, err
		}
		return resp, nil
	}
}

// StreamFaultBoundary is the streaming counterpart of [Handler.UnaryFaultBoundary].
func (h *Handler) StreamFaultBoundary() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		return h.guard(ss.Context(), info.FullMethod, func(context.Context) error {
			return handler(srv, ss)
		})
	}
}

func (h *Handler) guard(ctx context.Context, method string, run func(ctx context.Context) error) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = h.intercept(ctx, method, fault.FromPanic(recovered, debug.Stack(), models.FaultSourceGRPC))
		}
	}()

	err = run(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	return h.intercept(ctx, method, fault.FromError(err, models.FaultSourceGRPC))
}

func (h *Handler) intercept(ctx context.Context, method string, f models.Fault) error {
	fault.Fields(logger.FromContext(ctx).Error(), f).
		Str("grpc_method", method).
		Msg("unhandled fault intercepted by grpc fault boundary")

	h.recordFault(ctx, method, f)

	return h.faultStatus(f).Err()
}

func (h *Handler) recordFault(ctx context.Context, method string, f models.Fault) {
	if h.services == nil || h.services.FaultJournal == nil {
		return
	}

	ctx = context.WithoutCancel(ctx)
	traceID, _ := utils.GetTraceIDFromContext(ctx)

	record := models.NewFaultRecord(f, traceID, method, "", time.Now())
	if err := h.services.FaultJournal.Record(ctx, record); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to record fault")
	}
}

func (h *Handler) faultStatus(f models.Fault) *status.Status {
	st := status.New(codes.Internal, f.Message)
	if h.hideStackTrace || !f.HasStackTrace() {
		return st
	}

	detailed, err := st.WithDetails(&errdetails.DebugInfo{
		StackEntries: strings.Split(*f.StackTrace, "\n"),
		Detail:       f.Kind,
	})
	if err != nil {
		return st
	}
	return detailed
}
