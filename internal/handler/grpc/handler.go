package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-fault-boundary/internal/config"
	"github.com/MKhiriev/go-fault-boundary/internal/logger"
	"github.com/MKhiriev/go-fault-boundary/internal/service"
	"github.com/MKhiriev/go-fault-boundary/internal/utils"
)

// Handler is the root gRPC transport handler.
//
// It owns the standard health service and the interceptor chain that gives
// gRPC methods the same fault boundary the HTTP router has. A handler
// instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides the fault journal used by the boundary.
	services *service.Services

	hideStackTrace bool
	traceIDs       *utils.UUIDGenerator
	health         *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger. App.HideStackTrace in cfg controls whether fault statuses carry
// the stack trace as a DebugInfo detail.
func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services:       services,
		hideStackTrace: cfg.App.HideStackTrace,
		traceIDs:       utils.NewUUIDGenerator(),
		health:         health.NewServer(),
		logger:         logger,
	}
}

// UnaryInterceptors returns the unary chain in the order it must be
// installed: trace id, access log, fault boundary.
func (h *Handler) UnaryInterceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{
		h.UnaryTraceID(),
		h.UnaryLogging(),
		h.UnaryFaultBoundary(),
	}
}

// StreamInterceptors is the streaming counterpart of [Handler.UnaryInterceptors].
func (h *Handler) StreamInterceptors() []grpc.StreamServerInterceptor {
	return []grpc.StreamServerInterceptor{
		h.StreamTraceID(),
		h.StreamLogging(),
		h.StreamFaultBoundary(),
	}
}

// Register installs the services served by this handler on s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown marks every service NOT_SERVING so health probes fail while the
// server drains.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
