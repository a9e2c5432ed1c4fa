package grpc

import (
	"context"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/go-fault-boundary/internal/utils"
)

// traceIDMetadataKey mirrors the X-Trace-ID HTTP header. Metadata keys are
// lower case.
const traceIDMetadataKey = "x-trace-id"

// UnaryTraceID reuses the incoming x-trace-id metadata or generates one and
// stores it in the handler context together with a child logger carrying
// trace_id. The id is echoed in the response header metadata.
func (h *Handler) UnaryTraceID() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx, traceID := h.withTraceID(ctx)
		// fails only outside a real RPC, e.g. when the interceptor is called directly
		_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDMetadataKey, traceID))

		return handler(ctx, req)
	}
}

func (h *Handler) StreamTraceID() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx, traceID := h.withTraceID(ss.Context())
		_ = ss.SetHeader(metadata.Pairs(traceIDMetadataKey, traceID))

		return handler(srv, &serverStream{ServerStream: ss, ctx: ctx})
	}
}

func (h *Handler) withTraceID(ctx context.Context) (context.Context, string) {
	traceID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDMetadataKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = h.traceIDs.Generate()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	return utils.WithTraceID(l.WithContext(ctx), traceID), traceID
}

// serverStream overrides the stream context so downstream interceptors and
// the handler see the trace id.
type serverStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *serverStream) Context() context.Context {
	return s.ctx
}
