// Package grpc holds the gRPC transport: the standard health service and the
// interceptors that apply the fault boundary to unary and streaming calls.
//
// A panic or a plain error returned by a method becomes codes.Internal with
// the fault message. Statuses created with google.golang.org/grpc/status are
// treated as deliberate and pass through.
package grpc
