// Package fault converts unhandled errors and recovered panic values into
// [models.Fault] values and renders them into structured log events.
//
// It is shared by the HTTP fault boundary, the per-route fault filter and
// the gRPC fault interceptors so that every interception point captures
// faults the same way.
package fault
