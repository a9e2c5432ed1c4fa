// Package http implements the HTTP transport layer of the application.
//
// Every request passes through trace id propagation, access logging and the
// fault boundary, which converts unhandled panics and errors returned by
// [HandlerFunc] endpoints into a JSON 500 body:
//
//	{"statusCode":500,"message":"...","stackTrace":"..."}
//
// Single endpoints may opt into a fault filter that applies the same
// contract locally and keeps their faults away from the boundary.
package http
