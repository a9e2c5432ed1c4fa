package http

import "context"

type faultScopeKey struct{}

// faultScope collects the error raised by an error-returning endpoint for the
// boundary that published it. Only the first raised error is kept.
type faultScope struct {
	err error
}

func (s *faultScope) raise(err error) {
	if s.err == nil {
		s.err = err
	}
}

func withFaultScope(ctx context.Context, scope *faultScope) context.Context {
	return context.WithValue(ctx, faultScopeKey{}, scope)
}

func faultScopeFromContext(ctx context.Context) (*faultScope, bool) {
	scope, ok := ctx.Value(faultScopeKey{}).(*faultScope)
	return scope, ok && scope != nil
}
