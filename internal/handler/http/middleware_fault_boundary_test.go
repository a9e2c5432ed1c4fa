// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fault-boundary/models"
)

// serveBoundary runs next behind withTraceID and withFaultBoundary, the way
// Init chains them.
func serveBoundary(h *Handler, next http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.withTraceID(h.withFaultBoundary(next)).ServeHTTP(rr, req)
	return rr
}

func decodeErrorBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), "body: %s", rr.Body.String())
	return body
}

func TestWithFaultBoundary_SuccessPassesThrough(t *testing.T) {
	h, journal, logBuf := newFaultTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Custom", "kept")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	})

	rr := serveBoundary(h, next, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"ok":true}`, rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "kept", rr.Header().Get("X-Custom"))
	assert.Empty(t, journal.records)
	assert.NotContains(t, logBuf.String(), "intercepted")
}

// Headers changed after WriteHeader must not reach the client, the same as
// without the boundary in front.
func TestWithFaultBoundary_HeadersSetAfterWriteHeaderAreIgnored(t *testing.T) {
	h, _, _ := newFaultTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Header().Set("X-Late", "1")
		w.Write([]byte("ok"))
	})

	bare := httptest.NewRecorder()
	next.ServeHTTP(bare, httptest.NewRequest(http.MethodGet, "/late", nil))

	rr := serveBoundary(h, next, httptest.NewRequest(http.MethodGet, "/late", nil))

	require.Empty(t, bare.Result().Header.Get("X-Late"))
	assert.Empty(t, rr.Result().Header.Get("X-Late"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestWithFaultBoundary_HeadersSetAfterWriteHeaderIgnoredOverNetwork(t *testing.T) {
	h, _, _ := newFaultTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Header().Set("X-Late", "1")
		w.Write([]byte("ok"))
	})

	srv := httptest.NewServer(h.withTraceID(h.withFaultBoundary(next)))
	defer srv.Close()

	res, err := http.Get(srv.URL + "/late")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, res.Header.Get("X-Late"))
	assert.NotEmpty(t, res.Header.Get(traceIDHeader))
}

func TestWithFaultBoundary_ImplicitStatusIsCommittedOnReturn(t *testing.T) {
	h, _, _ := newFaultTestHandler(t)

	tests := []struct {
		name string
		next http.HandlerFunc
		want int
	}{
		{name: "nothing written", next: func(w http.ResponseWriter, r *http.Request) {}, want: http.StatusOK},
		{name: "status only", next: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }, want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serveBoundary(h, tt.next, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tt.want, rr.Code)
			assert.Empty(t, rr.Body.String())
		})
	}
}

func TestWithFaultBoundary_Faults(t *testing.T) {
	tests := []struct {
		name        string
		next        http.Handler
		wantMessage string
		wantTrace   string // substring; empty means no stackTrace key
		wantKind    string
	}{
		{
			name:        "panic with string",
			next:        http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") }),
			wantMessage: "boom",
			wantTrace:   "goroutine",
			wantKind:    "string",
		},
		{
			name: "runtime error",
			next: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var items []int
				_ = items[len(r.URL.Path)]
			}),
			wantMessage: "index out of range",
			wantTrace:   "goroutine",
			wantKind:    "runtime.boundsError",
		},
		{
			name: "returned error with stack",
			next: (&Handler{}).handle(func(w http.ResponseWriter, r *http.Request) error {
				return pkgerrors.New("stacked failure")
			}),
			wantMessage: "stacked failure",
			wantTrace:   "TestWithFaultBoundary_Faults",
			wantKind:    "*errors.fundamental",
		},
		{
			name: "returned plain error",
			next: (&Handler{}).handle(func(w http.ResponseWriter, r *http.Request) error {
				return errors.New("plain failure")
			}),
			wantMessage: "plain failure",
			wantKind:    "*errors.errorString",
		},
		{
			name: "wrapped error keeps inner stack",
			next: (&Handler{}).handle(func(w http.ResponseWriter, r *http.Request) error {
				return pkgerrors.Wrap(pkgerrors.New("inner"), "outer")
			}),
			wantMessage: "outer: inner",
			wantTrace:   "TestWithFaultBoundary_Faults",
			wantKind:    "*errors.withStack",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, journal, logBuf := newFaultTestHandler(t)

			rr := serveBoundary(h, tt.next, httptest.NewRequest(http.MethodGet, "/api/x", nil))

			require.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			body := decodeErrorBody(t, rr)
			assert.EqualValues(t, 500, body["statusCode"])
			assert.Contains(t, body["message"], tt.wantMessage)

			trace, hasTrace := body["stackTrace"]
			if tt.wantTrace == "" {
				assert.False(t, hasTrace, "stackTrace must be omitted")
			} else {
				require.True(t, hasTrace)
				assert.Contains(t, trace, tt.wantTrace)
			}

			require.Len(t, journal.records, 1)
			record := journal.records[0]
			assert.Equal(t, models.FaultSourceBoundary, record.Source)
			assert.Equal(t, tt.wantKind, record.Kind)
			assert.Equal(t, http.MethodGet, record.Method)
			assert.Equal(t, "/api/x", record.Path)
			assert.Equal(t, rr.Header().Get(traceIDHeader), record.TraceID)
			assert.False(t, record.OccurredAt.IsZero())

			logs := logBuf.String()
			assert.Contains(t, logs, `"level":"error"`)
			assert.Contains(t, logs, "unhandled fault intercepted by fault boundary")
			assert.Contains(t, logs, `"fault_source":"boundary"`)
			assert.Contains(t, logs, `"committed":false`)
			assert.Contains(t, logs, `"trace_id":"`+record.TraceID+`"`)
		})
	}
}

func TestWithFaultBoundary_ExactWireBody(t *testing.T) {
	h, _, _ := newFaultTestHandler(t)

	next := h.handle(func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("Exception in Home Controller.")
	})

	rr := serveBoundary(h, next, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, `{"statusCode":500,"message":"Exception in Home Controller."}`, rr.Body.String())
}

func TestWithFaultBoundary_DiscardsDownstreamHeaders(t *testing.T) {
	h, _, _ := newFaultTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Custom", "leak")
		w.Header().Set("Content-Type", "text/html")
		w.Header().Set("Content-Length", "12345")
		w.Header().Set(traceIDHeader, "overwritten-by-downstream")
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "upstream-trace")
	rr := serveBoundary(h, next, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Empty(t, rr.Header().Get("X-Custom"))
	assert.Empty(t, rr.Header().Get("Content-Length"))
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "upstream-trace", rr.Header().Get(traceIDHeader))
}

func TestWithFaultBoundary_StatusWrittenButNoBody(t *testing.T) {
	h, _, _ := newFaultTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		panic("after header")
	})

	rr := serveBoundary(h, next, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.EqualValues(t, 500, decodeErrorBody(t, rr)["statusCode"])
}

func TestWithFaultBoundary_CommittedResponseAborts(t *testing.T) {
	tests := []struct {
		name string
		next http.HandlerFunc
	}{
		{
			name: "body written",
			next: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("partial"))
				panic("too late")
			},
		},
		{
			name: "flushed",
			next: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusAccepted)
				w.(http.Flusher).Flush()
				panic("too late")
			},
		},
		{
			name: "body written then error returned",
			next: (&Handler{}).handle(func(w http.ResponseWriter, r *http.Request) error {
				w.Write([]byte("partial"))
				return errors.New("too late")
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, journal, logBuf := newFaultTestHandler(t)
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
				serveBoundary(h, tt.next, req)
			})

			require.Len(t, journal.records, 1)
			assert.Equal(t, "too late", journal.records[0].Message)
			assert.Contains(t, logBuf.String(), `"committed":true`)
		})
	}
}

func TestWithFaultBoundary_AbortHandlerIsReraised(t *testing.T) {
	h, journal, logBuf := newFaultTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		serveBoundary(h, next, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Empty(t, journal.records)
	assert.NotContains(t, logBuf.String(), "intercepted")
}

func TestWithFaultBoundary_SerializationFailureFallsBack(t *testing.T) {
	original := marshalErrorResponse
	marshalErrorResponse = func(models.ErrorResponse) ([]byte, error) {
		return nil, errors.New("encoder broken")
	}
	t.Cleanup(func() { marshalErrorResponse = original })

	h, _, logBuf := newFaultTestHandler(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") })

	rr := serveBoundary(h, next, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, fallbackErrorBody, rr.Body.String())
	assert.Contains(t, logBuf.String(), "encoder broken")
}

func TestWithFaultBoundary_JournalFailureDoesNotChangeResponse(t *testing.T) {
	h, journal, logBuf := newFaultTestHandler(t)
	journal.recordErr = errors.New("journal down")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") })
	rr := serveBoundary(h, next, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "boom", decodeErrorBody(t, rr)["message"])
	assert.Contains(t, logBuf.String(), "failed to record fault")
}

func TestWithFaultBoundary_NoJournalConfigured(t *testing.T) {
	h, _, _ := newFaultTestHandler(t)
	h.services.FaultJournal = nil

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") })
	rr := serveBoundary(h, next, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestWithFaultBoundary_HideStackTrace(t *testing.T) {
	h, journal, logBuf := newFaultTestHandler(t)
	h.hideStackTrace = true

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") })
	rr := serveBoundary(h, next, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, `{"statusCode":500,"message":"boom"}`, rr.Body.String())

	require.Len(t, journal.records, 1)
	assert.NotNil(t, journal.records[0].StackTrace, "the journal keeps the trace")
	assert.Contains(t, logBuf.String(), `"stack_trace":"goroutine`)
}

func TestWithFaultBoundary_Idempotent(t *testing.T) {
	h, journal, _ := newFaultTestHandler(t)
	next := (&Handler{}).handle(func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("same fault")
	})

	first := serveBoundary(h, next, httptest.NewRequest(http.MethodGet, "/", nil))
	second := serveBoundary(h, next, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Len(t, journal.records, 2)
}

func TestWithFaultBoundary_StackTraceNotHTMLEscaped(t *testing.T) {
	h, _, _ := newFaultTestHandler(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("a < b & c") })

	rr := serveBoundary(h, next, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, strings.Contains(rr.Body.String(), `"message":"a < b & c"`), rr.Body.String())
}

func TestRestoreHeader(t *testing.T) {
	header := http.Header{
		"X-Trace-Id":     {"new"},
		"X-Custom":       {"leak"},
		"Content-Length": {"10"},
	}
	snapshot := http.Header{
		"X-Trace-Id":     {"original"},
		"Content-Length": {"99"},
	}

	restoreHeader(header, snapshot)

	assert.Equal(t, http.Header{"X-Trace-Id": {"original"}}, header)
}

func TestReplaceHeader_KeepsContentLength(t *testing.T) {
	header := http.Header{"X-Late": {"1"}}
	snapshot := http.Header{"Content-Length": {"2"}, "X-Early": {"1"}}

	replaceHeader(header, snapshot)

	assert.Equal(t, http.Header{"Content-Length": {"2"}, "X-Early": {"1"}}, header)
}
