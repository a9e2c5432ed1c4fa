package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fault-boundary/models"
)

func TestWithFaultFilter_HandlesFaultInPlace(t *testing.T) {
	tests := []struct {
		name        string
		fn          HandlerFunc
		wantMessage string
	}{
		{
			name: "returned error",
			fn: func(w http.ResponseWriter, r *http.Request) error {
				return errors.New("filtered error")
			},
			wantMessage: "filtered error",
		},
		{
			name: "panic",
			fn: func(w http.ResponseWriter, r *http.Request) error {
				panic("filtered panic")
			},
			wantMessage: "filtered panic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, journal, logBuf := newFaultTestHandler(t)

			rr := serveBoundary(h, h.withFaultFilter(tt.fn), httptest.NewRequest(http.MethodGet, "/api/filtered", nil))

			require.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantMessage, decodeErrorBody(t, rr)["message"])

			require.Len(t, journal.records, 1, "the boundary must not see a filtered fault")
			assert.Equal(t, models.FaultSourceFilter, journal.records[0].Source)

			logs := logBuf.String()
			assert.Contains(t, logs, "unhandled fault intercepted by fault filter")
			assert.NotContains(t, logs, "unhandled fault intercepted by fault boundary")
		})
	}
}

func TestWithFaultFilter_WithoutBoundary(t *testing.T) {
	h, journal, _ := newFaultTestHandler(t)

	fn := h.withFaultFilter(func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("alone")
	})

	rr := httptest.NewRecorder()
	fn.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, `{"statusCode":500,"message":"alone"}`, rr.Body.String())
	require.Len(t, journal.records, 1)
	assert.Empty(t, journal.records[0].TraceID)
}

func TestWithFaultFilter_SuccessPassesThrough(t *testing.T) {
	h, journal, _ := newFaultTestHandler(t)

	fn := h.withFaultFilter(func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusAccepted)
		_, err := w.Write([]byte("accepted"))
		return err
	})

	rr := serveBoundary(h, fn, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "accepted", rr.Body.String())
	assert.Empty(t, journal.records)
}

func TestWithFaultFilter_CommittedResponseAbortsOnce(t *testing.T) {
	h, journal, _ := newFaultTestHandler(t)

	fn := h.withFaultFilter(func(w http.ResponseWriter, r *http.Request) error {
		w.Write([]byte("half"))
		return errors.New("late")
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		serveBoundary(h, fn, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	require.Len(t, journal.records, 1)
	assert.Equal(t, models.FaultSourceFilter, journal.records[0].Source)
}
