package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fault-boundary/internal/config"
	"github.com/MKhiriev/go-fault-boundary/internal/logger"
	"github.com/MKhiriev/go-fault-boundary/internal/service"
	"github.com/MKhiriev/go-fault-boundary/models"
)

// ─────────────────────────────────────────────
// Test doubles
// ─────────────────────────────────────────────

// recordingJournal implements service.FaultJournal and keeps every record.
type recordingJournal struct {
	records   []models.FaultRecord
	recordErr error

	disabled  bool
	recent    []models.FaultRecord
	recentErr error
	lastLimit int
}

func (j *recordingJournal) Record(_ context.Context, record models.FaultRecord) error {
	j.records = append(j.records, record)
	return j.recordErr
}

func (j *recordingJournal) Recent(_ context.Context, limit int) ([]models.FaultRecord, error) {
	j.lastLimit = limit
	return j.recent, j.recentErr
}

func (j *recordingJournal) Enabled() bool {
	return !j.disabled
}

// newFaultTestHandler builds a Handler whose logs go to the returned buffer
// and whose journal is the returned recorder.
func newFaultTestHandler(t *testing.T) (*Handler, *recordingJournal, *bytes.Buffer) {
	t.Helper()

	buf := new(bytes.Buffer)
	journal := &recordingJournal{}
	h := NewHandler(&service.Services{
		AppInfoService: &mockAppInfoService{version: "test-version"},
		FaultJournal:   journal,
	}, config.StructuredConfig{}, &logger.Logger{Logger: zerolog.New(buf)})

	return h, journal, buf
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	cfg := config.StructuredConfig{
		App:    config.App{HideStackTrace: true},
		Server: config.Server{RequestTimeout: 3 * time.Second},
	}

	h := NewHandler(svc, cfg, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.True(t, h.hideStackTrace)
	assert.Equal(t, 3*time.Second, h.requestTimeout)
	assert.NotNil(t, h.traceIDs)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, config.StructuredConfig{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, config.StructuredConfig{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}

// ─────────────────────────────────────────────
// handle
// ─────────────────────────────────────────────

func TestHandle_Success(t *testing.T) {
	h, _, _ := newFaultTestHandler(t)

	handler := h.handle(func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusAccepted)
		return nil
	})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestHandle_RaisesToScope(t *testing.T) {
	h, _, _ := newFaultTestHandler(t)
	want := errors.New("raised")

	scope := &faultScope{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(withFaultScope(req.Context(), scope))

	rr := httptest.NewRecorder()
	h.handle(func(w http.ResponseWriter, r *http.Request) error { return want }).ServeHTTP(rr, req)

	assert.Same(t, want, scope.err)
	assert.Empty(t, rr.Body.String(), "the endpoint must not answer when a scope takes the error")
}

func TestHandle_WithoutScope(t *testing.T) {
	h, _, _ := newFaultTestHandler(t)

	rr := httptest.NewRecorder()
	h.handle(func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("lost")
	}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), http.StatusText(http.StatusInternalServerError))
}

func TestFaultScope_KeepsFirstError(t *testing.T) {
	first := errors.New("first")
	scope := &faultScope{}

	scope.raise(first)
	scope.raise(errors.New("second"))

	assert.Same(t, first, scope.err)
}

func TestFaultScopeFromContext_Missing(t *testing.T) {
	_, ok := faultScopeFromContext(context.Background())
	assert.False(t, ok)

	_, ok = faultScopeFromContext(withFaultScope(context.Background(), nil))
	assert.False(t, ok)
}
