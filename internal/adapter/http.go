package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-fault-boundary/internal/logger"
	"github.com/MKhiriev/go-fault-boundary/internal/utils"
	"github.com/MKhiriev/go-fault-boundary/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. The address may omit the scheme, "http://" is assumed.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{client: utils.NewHTTPClient(baseURL, timeout), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Probe implements [ServerAdapter].
func (h *httpServerAdapter) Probe(ctx context.Context, path string) (ProbeResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return ProbeResult{}, fmt.Errorf("probe request: %w", err)
	}

	result := ProbeResult{
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		TraceID:     resp.Header().Get(traceIDHeader),
	}

	if fault, ok := decodeFault(resp); ok {
		result.Fault = fault
	} else {
		result.Body = resp.String()
	}

	h.logger.Debug().
		Str("path", path).
		Int("status", result.StatusCode).
		Str("trace_id", result.TraceID).
		Msg("probe finished")

	return result, nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

// RecentFaults implements [ServerAdapter].
func (h *httpServerAdapter) RecentFaults(ctx context.Context, limit int) ([]models.FaultRecord, error) {
	var records []models.FaultRecord

	req := h.client.R().
		SetContext(ctx).
		SetResult(&records)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/api/faults")
	if err != nil {
		return nil, fmt.Errorf("faults request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return records, nil
}
