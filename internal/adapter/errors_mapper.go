package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-fault-boundary/models"
)

const traceIDHeader = "X-Trace-ID"

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusInternalServerError:
		if fault, ok := decodeFault(resp); ok {
			return &FaultError{Response: *fault, TraceID: resp.Header().Get(traceIDHeader)}
		}
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	case http.StatusServiceUnavailable:
		if fault, ok := decodeFault(resp); ok {
			body = fault.Message
		}
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
	}
}

// decodeFault reads the JSON error body. It reports false for any other
// content, e.g. the plain text of net/http's own error pages.
func decodeFault(resp *resty.Response) (*models.ErrorResponse, bool) {
	if !strings.HasPrefix(resp.Header().Get("Content-Type"), "application/json") {
		return nil, false
	}

	var fault models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &fault); err != nil || fault.StatusCode == 0 {
		return nil, false
	}
	return &fault, true
}
