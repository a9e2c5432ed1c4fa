package http

import (
	"fmt"
	"net/http"
)

// getServerVersion answers GET /api/version/ with the configured version as
// plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) error {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte(version)); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingResponse, err)
	}
	return nil
}
