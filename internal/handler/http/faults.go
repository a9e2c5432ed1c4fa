package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-fault-boundary/internal/service"
	"github.com/MKhiriev/go-fault-boundary/internal/utils"
	"github.com/MKhiriev/go-fault-boundary/models"
)

// listFaults answers GET /api/faults?limit=N with the newest journal
// records. A malformed limit is returned as an error and becomes a fault.
func (h *Handler) listFaults(w http.ResponseWriter, r *http.Request) error {
	journal := h.services.FaultJournal
	if !journal.Enabled() {
		_, err := utils.WriteJSON(w, models.ErrorResponse{
			StatusCode: http.StatusServiceUnavailable,
			Message:    service.ErrFaultJournalDisabled.Error(),
		}, http.StatusServiceUnavailable)
		return err
	}

	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w %q: %w", ErrInvalidLimitParam, raw, err)
		}
		limit = parsed
	}

	records, err := journal.Recent(r.Context(), limit)
	if err != nil {
		return err
	}
	if records == nil {
		records = []models.FaultRecord{}
	}

	_, err = utils.WriteJSON(w, records, http.StatusOK)
	return err
}
