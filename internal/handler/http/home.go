package http

import (
	"net/http"

	"github.com/pkg/errors"
)

const homeFaultMessage = "Exception in Home Controller."

// home always fails. It is registered behind [Handler.withFaultFilter].
func (h *Handler) home(w http.ResponseWriter, r *http.Request) error {
	return errors.New(homeFaultMessage)
}

// homePanic always panics and is left to the fault boundary.
func (h *Handler) homePanic(w http.ResponseWriter, r *http.Request) {
	panic(homeFaultMessage)
}
