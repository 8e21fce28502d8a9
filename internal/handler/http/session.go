package http

import (
	"net/http"

	"github.com/MKhiriev/go-secure-vault/internal/service"
	"github.com/MKhiriev/go-secure-vault/internal/utils"
)

func (h *Handler) openSession(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.SessionService.Open(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.openSession", err)
		return
	}

	writeJSON(w, r, "*Handler.openSession", resp, http.StatusCreated)
}

func (h *Handler) closeSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "*Handler.closeSession", service.ErrSessionNotFound)
		return
	}

	if err := h.services.SessionService.Close(r.Context(), sessionID); err != nil {
		writeError(w, r, "*Handler.closeSession", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
