package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-secure-vault/internal/logger"
)

// getServerVersion answers GET /api/version. The adapter logs it when the
// terminal client connects.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, version); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("failed to write version")
	}
}
