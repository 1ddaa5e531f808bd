package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

// getServerVersion answers with the bare version string of the server.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := io.WriteString(w, version); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version response")
	}
}
