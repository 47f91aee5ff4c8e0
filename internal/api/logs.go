package api

import (
	"net/http"

	"github.com/Daancoria/inventoryapp/internal/service"
)

// LogsHandler handles audit log endpoints.
type LogsHandler struct {
	Core *service.Service
}

// List handles GET /api/logs, most recent entry first.
func (h *LogsHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Core.Logs(r.Context(), GetSession(r.Context()))
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, entries)
}

// Clear handles DELETE /api/logs. The clear itself becomes the first entry
// of the fresh log.
func (h *LogsHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.Core.ClearLogs(r.Context(), GetSession(r.Context())); err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "logs cleared"})
}
