package handlers

import "net/http"

// SystemHandler handles health endpoints
type SystemHandler struct{}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// Ping is the liveness probe used by the browser client.
func (h *SystemHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
