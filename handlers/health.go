package handlers

import (
	"net/http"
	"time"
)

type healthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Health reports whether the store is reachable
// @Summary      Health check
// @Description  Report whether the store is reachable.
// @Tags         health
// @Produce      json
// @Success      200  {object}  Response{data=healthStatus}
// @Failure      503  {object}  Response{error=string}
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.Error("health check failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "storage unavailable")
		return
	}
	writeJSON(w, http.StatusOK, healthStatus{Status: "ok", Timestamp: time.Now().UTC()})
}
