package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	httpStatus := http.StatusOK

	ctx, cancel := h.storeContext(r)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	respondJSON(w, httpStatus, map[string]string{
		"status": status,
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	names := make([]string, len(h.notifiers))
	for i, n := range h.notifiers {
		names[i] = n.Name()
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"uptime":      formatDuration(time.Since(h.startTime)),
		"environment": h.cfg.Environment,
		"collection":  h.cfg.Collection,
		"notifiers":   names,
		"timestamp":   time.Now().Unix(),
	})
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
