package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/insightboard/insightboard-be/internal/http/respond"
)

// HealthHandler serves the root liveness probe and an uptime endpoint.
type HealthHandler struct {
	startedAt time.Time
	resp      *respond.Responder
}

// NewHealthHandler creates a health endpoint handler.
func NewHealthHandler(startedAt time.Time, resp *respond.Responder) *HealthHandler {
	return &HealthHandler{startedAt: startedAt, resp: resp}
}

// Register wires the handler into the router.
func (h *HealthHandler) Register(r chi.Router) {
	r.Get("/", h.handleRoot)
	r.Get("/health", h.handleHealth)
}

func (h *HealthHandler) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Insightboard API is running"))
}

func (h *HealthHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.resp.JSON(w, http.StatusOK, "ok", map[string]string{
		"uptime": time.Since(h.startedAt).Truncate(time.Second).String(),
	})
}
