package handler

import (
	"net/http"

	"github.com/localprint/api/internal/database"
)

// HealthHandler reports service and database health
type HealthHandler struct {
	db database.Database
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db database.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

// healthStatus is the body of a health check response
type healthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Health handles GET /health - liveness plus a database ping
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := healthStatus{Status: "ok", Database: "ok"}
	code := http.StatusOK

	if err := h.db.Ping(r.Context()); err != nil {
		status.Status = "degraded"
		status.Database = "unreachable"
		code = http.StatusServiceUnavailable
	}

	WriteJSON(w, code, status)
}

// Root handles GET /{$} - a bare liveness message for the API root
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Localprint backend running",
	})
}
