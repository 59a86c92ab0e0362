package api

import (
	"fmt"
	"net/http"

	"log/slog"

	"github.com/garnizeh/attendify/internal/db"
)

type SystemHandler struct {
	db *db.DB
}

func NewSystemHandler(database *db.DB) *SystemHandler {
	return &SystemHandler{db: database}
}

func (h *SystemHandler) HomeHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Attendify API is running!"})
}

// HealthHandler reports readiness, not just liveness: the database must
// answer a ping for the endpoint to say ok.
func (h *SystemHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		logger.Error("health check failed", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"status": "unhealthy", "error": "database unreachable"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "attendify"})
}

func (h *SystemHandler) VersionHandler(version, buildTime string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"version":"%s","buildTime":"%s"}`, version, buildTime)
	}
}
