package api

import (
	"encoding/json"
	"net/http"

	"log/slog"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeDBError logs the driver error and answers with a generic body so
// driver internals never reach the client.
func writeDBError(w http.ResponseWriter, op string, err error) {
	logger.Error("database error", slog.String("op", op), slog.Any("err", err))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "database error"})
}
