package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"clash-player-proxy/internal/domain"
	"clash-player-proxy/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

// writeError renders the failure envelope. status is both the HTTP status and
// the envelope's optional status field; pass includeStatus=false for local
// rejections where the envelope omits it.
func writeError(w http.ResponseWriter, status int, message string, details any, includeStatus bool, logger *slog.Logger) {
	body := domain.ErrorResponse{
		Message: message,
		Error:   true,
		Details: details,
	}
	if includeStatus {
		body.Status = status
	}
	writeJSON(w, status, body, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
