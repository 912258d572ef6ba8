package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aayushkuntal/piepay-server/internal/middleware"
	"github.com/aayushkuntal/piepay-server/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes data as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a standard error response, tagged with the request's
// correlation ID so clients can quote it when reporting problems.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger zerolog.Logger) {
	correlationID := middleware.CorrelationIDFromContext(r.Context())

	logger.Error().
		Str("error", message).
		Int("status", status).
		Str("correlation_id", correlationID).
		Msg("request failed")

	writeJSON(w, status, model.ErrorResponse{
		Error:         message,
		CorrelationID: correlationID,
	})
}
