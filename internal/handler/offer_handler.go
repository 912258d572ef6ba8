package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aayushkuntal/piepay-server/internal/model"
	"github.com/aayushkuntal/piepay-server/internal/service"

	"github.com/rs/zerolog"
)

// OfferHandler handles offer ingestion HTTP requests.
type OfferHandler struct {
	service service.OfferService
	logger  zerolog.Logger
}

// NewOfferHandler creates a new offer handler.
func NewOfferHandler(service service.OfferService, logger zerolog.Logger) *OfferHandler {
	return &OfferHandler{
		service: service,
		logger:  logger.With().Str("handler", "offer").Logger(),
	}
}

// Process handles POST /api/v1/offer requests. It always reports how many
// offers were identified, even when persistence partially failed.
func (h *OfferHandler) Process(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.OfferIngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if req.FlipkartOfferAPIResponse == nil {
		writeError(w, r, http.StatusBadRequest, model.ErrMissingPayload.Message, h.logger)
		return
	}

	result := h.service.ProcessPayload(r.Context(), req.FlipkartOfferAPIResponse)

	if len(result.Errors) > 0 {
		h.logger.Warn().
			Int("identified", result.Identified).
			Int("created", result.Created).
			Int("error_count", len(result.Errors)).
			Msg("offer ingestion completed with errors")
	}

	writeJSON(w, http.StatusOK, model.OfferIngestResponse{
		NoOfOffersIdentified: result.Identified,
		NoOfNewOffersCreated: result.Created,
	})
}
