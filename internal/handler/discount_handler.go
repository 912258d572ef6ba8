package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aayushkuntal/piepay-server/internal/model"
	"github.com/aayushkuntal/piepay-server/internal/service"
	"github.com/aayushkuntal/piepay-server/internal/validator"

	playground "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// DiscountHandler handles discount resolution HTTP requests.
type DiscountHandler struct {
	service service.DiscountService
	logger  zerolog.Logger
}

// NewDiscountHandler creates a new discount handler.
func NewDiscountHandler(service service.DiscountService, logger zerolog.Logger) *DiscountHandler {
	return &DiscountHandler{
		service: service,
		logger:  logger.With().Str("handler", "discount").Logger(),
	}
}

// discountQuery carries the validated query parameters of a discount request.
type discountQuery struct {
	AmountToPay       float64 `validate:"required,gt=0"`
	BankName          string  `validate:"required,min=2"`
	PaymentInstrument string  `validate:"omitempty,instrument"`
}

// GetHighest handles GET /api/v1/highest-discount requests.
func (h *DiscountHandler) GetHighest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	params := r.URL.Query()

	amount, err := strconv.ParseFloat(params.Get("amountToPay"), 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrInvalidAmount.Message, h.logger)
		return
	}

	query := discountQuery{
		AmountToPay:       amount,
		BankName:          params.Get("bankName"),
		PaymentInstrument: params.Get("paymentInstrument"),
	}

	if err := validator.Validate.Struct(query); err != nil {
		writeError(w, r, http.StatusBadRequest, validationMessage(err), h.logger)
		return
	}

	result, err := h.service.CalculateHighestDiscount(r.Context(), query.AmountToPay, query.BankName, query.PaymentInstrument)
	if err != nil {
		h.logger.Error().Err(err).Msg("discount resolution failed")
		writeError(w, r, http.StatusInternalServerError, "failed to calculate discount", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// validationMessage maps a validator error to the matching domain message.
func validationMessage(err error) string {
	var fieldErrors playground.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		switch fieldErrors[0].Field() {
		case "AmountToPay":
			return model.ErrInvalidAmount.Message
		case "BankName":
			return model.ErrInvalidBankName.Message
		case "PaymentInstrument":
			return model.ErrInvalidInstrument.Message
		}
	}
	return "invalid request"
}
