package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aayushkuntal/piepay-server/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discountRequest(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func TestDiscountHandler_GetHighest(t *testing.T) {
	svc := new(MockDiscountService)
	svc.On("CalculateHighestDiscount", mock.Anything, 1000.0, "HDFC", "CREDIT").
		Return(&model.DiscountResult{HighestDiscountAmount: 50}, nil)

	h := NewDiscountHandler(svc, zerolog.Nop())

	req := discountRequest("/api/v1/highest-discount?amountToPay=1000&bankName=HDFC&paymentInstrument=CREDIT")
	rec := httptest.NewRecorder()

	h.GetHighest(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.DiscountResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 50.0, resp.HighestDiscountAmount)
	svc.AssertExpectations(t)
}

func TestDiscountHandler_GetHighest_InstrumentOptional(t *testing.T) {
	svc := new(MockDiscountService)
	svc.On("CalculateHighestDiscount", mock.Anything, 1000.0, "AXIS", "").
		Return(&model.DiscountResult{HighestDiscountAmount: 0}, nil)

	h := NewDiscountHandler(svc, zerolog.Nop())

	req := discountRequest("/api/v1/highest-discount?amountToPay=1000&bankName=AXIS")
	rec := httptest.NewRecorder()

	h.GetHighest(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestDiscountHandler_GetHighest_BadRequest(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"missing amount", "/api/v1/highest-discount?bankName=HDFC"},
		{"non-numeric amount", "/api/v1/highest-discount?amountToPay=abc&bankName=HDFC"},
		{"zero amount", "/api/v1/highest-discount?amountToPay=0&bankName=HDFC"},
		{"negative amount", "/api/v1/highest-discount?amountToPay=-5&bankName=HDFC"},
		{"missing bank", "/api/v1/highest-discount?amountToPay=1000"},
		{"bank too short", "/api/v1/highest-discount?amountToPay=1000&bankName=H"},
		{"unknown instrument", "/api/v1/highest-discount?amountToPay=1000&bankName=HDFC&paymentInstrument=CHEQUE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockDiscountService)
			h := NewDiscountHandler(svc, zerolog.Nop())

			rec := httptest.NewRecorder()
			h.GetHighest(rec, discountRequest(tt.target))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			svc.AssertNotCalled(t, "CalculateHighestDiscount")
		})
	}
}

func TestDiscountHandler_GetHighest_ServiceError(t *testing.T) {
	svc := new(MockDiscountService)
	svc.On("CalculateHighestDiscount", mock.Anything, 1000.0, "HDFC", "").
		Return(nil, errors.New("connection refused"))

	h := NewDiscountHandler(svc, zerolog.Nop())

	req := discountRequest("/api/v1/highest-discount?amountToPay=1000&bankName=HDFC")
	rec := httptest.NewRecorder()

	h.GetHighest(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "failed to calculate discount", resp.Error)
}

func TestDiscountHandler_GetHighest_MethodNotAllowed(t *testing.T) {
	svc := new(MockDiscountService)
	h := NewDiscountHandler(svc, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/highest-discount", nil)
	rec := httptest.NewRecorder()

	h.GetHighest(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
