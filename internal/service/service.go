package service

import (
	"context"

	"github.com/aayushkuntal/piepay-server/internal/model"
)

// OfferService defines operations for ingesting vendor offer payloads.
type OfferService interface {
	// ProcessPayload extracts offers from a vendor payload and stores them.
	ProcessPayload(ctx context.Context, payload *model.VendorPayload) *model.StoreResult

	// StoreOffers persists the given offers idempotently, keyed by
	// adjustment ID. Storage failures are reported in the result rather
	// than returned: Identified always reflects the input size, while
	// Created and Modified only count durably saved offers.
	StoreOffers(ctx context.Context, offers []model.Offer) *model.StoreResult
}

// DiscountService defines the discount resolution operation.
type DiscountService interface {
	// CalculateHighestDiscount returns the best discount available for the
	// amount, bank and optional payment instrument (empty string means any
	// instrument). Results are served through a TTL-bounded cache.
	CalculateHighestDiscount(ctx context.Context, amountToPay float64, bankName, paymentInstrument string) (*model.DiscountResult, error)
}
