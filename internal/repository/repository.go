package repository

import (
	"context"

	"github.com/aayushkuntal/piepay-server/internal/model"
)

// OfferRepository defines the interface for offer persistence.
type OfferRepository interface {
	// BulkUpsert writes all offers in one transaction, keyed by adjustment
	// ID: new keys are inserted, existing records are fully replaced. It
	// returns how many offers were created and how many modified. A failed
	// transaction leaves no partial writes behind.
	BulkUpsert(ctx context.Context, offers []model.Offer) (created, modified int, err error)

	// FindApplicable returns the active offers matching the discount query:
	// bank equality, minimum amount strictly below the transaction amount,
	// max transaction value at or above it, and, when an instrument is
	// given, membership in the offer's instrument set. An offer with an
	// empty instrument set therefore never matches an instrument-specific
	// query.
	FindApplicable(ctx context.Context, query model.OfferQuery) ([]model.Offer, error)
}
