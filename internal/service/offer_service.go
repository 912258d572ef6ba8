package service

import (
	"context"

	"github.com/aayushkuntal/piepay-server/internal/cache"
	"github.com/aayushkuntal/piepay-server/internal/extractor"
	"github.com/aayushkuntal/piepay-server/internal/model"
	"github.com/aayushkuntal/piepay-server/internal/repository"

	"github.com/rs/zerolog"
)

// offerService implements OfferService.
type offerService struct {
	repo   repository.OfferRepository
	cache  cache.Cache
	logger zerolog.Logger
}

// NewOfferService creates a new offer ingestion service.
func NewOfferService(repo repository.OfferRepository, c cache.Cache, logger zerolog.Logger) OfferService {
	return &offerService{
		repo:   repo,
		cache:  c,
		logger: logger.With().Str("service", "offer").Logger(),
	}
}

// ProcessPayload extracts offers from a vendor payload and stores them.
func (s *offerService) ProcessPayload(ctx context.Context, payload *model.VendorPayload) *model.StoreResult {
	offers := extractor.ExtractOffers(payload)

	s.logger.Debug().
		Int("identified", len(offers)).
		Msg("offers extracted from vendor payload")

	return s.StoreOffers(ctx, offers)
}

// StoreOffers persists the given offers idempotently, keyed by adjustment ID.
func (s *offerService) StoreOffers(ctx context.Context, offers []model.Offer) *model.StoreResult {
	result := &model.StoreResult{
		Identified: len(offers),
		Errors:     []model.StoreError{},
	}

	if len(offers) == 0 {
		return result
	}

	// Invalid offers become error entries without blocking the rest, the
	// unordered-bulk-write contract.
	valid := make([]model.Offer, 0, len(offers))
	for _, offer := range offers {
		if err := offer.Validate(); err != nil {
			s.logger.Warn().
				Err(err).
				Str("adjustment_id", offer.AdjustmentID).
				Msg("rejecting invalid offer")
			result.Errors = append(result.Errors, model.StoreError{Message: err.Error()})
			continue
		}
		valid = append(valid, offer)
	}

	if len(valid) == 0 {
		return result
	}

	created, modified, err := s.repo.BulkUpsert(ctx, valid)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int("identified", result.Identified).
			Msg("bulk upsert of offers failed")
		result.Errors = append(result.Errors, model.StoreError{Message: err.Error()})
		return result
	}

	result.Created = created
	result.Modified = modified

	// Drop stale per-offer cache entries for everything we just wrote.
	keys := make([]string, len(valid))
	for i, offer := range valid {
		keys[i] = offerCacheKey(offer.AdjustmentID)
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.Warn().
			Err(err).
			Int("key_count", len(keys)).
			Msg("failed to invalidate offer cache entries")
	}

	s.logger.Info().
		Int("identified", result.Identified).
		Int("created", created).
		Int("modified", modified).
		Msg("offers stored")

	return result
}

func offerCacheKey(adjustmentID string) string {
	return "offer:" + adjustmentID
}
