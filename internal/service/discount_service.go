package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aayushkuntal/piepay-server/internal/cache"
	"github.com/aayushkuntal/piepay-server/internal/model"
	"github.com/aayushkuntal/piepay-server/internal/repository"

	"github.com/rs/zerolog"
)

// DefaultDiscountTTL bounds how long a resolved discount may be served from
// cache. Offer writes do not invalidate discount results; staleness is an
// accepted tradeoff bounded by this TTL.
const DefaultDiscountTTL = 5 * time.Minute

// discountService implements DiscountService with a read-through cache.
type discountService struct {
	repo   repository.OfferRepository
	cache  cache.Cache
	ttl    time.Duration
	logger zerolog.Logger
}

// NewDiscountService creates a new discount resolution service. A
// non-positive ttl falls back to DefaultDiscountTTL.
func NewDiscountService(repo repository.OfferRepository, c cache.Cache, ttl time.Duration, logger zerolog.Logger) DiscountService {
	if ttl <= 0 {
		ttl = DefaultDiscountTTL
	}
	return &discountService{
		repo:   repo,
		cache:  c,
		ttl:    ttl,
		logger: logger.With().Str("service", "discount").Logger(),
	}
}

// CalculateHighestDiscount returns the best discount available for the
// amount, bank and optional payment instrument.
func (s *discountService) CalculateHighestDiscount(ctx context.Context, amountToPay float64, bankName, paymentInstrument string) (*model.DiscountResult, error) {
	bank := strings.ToUpper(bankName)
	instrument := strings.ToUpper(paymentInstrument)

	key := discountCacheKey(amountToPay, bank, instrument)

	var cached model.DiscountResult
	err := cache.GetJSON(ctx, s.cache, key, &cached)
	if err == nil {
		s.logger.Debug().Str("cache_key", key).Msg("discount served from cache")
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrNotFound) {
		// A broken cache degrades to a miss; resolution still works.
		s.logger.Warn().Err(err).Str("cache_key", key).Msg("discount cache read failed")
	}

	offers, err := s.repo.FindApplicable(ctx, model.OfferQuery{
		AmountToPay:       amountToPay,
		BankName:          model.BankName(bank),
		PaymentInstrument: model.PaymentInstrument(instrument),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve discount: %w", err)
	}

	highest := 0.0
	for _, offer := range offers {
		if discount := discountForOffer(offer, amountToPay); discount > highest {
			highest = discount
		}
	}

	result := &model.DiscountResult{HighestDiscountAmount: highest}

	if err := cache.SetJSON(ctx, s.cache, key, result, s.ttl); err != nil {
		s.logger.Warn().Err(err).Str("cache_key", key).Msg("failed to cache discount result")
	}

	s.logger.Debug().
		Float64("amount", amountToPay).
		Str("bank", bank).
		Str("instrument", instrument).
		Int("candidates", len(offers)).
		Float64("highest_discount", highest).
		Msg("discount resolved")

	return result, nil
}

// discountForOffer evaluates one offer against a transaction amount. The
// minimum-amount guard duplicates the storage filter (which is strict) and is
// kept for callers that bypass the query path.
func discountForOffer(offer model.Offer, amountToPay float64) float64 {
	if amountToPay < offer.MinimumAmount {
		return 0
	}

	var discount float64
	switch offer.DiscountType {
	case model.DiscountPercentage:
		discount = amountToPay * offer.DiscountValue / 100
	case model.DiscountFixed:
		discount = offer.DiscountValue
	case model.DiscountCashback:
		if offer.CashbackSubType == nil {
			return 0
		}
		switch *offer.CashbackSubType {
		case model.CashbackPercentage:
			discount = amountToPay * offer.DiscountValue / 100
		case model.CashbackFlat:
			discount = offer.DiscountValue
		default:
			return 0
		}
	default:
		return 0
	}

	if discount > offer.MaximumDiscount {
		return offer.MaximumDiscount
	}
	return discount
}

// discountCacheKey builds the composite cache key for a resolution request.
// An absent instrument is recorded as "any".
func discountCacheKey(amountToPay float64, bank, instrument string) string {
	if instrument == "" {
		instrument = "any"
	}
	amount := strconv.FormatFloat(amountToPay, 'f', -1, 64)
	return fmt.Sprintf("discount_%s_%s_%s", amount, bank, instrument)
}
