package service

import (
	"context"

	"github.com/aayushkuntal/piepay-server/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockOfferRepository is a testify mock for repository.OfferRepository.
type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) BulkUpsert(ctx context.Context, offers []model.Offer) (int, int, error) {
	args := m.Called(ctx, offers)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockOfferRepository) FindApplicable(ctx context.Context, query model.OfferQuery) ([]model.Offer, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Offer), args.Error(1)
}
