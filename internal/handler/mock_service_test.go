package handler

import (
	"context"

	"github.com/aayushkuntal/piepay-server/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockOfferService is a testify mock for service.OfferService.
type MockOfferService struct {
	mock.Mock
}

func (m *MockOfferService) ProcessPayload(ctx context.Context, payload *model.VendorPayload) *model.StoreResult {
	args := m.Called(ctx, payload)
	return args.Get(0).(*model.StoreResult)
}

func (m *MockOfferService) StoreOffers(ctx context.Context, offers []model.Offer) *model.StoreResult {
	args := m.Called(ctx, offers)
	return args.Get(0).(*model.StoreResult)
}

// MockDiscountService is a testify mock for service.DiscountService.
type MockDiscountService struct {
	mock.Mock
}

func (m *MockDiscountService) CalculateHighestDiscount(ctx context.Context, amountToPay float64, bankName, paymentInstrument string) (*model.DiscountResult, error) {
	args := m.Called(ctx, amountToPay, bankName, paymentInstrument)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DiscountResult), args.Error(1)
}
