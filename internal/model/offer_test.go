package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOffer() Offer {
	return Offer{
		AdjustmentID:       "ADJ001",
		BankName:           BankHDFC,
		DiscountType:       DiscountPercentage,
		DiscountValue:      10,
		MinimumAmount:      100,
		MaximumDiscount:    50,
		MaxTxnValue:        MaxTxnValueDefault,
		PaymentInstruments: []PaymentInstrument{InstrumentCredit},
		IsActive:           true,
	}
}

func TestOfferValidate_Valid(t *testing.T) {
	offer := validOffer()
	require.NoError(t, offer.Validate())
}

func TestOfferValidate_ValidCashback(t *testing.T) {
	offer := validOffer()
	offer.DiscountType = DiscountCashback
	subType := CashbackFlat
	offer.CashbackSubType = &subType

	require.NoError(t, offer.Validate())
}

func TestOfferValidate_Invalid(t *testing.T) {
	flat := CashbackFlat
	bogus := CashbackSubType("BOGUS")

	tests := []struct {
		name   string
		mutate func(o *Offer)
	}{
		{"missing adjustment ID", func(o *Offer) { o.AdjustmentID = "" }},
		{"unknown bank", func(o *Offer) { o.BankName = "NOT A BANK" }},
		{"unknown discount type", func(o *Offer) { o.DiscountType = "GIFT" }},
		{"cashback without sub-type", func(o *Offer) { o.DiscountType = DiscountCashback }},
		{"unknown cashback sub-type", func(o *Offer) {
			o.DiscountType = DiscountCashback
			o.CashbackSubType = &bogus
		}},
		{"sub-type on non-cashback offer", func(o *Offer) { o.CashbackSubType = &flat }},
		{"negative discount value", func(o *Offer) { o.DiscountValue = -1 }},
		{"negative minimum amount", func(o *Offer) { o.MinimumAmount = -1 }},
		{"negative maximum discount", func(o *Offer) { o.MaximumDiscount = -1 }},
		{"unknown instrument", func(o *Offer) {
			o.PaymentInstruments = []PaymentInstrument{"CHEQUE"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer := validOffer()
			tt.mutate(&offer)
			assert.Error(t, offer.Validate())
		})
	}
}

func TestOfferValidate_OtherBankAllowed(t *testing.T) {
	offer := validOffer()
	offer.BankName = BankOther
	require.NoError(t, offer.Validate())
}

func TestOfferValidate_EmptyInstrumentsAllowed(t *testing.T) {
	offer := validOffer()
	offer.PaymentInstruments = nil
	require.NoError(t, offer.Validate())
}

func TestIsKnownInstrument(t *testing.T) {
	assert.True(t, IsKnownInstrument("CREDIT"))
	assert.True(t, IsKnownInstrument("EMI_OPTIONS"))
	assert.False(t, IsKnownInstrument("credit"))
	assert.False(t, IsKnownInstrument("CHEQUE"))
}
