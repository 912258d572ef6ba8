package model

import (
	"fmt"
	"time"
)

// BankName identifies the issuing bank of an offer. Values outside the known
// catalogue are collapsed to BankOther at extraction time.
type BankName string

const (
	BankAxis      BankName = "AXIS"
	BankHDFC      BankName = "HDFC"
	BankICICI     BankName = "ICICI"
	BankSBI       BankName = "SBI"
	BankKotak     BankName = "KOTAK"
	BankIDFCFirst BankName = "IDFC FIRST"
	BankIDFC      BankName = "IDFC"
	BankIndusInd  BankName = "INDUSIND"
	BankFederal   BankName = "FEDERAL"
	BankYes       BankName = "YES"
	BankRBL       BankName = "RBL"
	BankCiti      BankName = "CITI"
	BankHSBC      BankName = "HSBC"
	BankAmex      BankName = "AMEX"
	BankBOB       BankName = "BOB"
	BankOther     BankName = "OTHER"
)

// KnownBankNames is the closed catalogue of banks an offer may carry,
// including the BankOther fallback.
var KnownBankNames = []BankName{
	BankAxis, BankHDFC, BankICICI, BankSBI, BankKotak,
	BankIDFCFirst, BankIDFC, BankIndusInd, BankFederal, BankYes,
	BankRBL, BankCiti, BankHSBC, BankAmex, BankBOB, BankOther,
}

// DiscountType classifies how an offer's discount value is applied.
type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED_AMOUNT"
	DiscountCashback   DiscountType = "CASHBACK"
)

// CashbackSubType refines a CASHBACK offer: a flat amount or a percentage of
// the transaction.
type CashbackSubType string

const (
	CashbackFlat       CashbackSubType = "FLAT"
	CashbackPercentage CashbackSubType = "PERCENTAGE"
)

// PaymentInstrument is a payment method category an offer may be restricted to.
type PaymentInstrument string

const (
	InstrumentCredit     PaymentInstrument = "CREDIT"
	InstrumentDebit      PaymentInstrument = "DEBIT"
	InstrumentEMI        PaymentInstrument = "EMI_OPTIONS"
	InstrumentUPI        PaymentInstrument = "UPI"
	InstrumentNetBanking PaymentInstrument = "NET_BANKING"
)

// KnownPaymentInstruments is the closed set of recognised instruments.
var KnownPaymentInstruments = []PaymentInstrument{
	InstrumentCredit, InstrumentDebit, InstrumentEMI,
	InstrumentUPI, InstrumentNetBanking,
}

// MaxTxnValueDefault is the default upper bound on transaction amount when
// the vendor payload carries none. It is the largest integer a float64 can
// represent exactly (2^53 - 1).
const MaxTxnValueDefault float64 = 9007199254740991

// Offer is the canonical, persisted discount rule derived from one vendor
// adjustment. AdjustmentID is the natural key used for idempotent upserts;
// an empty PaymentInstruments slice means no restriction was extracted, not
// that the offer applies to nothing.
type Offer struct {
	AdjustmentID       string              `json:"adjustmentId" db:"adjustment_id"`
	BankName           BankName            `json:"bankName" db:"bank_name"`
	DiscountType       DiscountType        `json:"discountType" db:"discount_type"`
	DiscountValue      float64             `json:"discountValue" db:"discount_value"`
	CashbackSubType    *CashbackSubType    `json:"cashbackSubType,omitempty" db:"cashback_sub_type"`
	MinimumAmount      float64             `json:"minimumAmount" db:"minimum_amount"`
	MaximumDiscount    float64             `json:"maximumDiscount" db:"maximum_discount"`
	MaxTxnValue        float64             `json:"maxTxnValue" db:"max_txn_value"`
	PaymentInstruments []PaymentInstrument `json:"paymentInstruments" db:"payment_instruments"`
	IsActive           bool                `json:"isActive" db:"is_active"`
	MaxDiscountPerCard float64             `json:"maxDiscountPerCard" db:"max_discount_per_card"`
	MaxTxnsForOffer    int                 `json:"maxTxnsForOffer" db:"max_txns_for_offer"`
	CreatedAt          time.Time           `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time           `json:"updatedAt" db:"updated_at"`
}

// Validate checks the offer's structural invariants before it is persisted.
func (o *Offer) Validate() error {
	if o.AdjustmentID == "" {
		return fmt.Errorf("offer: adjustment ID is required")
	}

	if !isKnownBank(o.BankName) {
		return fmt.Errorf("offer %s: unknown bank name %q", o.AdjustmentID, o.BankName)
	}

	switch o.DiscountType {
	case DiscountPercentage, DiscountFixed, DiscountCashback:
	default:
		return fmt.Errorf("offer %s: unknown discount type %q", o.AdjustmentID, o.DiscountType)
	}

	// Sub-type accompanies CASHBACK and nothing else.
	if o.DiscountType == DiscountCashback {
		if o.CashbackSubType == nil {
			return fmt.Errorf("offer %s: cashback offer requires a sub-type", o.AdjustmentID)
		}
		if *o.CashbackSubType != CashbackFlat && *o.CashbackSubType != CashbackPercentage {
			return fmt.Errorf("offer %s: unknown cashback sub-type %q", o.AdjustmentID, *o.CashbackSubType)
		}
	} else if o.CashbackSubType != nil {
		return fmt.Errorf("offer %s: cashback sub-type set on %s offer", o.AdjustmentID, o.DiscountType)
	}

	if o.DiscountValue < 0 {
		return fmt.Errorf("offer %s: discount value must be non-negative", o.AdjustmentID)
	}

	if o.MinimumAmount < 0 {
		return fmt.Errorf("offer %s: minimum amount must be non-negative", o.AdjustmentID)
	}

	if o.MaximumDiscount < 0 {
		return fmt.Errorf("offer %s: maximum discount must be non-negative", o.AdjustmentID)
	}

	for _, instrument := range o.PaymentInstruments {
		if !isKnownInstrument(instrument) {
			return fmt.Errorf("offer %s: unknown payment instrument %q", o.AdjustmentID, instrument)
		}
	}

	return nil
}

func isKnownBank(name BankName) bool {
	for _, known := range KnownBankNames {
		if name == known {
			return true
		}
	}
	return false
}

func isKnownInstrument(instrument PaymentInstrument) bool {
	for _, known := range KnownPaymentInstruments {
		if instrument == known {
			return true
		}
	}
	return false
}

// IsKnownInstrument reports whether the given string names a recognised
// payment instrument.
func IsKnownInstrument(s string) bool {
	return isKnownInstrument(PaymentInstrument(s))
}

// StoreError describes one failure encountered while persisting offers.
type StoreError struct {
	Message string `json:"message"`
}

// StoreResult reports the outcome of a bulk offer store. Identified counts
// offers handed to the store regardless of persistence outcome, so callers
// can distinguish "how many did we find" from "how many did we save".
type StoreResult struct {
	Identified int          `json:"identified"`
	Created    int          `json:"created"`
	Modified   int          `json:"modified"`
	Errors     []StoreError `json:"errors"`
}

// DiscountResult is the answer to a highest-discount query.
type DiscountResult struct {
	HighestDiscountAmount float64 `json:"highestDiscountAmount"`
}

// OfferQuery captures the storage-level filter used during discount
// resolution. An empty PaymentInstrument means "no instrument restriction".
type OfferQuery struct {
	AmountToPay       float64
	BankName          BankName
	PaymentInstrument PaymentInstrument
}
