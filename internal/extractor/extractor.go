// Package extractor turns vendor payment-offer payloads into canonical
// offers using text heuristics. All functions are pure: deterministic for a
// given input and free of I/O.
package extractor

import (
	"strconv"
	"strings"

	"github.com/aayushkuntal/piepay-server/internal/model"
)

// ExtractOffers walks the payload's adjustment list and returns the offers
// that could be parsed, in payload order. Adjustments without an actionable
// discount rule are dropped silently; duplicates are permitted here and
// collapse at the store layer via the adjustment ID.
func ExtractOffers(payload *model.VendorPayload) []model.Offer {
	var offers []model.Offer

	if payload == nil || payload.Adjustments == nil {
		return offers
	}

	for _, adjustment := range payload.Adjustments.AdjustmentList {
		if offer, ok := ParseOfferData(adjustment); ok {
			offers = append(offers, offer)
		}
	}

	return offers
}

// ParseOfferData parses a single adjustment into an offer. The second return
// value is false when the adjustment carries no offer details or no discount
// value could be parsed from its text.
func ParseOfferData(adjustment model.Adjustment) (model.Offer, bool) {
	details := adjustment.OfferDetails
	if details == nil {
		return model.Offer{}, false
	}

	discountText := details.Summary
	if discountText == "" {
		discountText = details.Title
	}

	discountType, discountValue, subType := parseDiscountDetails(discountText)
	if discountValue == 0 {
		return model.Offer{}, false
	}

	offer := model.Offer{
		AdjustmentID:       details.AdjustmentID,
		BankName:           detectBank(details.Summary, details.Title),
		DiscountType:       discountType,
		DiscountValue:      discountValue,
		PaymentInstruments: detectInstruments(details.Summary, details.Title),
		MaxTxnValue:        model.MaxTxnValueDefault,
		IsActive:           true,
	}

	if discountType == model.DiscountCashback {
		offer.CashbackSubType = &subType
	}

	if limits := details.OfferTxnLimits; limits != nil {
		offer.MinimumAmount = limits.MinTxnValue
		offer.MaximumDiscount = limits.MaxDiscountPerTxn
		if limits.MaxTxnValue != 0 {
			offer.MaxTxnValue = limits.MaxTxnValue
		}
	}

	if limits := details.OfferAggregationLimit; limits != nil {
		offer.MaxDiscountPerCard = limits.MaxDiscountPerCard
		offer.MaxTxnsForOffer = limits.MaxTxnsForOffer
	}

	return offer, true
}

// detectBank returns the first bank token found as a case-insensitive
// substring of the title or summary, or BankOther when none match.
func detectBank(summary, title string) model.BankName {
	upperSummary := strings.ToUpper(summary)
	upperTitle := strings.ToUpper(title)

	for _, bank := range bankTokens {
		token := string(bank)
		if strings.Contains(upperTitle, token) || strings.Contains(upperSummary, token) {
			return bank
		}
	}

	return model.BankOther
}

// detectInstruments collects every instrument whose token appears in the
// combined offer text. An empty result means no restriction was extracted,
// not that the offer blocks all instruments.
func detectInstruments(summary, title string) []model.PaymentInstrument {
	text := strings.ToUpper(summary + " " + title)

	var instruments []model.PaymentInstrument
	for _, entry := range instrumentTokens {
		for _, token := range entry.tokens {
			if strings.Contains(text, token) {
				instruments = append(instruments, entry.instrument)
				break
			}
		}
	}

	return instruments
}

// parseDiscountDetails extracts the discount rule from free text. Percentage
// patterns win over flat-amount patterns; the presence of "CASHBACK" in the
// text promotes either form to a cashback offer. A zero value means no rule
// was parseable.
func parseDiscountDetails(text string) (model.DiscountType, float64, model.CashbackSubType) {
	upperText := strings.ToUpper(text)

	if match := percentPattern.FindStringSubmatch(text); match != nil {
		value, err := strconv.ParseFloat(match[1], 64)
		if err == nil {
			discountType := model.DiscountPercentage
			if strings.Contains(upperText, "CASHBACK") {
				discountType = model.DiscountCashback
			}
			return discountType, value, model.CashbackPercentage
		}
	}

	for _, pattern := range flatPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		value, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		discountType := model.DiscountFixed
		if strings.Contains(upperText, "CASHBACK") {
			discountType = model.DiscountCashback
		}
		return discountType, float64(value), model.CashbackFlat
	}

	return model.DiscountCashback, 0, model.CashbackFlat
}
