package model

// VendorPayload is the inbound payment-offer payload as received from the
// vendor API. Only the fields consumed by extraction are modelled.
type VendorPayload struct {
	Adjustments *Adjustments `json:"adjustments"`
}

// Adjustments wraps the vendor's list of candidate offer records.
type Adjustments struct {
	AdjustmentList []Adjustment `json:"adjustment_list"`
}

// Adjustment is one vendor-supplied record describing a candidate bank offer.
type Adjustment struct {
	OfferDetails *OfferDetails `json:"offer_details"`
}

// OfferDetails holds the free-text and structured limit fields of an
// adjustment.
type OfferDetails struct {
	AdjustmentID          string             `json:"adjustment_id"`
	Summary               string             `json:"summary"`
	Title                 string             `json:"title"`
	OfferTxnLimits        *TxnLimits         `json:"offer_txn_limits"`
	OfferAggregationLimit *AggregationLimits `json:"offer_aggregation_limits"`
}

// TxnLimits carries per-transaction numeric bounds for an offer.
type TxnLimits struct {
	MinTxnValue       float64 `json:"min_txn_value"`
	MaxDiscountPerTxn float64 `json:"max_discount_per_txn"`
	MaxTxnValue       float64 `json:"max_txn_value"`
}

// AggregationLimits carries cross-transaction caps for an offer. These are
// stored but not enforced by discount resolution.
type AggregationLimits struct {
	MaxDiscountPerCard float64 `json:"max_discount_per_card"`
	MaxTxnsForOffer    int     `json:"max_txns_for_offer"`
}

// OfferIngestRequest is the request body for offer ingestion.
type OfferIngestRequest struct {
	FlipkartOfferAPIResponse *VendorPayload `json:"flipkartOfferApiResponse"`
}

// OfferIngestResponse is the response body for offer ingestion.
type OfferIngestResponse struct {
	NoOfOffersIdentified int `json:"noOfOffersIdentified"`
	NoOfNewOffersCreated int `json:"noOfNewOffersCreated"`
}
