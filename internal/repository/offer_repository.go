package repository

import (
	"context"
	"fmt"

	"github.com/aayushkuntal/piepay-server/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// offerRepository implements the OfferRepository interface using PostgreSQL.
type offerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOfferRepository creates a new PostgreSQL-backed offer repository.
func NewOfferRepository(pool *pgxpool.Pool, logger zerolog.Logger) OfferRepository {
	return &offerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "offer").Logger(),
	}
}

// upsertQuery fully replaces an existing record on conflict. The xmax check
// distinguishes a fresh insert from an update of an existing row.
const upsertQuery = `
	INSERT INTO offers (
		adjustment_id, bank_name, discount_type, discount_value,
		cashback_sub_type, minimum_amount, maximum_discount, max_txn_value,
		payment_instruments, is_active, max_discount_per_card,
		max_txns_for_offer, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())
	ON CONFLICT (adjustment_id) DO UPDATE SET
		bank_name = excluded.bank_name,
		discount_type = excluded.discount_type,
		discount_value = excluded.discount_value,
		cashback_sub_type = excluded.cashback_sub_type,
		minimum_amount = excluded.minimum_amount,
		maximum_discount = excluded.maximum_discount,
		max_txn_value = excluded.max_txn_value,
		payment_instruments = excluded.payment_instruments,
		is_active = excluded.is_active,
		max_discount_per_card = excluded.max_discount_per_card,
		max_txns_for_offer = excluded.max_txns_for_offer,
		updated_at = now()
	RETURNING (xmax = 0) AS inserted
`

// BulkUpsert writes all offers in one transaction keyed by adjustment ID.
func (r *offerRepository) BulkUpsert(ctx context.Context, offers []model.Offer) (int, int, error) {
	if len(offers) == 0 {
		return 0, 0, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return 0, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, offer := range offers {
		batch.Queue(upsertQuery,
			offer.AdjustmentID,
			string(offer.BankName),
			string(offer.DiscountType),
			offer.DiscountValue,
			subTypeValue(offer.CashbackSubType),
			offer.MinimumAmount,
			offer.MaximumDiscount,
			offer.MaxTxnValue,
			instrumentStrings(offer.PaymentInstruments),
			offer.IsActive,
			offer.MaxDiscountPerCard,
			offer.MaxTxnsForOffer,
		)
	}

	results := tx.SendBatch(ctx, batch)

	created, modified := 0, 0
	for i := range offers {
		var inserted bool
		if err := results.QueryRow().Scan(&inserted); err != nil {
			results.Close()
			r.logger.Error().
				Err(err).
				Str("adjustment_id", offers[i].AdjustmentID).
				Msg("failed to upsert offer")
			return 0, 0, fmt.Errorf("failed to upsert offer %s: %w", offers[i].AdjustmentID, err)
		}
		if inserted {
			created++
		} else {
			modified++
		}
	}

	if err := results.Close(); err != nil {
		r.logger.Error().Err(err).Msg("failed to close batch results")
		return 0, 0, fmt.Errorf("failed to close batch results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit offer upsert")
		return 0, 0, fmt.Errorf("failed to commit offer upsert: %w", err)
	}

	r.logger.Debug().
		Int("created", created).
		Int("modified", modified).
		Msg("offers upserted")

	return created, modified, nil
}

// FindApplicable returns the active offers matching the discount query.
func (r *offerRepository) FindApplicable(ctx context.Context, query model.OfferQuery) ([]model.Offer, error) {
	sql := `
		SELECT adjustment_id, bank_name, discount_type, discount_value,
			cashback_sub_type, minimum_amount, maximum_discount,
			max_txn_value, payment_instruments, is_active,
			max_discount_per_card, max_txns_for_offer, created_at, updated_at
		FROM offers
		WHERE is_active = TRUE
			AND bank_name = $1
			AND minimum_amount < $2
			AND max_txn_value >= $2
	`

	args := []any{string(query.BankName), query.AmountToPay}
	if query.PaymentInstrument != "" {
		sql += " AND $3 = ANY(payment_instruments)"
		args = append(args, string(query.PaymentInstrument))
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("bank_name", string(query.BankName)).
			Float64("amount", query.AmountToPay).
			Msg("failed to query applicable offers")
		return nil, fmt.Errorf("failed to query applicable offers: %w", err)
	}
	defer rows.Close()

	var offers []model.Offer
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan offer row")
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		offers = append(offers, offer)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating offer rows")
		return nil, fmt.Errorf("error iterating offers: %w", err)
	}

	return offers, nil
}

func scanOffer(rows pgx.Rows) (model.Offer, error) {
	var (
		offer       model.Offer
		bankName    string
		discType    string
		subType     *string
		instruments []string
	)

	err := rows.Scan(
		&offer.AdjustmentID,
		&bankName,
		&discType,
		&offer.DiscountValue,
		&subType,
		&offer.MinimumAmount,
		&offer.MaximumDiscount,
		&offer.MaxTxnValue,
		&instruments,
		&offer.IsActive,
		&offer.MaxDiscountPerCard,
		&offer.MaxTxnsForOffer,
		&offer.CreatedAt,
		&offer.UpdatedAt,
	)
	if err != nil {
		return model.Offer{}, err
	}

	offer.BankName = model.BankName(bankName)
	offer.DiscountType = model.DiscountType(discType)
	if subType != nil {
		st := model.CashbackSubType(*subType)
		offer.CashbackSubType = &st
	}
	for _, instrument := range instruments {
		offer.PaymentInstruments = append(offer.PaymentInstruments, model.PaymentInstrument(instrument))
	}

	return offer, nil
}

func subTypeValue(subType *model.CashbackSubType) *string {
	if subType == nil {
		return nil
	}
	s := string(*subType)
	return &s
}

func instrumentStrings(instruments []model.PaymentInstrument) []string {
	out := make([]string, len(instruments))
	for i, instrument := range instruments {
		out[i] = string(instrument)
	}
	return out
}
