package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"checkout-core/internal/domain/pricing"
	"checkout-core/internal/infra"
	"checkout-core/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PriceSnapshotRepository persists frozen totals. Rows are write-once; the
// unique indexes on (checkout_lock_id) and (checkout_lock_id, cart_line_id)
// reject a second freeze of the same scope.
type PriceSnapshotRepository struct {
	db db.DBTX
}

func NewPriceSnapshotRepository(dbtx db.DBTX) *PriceSnapshotRepository {
	return &PriceSnapshotRepository{db: dbtx}
}

func (r *PriceSnapshotRepository) Create(ctx context.Context, s *pricing.Snapshot) error {
	discounts, err := json.Marshal(s.DiscountBreakdown())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode discount breakdown", err)
	}
	taxes, err := json.Marshal(s.TaxBreakdown())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode tax breakdown", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO price_snapshots
			(id, checkout_lock_id, cart_line_id, subtotal_cents, discount_cents,
			 tax_cents, total_cents, discounts, taxes, currency, exchange_rate,
			 coupon_code, frozen_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		s.ID(), s.CheckoutLockID(), s.CartLineID(),
		s.SubtotalCents(), s.DiscountCents(), s.TaxCents(), s.TotalCents(),
		discounts, taxes, s.Currency(), s.ExchangeRate(),
		s.CouponCode(), s.FrozenAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindImmutable, "price snapshot already frozen for this scope", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create price snapshot", err)
	}
	return nil
}

func (r *PriceSnapshotRepository) FindByLock(ctx context.Context, checkoutLockID uuid.UUID) ([]*pricing.Snapshot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, checkout_lock_id, cart_line_id, subtotal_cents, discount_cents,
			tax_cents, total_cents, discounts, taxes, currency, exchange_rate,
			coupon_code, frozen_at
		FROM price_snapshots
		WHERE checkout_lock_id = $1
		ORDER BY cart_line_id NULLS FIRST`, checkoutLockID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find price snapshots", err)
	}
	defer rows.Close()

	var out []*pricing.Snapshot
	for rows.Next() {
		snap, err := scanPriceSnapshot(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan price snapshot", err)
		}
		out = append(out, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate price snapshots", err)
	}
	return out, nil
}

func (r *PriceSnapshotRepository) ExistsForLock(ctx context.Context, checkoutLockID uuid.UUID) (bool, error) {
	row := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM price_snapshots WHERE checkout_lock_id = $1)`,
		checkoutLockID)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to check price snapshot existence", err)
	}
	return exists, nil
}

func scanPriceSnapshot(row pgx.Row) (*pricing.Snapshot, error) {
	var (
		id, checkoutLockID     uuid.UUID
		cartLineID             *uuid.UUID
		subtotal, discount     int64
		tax, total             int64
		discountsRaw, taxesRaw []byte
		currency               string
		exchangeRate           float64
		couponCode             *string
		frozenAt               time.Time
	)
	if err := row.Scan(&id, &checkoutLockID, &cartLineID, &subtotal, &discount,
		&tax, &total, &discountsRaw, &taxesRaw, &currency, &exchangeRate,
		&couponCode, &frozenAt); err != nil {
		return nil, err
	}

	var discounts, taxes map[string]int64
	if len(discountsRaw) > 0 {
		if err := json.Unmarshal(discountsRaw, &discounts); err != nil {
			return nil, err
		}
	}
	if len(taxesRaw) > 0 {
		if err := json.Unmarshal(taxesRaw, &taxes); err != nil {
			return nil, err
		}
	}

	return pricing.ReconstructSnapshot(id, checkoutLockID, cartLineID, pricing.Totals{
		SubtotalCents: subtotal,
		DiscountCents: discount,
		TaxCents:      tax,
		TotalCents:    total,
		Discounts:     discounts,
		Taxes:         taxes,
		Currency:      currency,
		ExchangeRate:  exchangeRate,
		CouponCode:    couponCode,
	}, frozenAt), nil
}
