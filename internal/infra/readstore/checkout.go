package readstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"checkout-core/internal/infra"
	"checkout-core/internal/infra/db"
	"checkout-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CheckoutReadStore struct {
	db db.DBTX
}

func NewCheckoutReadStore(dbtx db.DBTX) *CheckoutReadStore {
	return &CheckoutReadStore{db: dbtx}
}

var _ queries.CheckoutQueries = (*CheckoutReadStore)(nil)

func (s *CheckoutReadStore) LockByID(ctx context.Context, id uuid.UUID) (*queries.CheckoutLockView, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, cart_id, user_id, state, phase, locked_at, expires_at,
			metadata, created_at, updated_at
		FROM checkout_locks
		WHERE id = $1`, id)

	var (
		view        queries.CheckoutLockView
		metadataRaw []byte
	)
	if err := row.Scan(&view.ID, &view.CartID, &view.UserID, &view.State, &view.Phase,
		&view.LockedAt, &view.ExpiresAt, &metadataRaw, &view.CreatedAt, &view.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "checkout lock not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find checkout lock", err)
	}

	if len(metadataRaw) > 0 {
		if err := json.Unmarshal(metadataRaw, &view.Metadata); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to decode lock metadata", err)
		}
	}
	return &view, nil
}

func (s *CheckoutReadStore) ReservationsByLock(ctx context.Context, lockID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, variant_id, warehouse_id, requested_qty, reserved_qty, status,
			reference_type, reference_id, expires_at, released, override_reason, created_at
		FROM stock_reservations
		WHERE reference_type = 'checkout_lock' AND reference_id = $1
		ORDER BY created_at ASC`, lockID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list reservations for lock", err)
	}
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		var (
			v         queries.ReservationView
			expiresAt *time.Time
		)
		if err := rows.Scan(&v.ID, &v.VariantID, &v.WarehouseID,
			&v.RequestedQty, &v.ReservedQty, &v.Status,
			&v.ReferenceType, &v.ReferenceID, &expiresAt,
			&v.Released, &v.OverrideReason, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan reservation", err)
		}
		v.ExpiresAt = expiresAt
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate reservations", err)
	}
	return views, nil
}

func (s *CheckoutReadStore) SnapshotsByLock(ctx context.Context, lockID uuid.UUID) ([]*queries.PriceSnapshotView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, checkout_lock_id, cart_line_id, subtotal_cents, discount_cents,
			tax_cents, total_cents, discounts, taxes, currency, exchange_rate,
			coupon_code, frozen_at
		FROM price_snapshots
		WHERE checkout_lock_id = $1
		ORDER BY cart_line_id NULLS FIRST`, lockID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list price snapshots", err)
	}
	defer rows.Close()

	var views []*queries.PriceSnapshotView
	for rows.Next() {
		var (
			v                      queries.PriceSnapshotView
			discountsRaw, taxesRaw []byte
		)
		if err := rows.Scan(&v.ID, &v.CheckoutLockID, &v.CartLineID,
			&v.SubtotalCents, &v.DiscountCents, &v.TaxCents, &v.TotalCents,
			&discountsRaw, &taxesRaw, &v.Currency, &v.ExchangeRate,
			&v.CouponCode, &v.FrozenAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan price snapshot", err)
		}
		if len(discountsRaw) > 0 {
			if err := json.Unmarshal(discountsRaw, &v.Discounts); err != nil {
				return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to decode discount breakdown", err)
			}
		}
		if len(taxesRaw) > 0 {
			if err := json.Unmarshal(taxesRaw, &v.Taxes); err != nil {
				return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to decode tax breakdown", err)
			}
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate price snapshots", err)
	}
	return views, nil
}
