package readstore

import (
	"context"
	"errors"

	"checkout-core/internal/infra"
	"checkout-core/internal/infra/db"
	"checkout-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CartReadStore backs the command-side cart snapshot. The snapshot is taken in
// one transaction-free pass; the saga re-reads it at the validation phase so a
// stale read only costs a retry, never an oversell.
type CartReadStore struct {
	db db.DBTX
}

func NewCartReadStore(dbtx db.DBTX) *CartReadStore {
	return &CartReadStore{db: dbtx}
}

func (s *CartReadStore) CartByID(ctx context.Context, cartID uuid.UUID) (*shared.CartSnapshot, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, status, currency, coupon_code,
			shipping_address IS NOT NULL, billing_address IS NOT NULL
		FROM carts
		WHERE id = $1`, cartID)

	var cart shared.CartSnapshot
	if err := row.Scan(&cart.ID, &cart.UserID, &cart.Status, &cart.Currency,
		&cart.CouponCode, &cart.HasShippingAddress, &cart.HasBillingAddress); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "cart not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find cart", err)
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, variant_id, quantity, unit_price_cents, stock_tracked
		FROM cart_lines
		WHERE cart_id = $1
		ORDER BY created_at ASC`, cartID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list cart lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line shared.CartLineSnapshot
		if err := rows.Scan(&line.ID, &line.VariantID, &line.Quantity,
			&line.UnitPriceCents, &line.StockTracked); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan cart line", err)
		}
		cart.Lines = append(cart.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate cart lines", err)
	}
	return &cart, nil
}

func (s *CartReadStore) AvailableStock(ctx context.Context, variantID uuid.UUID) (int64, error) {
	row := s.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(quantity - reserved - damaged), 0)
		FROM inventory_levels
		WHERE variant_id = $1`, variantID)

	var available int64
	if err := row.Scan(&available); err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to sum available stock", err)
	}
	return available, nil
}
