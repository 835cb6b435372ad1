package materializer

import (
	"context"
	"errors"
	"time"

	"checkout-core/internal/infra"
	"checkout-core/internal/infra/db"
	"checkout-core/internal/pkg/clock"
	"checkout-core/internal/pkg/errs"
	"checkout-core/internal/usecase/commands"
	"checkout-core/internal/usecase/queries"
	"checkout-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jinzhu/copier"
)

const (
	orderStatusPending   = "pending"
	orderStatusCancelled = "cancelled"
)

// OrderMaterializer writes orders for the checkout pipeline. Orders start with
// the cart's live prices; ApplyTotals then overwrites them with the frozen
// snapshot so the charged amount is always the locked one.
type OrderMaterializer struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOrderMaterializer(uow shared.UnitOfWork, clk clock.Clock) *OrderMaterializer {
	return &OrderMaterializer{uow: uow, clock: clk}
}

var _ commands.OrderMaterializer = (*OrderMaterializer)(nil)

func (m *OrderMaterializer) CreateOrderFromCart(ctx context.Context, cart *shared.CartSnapshot) (*queries.OrderView, error) {
	view := &queries.OrderView{
		ID:        uuid.New(),
		CartID:    cart.ID,
		UserID:    cart.UserID,
		Status:    orderStatusPending,
		Currency:  cart.Currency,
		CreatedAt: m.clock.Now(),
	}

	for _, cartLine := range cart.Lines {
		line := queries.OrderLineView{}
		// Line field names match the cart snapshot's; copier carries them over.
		if err := copier.Copy(&line, &cartLine); err != nil {
			return nil, errs.Wrap(err, "failed to copy cart line")
		}
		line.ID = uuid.New()
		// keyed by the cart line, not the variant: a cart may hold the same
		// variant on two lines
		line.CartLineID = cartLine.ID
		line.TotalCents = cartLine.Quantity * cartLine.UnitPriceCents
		view.Lines = append(view.Lines, line)
		view.SubtotalCents += line.TotalCents
	}
	view.TotalCents = view.SubtotalCents

	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return insertOrder(ctx, tx.DB(), view)
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (m *OrderMaterializer) ApplyTotals(ctx context.Context, orderID uuid.UUID, snapshots []*queries.PriceSnapshotView) (*queries.OrderView, error) {
	var cartLevel *queries.PriceSnapshotView
	lineLevel := map[uuid.UUID]*queries.PriceSnapshotView{}
	for _, snap := range snapshots {
		if snap.CartLineID == nil {
			cartLevel = snap
			continue
		}
		lineLevel[*snap.CartLineID] = snap
	}
	if cartLevel == nil {
		return nil, errs.New("snapshot set has no cart-level entry")
	}

	var view *queries.OrderView
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		tag, err := tx.DB().Exec(ctx, `
			UPDATE orders
			SET subtotal_cents = $2, discount_cents = $3, tax_cents = $4,
				total_cents = $5, updated_at = now()
			WHERE id = $1`,
			orderID, cartLevel.SubtotalCents, cartLevel.DiscountCents,
			cartLevel.TaxCents, cartLevel.TotalCents)
		if err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to apply order totals", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr(infra.KindNotFound, "order not found", pgx.ErrNoRows)
		}

		for cartLineID, snap := range lineLevel {
			if _, err := tx.DB().Exec(ctx, `
				UPDATE order_lines
				SET total_cents = $3
				WHERE order_id = $1 AND cart_line_id = $2`,
				orderID, cartLineID, snap.TotalCents); err != nil {
				return infra.WrapRepoErr(infra.KindDBFailure, "failed to apply line totals", err)
			}
		}

		view, err = findOrder(ctx, tx.DB(), orderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Cancel marks the order cancelled. Orders are never hard-deleted; a cancelled
// row keeps the audit trail of the failed attempt.
func (m *OrderMaterializer) Cancel(ctx context.Context, orderID uuid.UUID) error {
	return m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		tag, err := tx.DB().Exec(ctx, `
			UPDATE orders
			SET status = $2, updated_at = now()
			WHERE id = $1`, orderID, orderStatusCancelled)
		if err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to cancel order", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr(infra.KindNotFound, "order not found", pgx.ErrNoRows)
		}
		return nil
	})
}

func insertOrder(ctx context.Context, dbtx db.DBTX, view *queries.OrderView) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO orders (id, cart_id, user_id, status, subtotal_cents,
			discount_cents, tax_cents, total_cents, currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		view.ID, view.CartID, view.UserID, view.Status,
		view.SubtotalCents, view.DiscountCents, view.TaxCents, view.TotalCents,
		view.Currency, view.CreatedAt)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create order", err)
	}

	for i, line := range view.Lines {
		if _, err := dbtx.Exec(ctx, `
			INSERT INTO order_lines (id, order_id, cart_line_id, variant_id,
				quantity, unit_price_cents, total_cents, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			line.ID, view.ID, line.CartLineID, line.VariantID, line.Quantity,
			line.UnitPriceCents, line.TotalCents, i); err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to create order line", err)
		}
	}
	return nil
}

func findOrder(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID) (*queries.OrderView, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, cart_id, user_id, status, subtotal_cents, discount_cents,
			tax_cents, total_cents, currency, created_at
		FROM orders
		WHERE id = $1`, orderID)

	var (
		view      queries.OrderView
		createdAt time.Time
	)
	if err := row.Scan(&view.ID, &view.CartID, &view.UserID, &view.Status,
		&view.SubtotalCents, &view.DiscountCents, &view.TaxCents, &view.TotalCents,
		&view.Currency, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "order not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find order", err)
	}
	view.CreatedAt = createdAt

	rows, err := dbtx.Query(ctx, `
		SELECT id, cart_line_id, variant_id, quantity, unit_price_cents, total_cents
		FROM order_lines
		WHERE order_id = $1
		ORDER BY position ASC`, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list order lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line queries.OrderLineView
		if err := rows.Scan(&line.ID, &line.CartLineID, &line.VariantID, &line.Quantity,
			&line.UnitPriceCents, &line.TotalCents); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan order line", err)
		}
		view.Lines = append(view.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate order lines", err)
	}
	return &view, nil
}
