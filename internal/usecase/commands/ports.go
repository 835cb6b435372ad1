package commands

import (
	"context"
	"time"

	"checkout-core/internal/domain/pricing"
	"checkout-core/internal/usecase/queries"
	"checkout-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// Outbound ports. The core consumes these as abstract collaborators; the
// adapters live under internal/infra.

// WarehouseSelector ranks candidate warehouses for a claim. The core only
// consumes the ordering, it never computes it.
type WarehouseSelector interface {
	RankWarehouses(ctx context.Context, variantID uuid.UUID, quantity int64) ([]uuid.UUID, error)
}

// PricingEngine computes authoritative cart totals. The core freezes its
// output and never recomputes discount or tax rules itself.
type PricingEngine interface {
	ComputeTotals(ctx context.Context, cart *shared.CartSnapshot) (*TotalsResult, error)
}

type TotalsResult struct {
	Cart  pricing.Totals
	Lines map[uuid.UUID]pricing.Totals // keyed by cart line id
}

type PaymentGateway interface {
	Authorize(ctx context.Context, amountCents int64, currency string, input PaymentInput) (authorizationRef string, err error)
	Capture(ctx context.Context, authorizationRef string) (captureRef string, err error)
	Void(ctx context.Context, authorizationRef string) error
	Refund(ctx context.Context, captureRef string) error
}

type PaymentInput struct {
	Method string `json:"method"`
	Token  string `json:"token"`
}

// OrderMaterializer turns a cart into an order, line for line. The saga
// overwrites the materialized totals with the frozen snapshot afterwards.
type OrderMaterializer interface {
	CreateOrderFromCart(ctx context.Context, cart *shared.CartSnapshot) (*queries.OrderView, error)
	ApplyTotals(ctx context.Context, orderID uuid.UUID, snapshots []*queries.PriceSnapshotView) (*queries.OrderView, error)
	// Cancel marks the order cancelled; orders are never hard-deleted.
	Cancel(ctx context.Context, orderID uuid.UUID) error
}

// Signal is a fire-and-forget lifecycle event emitted after the state
// transition it describes has committed. The saga never waits on delivery.
type Signal struct {
	Name   string         `json:"name"`
	At     time.Time      `json:"at"`
	Fields map[string]any `json:"fields,omitempty"`
}

const (
	SignalCheckoutStarted   = "checkout.started"
	SignalPhaseTransitioned = "checkout.phase_transitioned"
	SignalCheckoutCompleted = "checkout.completed"
	SignalCheckoutFailed    = "checkout.failed"
	SignalStockReserved     = "stock.reserved"
	SignalStockReleased     = "stock.released"
)

type SignalEmitter interface {
	Emit(ctx context.Context, sig Signal)
}
