package commands

import (
	"context"
	"errors"

	"checkout-core/internal/domain/pricing"
	"checkout-core/internal/infra"
	"checkout-core/internal/pkg/clock"
	"checkout-core/internal/pkg/errs"
	"checkout-core/internal/usecase/queries"
	"checkout-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPricesAlreadyLocked = errs.New("prices already locked for this checkout")
	ErrPricingFailed       = errs.New("pricing computation failed")
	ErrUnpayableCart       = errs.New("cart total is not chargeable")
)

// PricingCommands freezes cart totals for a checkout attempt. Snapshots are
// write-once: a second lock attempt for the same checkout lock is rejected
// rather than overwritten.
type PricingCommands interface {
	LockPrices(ctx context.Context, checkoutLockID uuid.UUID, cart *shared.CartSnapshot) ([]*queries.PriceSnapshotView, error)
}

type pricingCommandsImpl struct {
	uow    shared.UnitOfWork
	engine PricingEngine
	clock  clock.Clock
}

func NewPricingCommands(uow shared.UnitOfWork, engine PricingEngine, clk clock.Clock) PricingCommands {
	return &pricingCommandsImpl{uow: uow, engine: engine, clock: clk}
}

func (p *pricingCommandsImpl) LockPrices(ctx context.Context, checkoutLockID uuid.UUID, cart *shared.CartSnapshot) ([]*queries.PriceSnapshotView, error) {
	totals, err := p.engine.ComputeTotals(ctx, cart)
	if err != nil {
		return nil, errs.Mark(err, ErrPricingFailed)
	}

	frozenAt := p.clock.Now()

	cartSnap, err := pricing.NewCartSnapshot(checkoutLockID, totals.Cart, frozenAt)
	if err != nil {
		if errors.Is(err, pricing.ErrZeroTotal) {
			return nil, errs.Mark(err, ErrUnpayableCart)
		}
		return nil, errs.Mark(err, ErrPricingFailed)
	}

	snapshots := []*pricing.Snapshot{cartSnap}
	for _, line := range cart.Lines {
		lineTotals, ok := totals.Lines[line.ID]
		if !ok {
			return nil, errs.Mark(errs.Newf("pricing engine returned no totals for line %s", line.ID), ErrPricingFailed)
		}
		lineSnap, err := pricing.NewLineSnapshot(checkoutLockID, line.ID, lineTotals, frozenAt)
		if err != nil {
			return nil, errs.Mark(err, ErrPricingFailed)
		}
		snapshots = append(snapshots, lineSnap)
	}

	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Snapshots().ExistsForLock(ctx, checkoutLockID)
		if err != nil {
			return errs.Mark(err, ErrPricingFailed)
		}
		if exists {
			return ErrPricesAlreadyLocked
		}
		for _, snap := range snapshots {
			if err := tx.Snapshots().Create(ctx, snap); err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return errs.Mark(err, ErrPricesAlreadyLocked)
				}
				return errs.Mark(err, ErrPricingFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	views := make([]*queries.PriceSnapshotView, 0, len(snapshots))
	for _, snap := range snapshots {
		views = append(views, toSnapshotView(snap))
	}
	return views, nil
}

func toSnapshotView(s *pricing.Snapshot) *queries.PriceSnapshotView {
	return &queries.PriceSnapshotView{
		ID:             s.ID(),
		CheckoutLockID: s.CheckoutLockID(),
		CartLineID:     s.CartLineID(),
		SubtotalCents:  s.SubtotalCents(),
		DiscountCents:  s.DiscountCents(),
		TaxCents:       s.TaxCents(),
		TotalCents:     s.TotalCents(),
		Discounts:      s.DiscountBreakdown(),
		Taxes:          s.TaxBreakdown(),
		Currency:       s.Currency(),
		ExchangeRate:   s.ExchangeRate(),
		CouponCode:     s.CouponCode(),
		FrozenAt:       s.FrozenAt(),
	}
}
