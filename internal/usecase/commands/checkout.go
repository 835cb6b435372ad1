package commands

import (
	"context"
	"log/slog"
	"time"

	"checkout-core/internal/domain/checkout"
	"checkout-core/internal/domain/inventory"
	"checkout-core/internal/infra"
	"checkout-core/internal/pkg/clock"
	"checkout-core/internal/pkg/config"
	"checkout-core/internal/pkg/errs"
	"checkout-core/internal/usecase/queries"
	"checkout-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCartNotFound      = errs.New("cart not found")
	ErrCartNotOrderable  = errs.New("cart is not in an orderable state")
	ErrLockNotFound      = errs.New("checkout lock not found")
	ErrLockNotOwned      = errs.New("checkout lock belongs to another user")
	ErrCheckoutNotActive = errs.New("checkout is not active")
	ErrCheckoutFailed    = errs.New("checkout failed")
	ErrPaymentDeclined   = errs.New("payment was declined")
	ErrOrderCreation     = errs.New("order creation failed")
	ErrStockCommitFailed = errs.New("stock commit failed")
)

type StartCheckoutParams struct {
	CartID uuid.UUID
	UserID uuid.UUID
	TTL    time.Duration
}

type ExecuteCheckoutParams struct {
	LockID  uuid.UUID
	UserID  uuid.UUID
	Payment PaymentInput
}

type CheckoutResult struct {
	Lock  *queries.CheckoutLockView
	Order *queries.OrderView
}

// CheckoutCommands drives the checkout pipeline: a strictly ordered sequence
// of phases where each successful phase registers a compensating action, and
// any failure unwinds the registered compensations in reverse order.
type CheckoutCommands interface {
	// Start acquires the checkout lock for a cart. Calling it again while a
	// previous attempt is still active returns that attempt instead of
	// creating a second one.
	Start(ctx context.Context, p StartCheckoutParams) (*queries.CheckoutLockView, error)
	Execute(ctx context.Context, p ExecuteCheckoutParams) (*CheckoutResult, error)
	// ReclaimExpiredLocks fails checkout locks whose TTL passed mid-run and
	// releases the reservations they held.
	ReclaimExpiredLocks(ctx context.Context, limit int32) (int, error)
}

type checkoutCommandsImpl struct {
	uow          shared.UnitOfWork
	stock        StockCommands
	pricing      PricingCommands
	gateway      PaymentGateway
	materializer OrderMaterializer
	emitter      SignalEmitter
	cfg          config.CheckoutConfig
	clock        clock.Clock
}

func NewCheckoutCommands(
	uow shared.UnitOfWork,
	stock StockCommands,
	pricingCmd PricingCommands,
	gateway PaymentGateway,
	materializer OrderMaterializer,
	emitter SignalEmitter,
	cfg config.CheckoutConfig,
	clk clock.Clock,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:          uow,
		stock:        stock,
		pricing:      pricingCmd,
		gateway:      gateway,
		materializer: materializer,
		emitter:      emitter,
		cfg:          cfg,
		clock:        clk,
	}
}

func (c *checkoutCommandsImpl) Start(ctx context.Context, p StartCheckoutParams) (*queries.CheckoutLockView, error) {
	cart, err := c.loadCart(ctx, p.CartID)
	if err != nil {
		return nil, err
	}
	if cart.UserID != p.UserID {
		return nil, ErrCartNotFound
	}
	if !cart.Orderable() {
		return nil, ErrCartNotOrderable
	}

	now := c.clock.Now()

	var lock *checkout.Lock
	created := false
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.CheckoutLocks().FindActiveByCart(ctx, p.CartID, p.UserID, now)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrCheckoutFailed)
		}
		if existing != nil {
			lock = existing
			return nil
		}

		ttl := p.TTL
		if ttl <= 0 {
			ttl = c.cfg.DefaultLockTTL
		}
		lock, err = checkout.NewLock(p.CartID, p.UserID, now, ttl, c.cfg.MaxLockTTL)
		if err != nil {
			return errs.Mark(err, ErrCheckoutFailed)
		}
		created = true
		return tx.CheckoutLocks().Create(ctx, lock)
	})
	if err != nil {
		return nil, err
	}

	if created {
		c.emitter.Emit(ctx, Signal{
			Name: SignalCheckoutStarted,
			At:   now,
			Fields: map[string]any{
				"lock_id": lock.ID(),
				"cart_id": p.CartID,
				"user_id": p.UserID,
			},
		})
	}
	return toLockView(lock), nil
}

// compensation is one registered undo step. Compensations are captured only
// after the work they undo has succeeded, and run newest-first during
// rollback. A failing compensation is logged and skipped so the remaining
// steps still run.
type compensation struct {
	phase checkout.Phase
	name  string
	run   func(ctx context.Context) error
}

// sagaRun carries the state threaded through one Execute call.
type sagaRun struct {
	lock          *checkout.Lock
	cart          *shared.CartSnapshot
	reservations  []*queries.ReservationView
	snapshots     []*queries.PriceSnapshotView
	authRef       string
	captureRef    string
	order         *queries.OrderView
	compensations []compensation
}

func (r *sagaRun) compensate(phase checkout.Phase, name string, fn func(ctx context.Context) error) {
	r.compensations = append(r.compensations, compensation{phase: phase, name: name, run: fn})
}

func (r *sagaRun) cartTotal() int64 {
	for _, s := range r.snapshots {
		if s.CartLineID == nil {
			return s.TotalCents
		}
	}
	return 0
}

func (r *sagaRun) currency() string {
	for _, s := range r.snapshots {
		if s.CartLineID == nil {
			return s.Currency
		}
	}
	return ""
}

func (c *checkoutCommandsImpl) Execute(ctx context.Context, p ExecuteCheckoutParams) (*CheckoutResult, error) {
	lock, err := c.loadLock(ctx, p.LockID)
	if err != nil {
		return nil, err
	}
	if lock.UserID() != p.UserID {
		return nil, ErrLockNotOwned
	}
	if !lock.IsActive(c.clock.Now()) {
		return nil, ErrCheckoutNotActive
	}

	run := &sagaRun{lock: lock}

	type phaseStep struct {
		phase checkout.Phase
		fn    func(ctx context.Context, run *sagaRun) error
	}
	steps := []phaseStep{
		{checkout.PhaseCartValidation, c.phaseValidateCart},
		{checkout.PhaseInventoryReservation, c.phaseReserveInventory},
		{checkout.PhasePriceLock, c.phaseLockPrices},
		{checkout.PhasePaymentAuthorization, func(ctx context.Context, run *sagaRun) error {
			return c.phaseAuthorizePayment(ctx, run, p.Payment)
		}},
		{checkout.PhaseOrderCreation, c.phaseCreateOrder},
		{checkout.PhasePaymentCapture, c.phaseCapturePayment},
		{checkout.PhaseStockCommit, c.phaseCommitStock},
	}

	for _, step := range steps {
		if err := c.enterPhase(ctx, run.lock, step.phase); err != nil {
			c.rollback(ctx, run, step.phase, err)
			return nil, errs.Mark(err, ErrCheckoutFailed)
		}
		if err := step.fn(ctx, run); err != nil {
			c.rollback(ctx, run, step.phase, err)
			return nil, errs.Mark(err, ErrCheckoutFailed)
		}
	}

	if err := run.lock.Complete(); err != nil {
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}
	if err := c.saveLock(ctx, run.lock); err != nil {
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}

	c.emitter.Emit(ctx, Signal{
		Name: SignalCheckoutCompleted,
		At:   c.clock.Now(),
		Fields: map[string]any{
			"lock_id":  run.lock.ID(),
			"cart_id":  run.lock.CartID(),
			"order_id": run.order.ID,
		},
	})

	return &CheckoutResult{Lock: toLockView(run.lock), Order: run.order}, nil
}

func (c *checkoutCommandsImpl) phaseValidateCart(ctx context.Context, run *sagaRun) error {
	cart, err := c.loadCart(ctx, run.lock.CartID())
	if err != nil {
		return err
	}
	if !cart.Orderable() {
		return ErrCartNotOrderable
	}
	if !cart.HasShippingAddress || !cart.HasBillingAddress {
		return errs.Mark(errs.New("cart is missing an address"), ErrCartNotOrderable)
	}

	// A line the warehouses cannot cover fails here, before any reservation
	// or lock-phase history exists. The sum is a read, nothing is claimed.
	for _, line := range cart.Lines {
		if !line.StockTracked {
			continue
		}
		available, err := c.uow.Reads().AvailableStock(ctx, line.VariantID)
		if err != nil {
			return errs.Mark(err, ErrCheckoutFailed)
		}
		if available < line.Quantity {
			return errs.Mark(
				errs.Newf("only %d of %d units available for variant %s",
					available, line.Quantity, line.VariantID),
				ErrInsufficientStock)
		}
	}

	run.cart = cart
	return nil
}

// phaseReserveInventory claims stock line by line. Each fully satisfied line
// registers its own release compensation immediately, so a later line coming
// up short unwinds only what this run actually claimed.
func (c *checkoutCommandsImpl) phaseReserveInventory(ctx context.Context, run *sagaRun) error {
	for _, line := range run.cart.Lines {
		if !line.StockTracked {
			continue
		}

		view, err := c.stock.Reserve(ctx, ReserveParams{
			VariantID: line.VariantID,
			Quantity:  line.Quantity,
			Reference: inventory.CheckoutReference(run.lock.ID()),
			TTL:       c.cfg.ReservationTTL,
			Actor:     run.lock.UserID().String(),
		})
		if err != nil {
			return err
		}

		reservationID := view.ID
		run.compensate(checkout.PhaseInventoryReservation, "release reservation", func(ctx context.Context) error {
			_, err := c.stock.Release(ctx, reservationID, "checkout rolled back", systemActor)
			return err
		})

		if view.ReservedQty < view.RequestedQty {
			return errs.Mark(
				errs.Newf("only %d of %d units available for variant %s",
					view.ReservedQty, view.RequestedQty, line.VariantID),
				ErrInsufficientStock,
			)
		}
		run.reservations = append(run.reservations, view)
	}
	return nil
}

// phaseLockPrices freezes totals. Snapshots are immutable audit records and
// register no compensation: a failed attempt leaves them behind tagged to a
// failed lock.
func (c *checkoutCommandsImpl) phaseLockPrices(ctx context.Context, run *sagaRun) error {
	snapshots, err := c.pricing.LockPrices(ctx, run.lock.ID(), run.cart)
	if err != nil {
		return err
	}
	run.snapshots = snapshots
	return nil
}

func (c *checkoutCommandsImpl) phaseAuthorizePayment(ctx context.Context, run *sagaRun, payment PaymentInput) error {
	authRef, err := c.gateway.Authorize(ctx, run.cartTotal(), run.currency(), payment)
	if err != nil {
		return errs.Mark(err, ErrPaymentDeclined)
	}

	run.authRef = authRef
	run.lock.SetMetadata(checkout.MetaAuthorizationID, authRef)
	run.compensate(checkout.PhasePaymentAuthorization, "void authorization", func(ctx context.Context) error {
		return c.gateway.Void(ctx, authRef)
	})
	return nil
}

func (c *checkoutCommandsImpl) phaseCreateOrder(ctx context.Context, run *sagaRun) error {
	order, err := c.materializer.CreateOrderFromCart(ctx, run.cart)
	if err != nil {
		return errs.Mark(err, ErrOrderCreation)
	}

	orderID := order.ID
	run.compensate(checkout.PhaseOrderCreation, "cancel order", func(ctx context.Context) error {
		return c.materializer.Cancel(ctx, orderID)
	})

	// The materializer copies live cart prices; the frozen snapshot is the
	// authoritative amount.
	order, err = c.materializer.ApplyTotals(ctx, orderID, run.snapshots)
	if err != nil {
		return errs.Mark(err, ErrOrderCreation)
	}

	run.order = order
	run.lock.SetMetadata(checkout.MetaOrderID, orderID.String())
	return nil
}

func (c *checkoutCommandsImpl) phaseCapturePayment(ctx context.Context, run *sagaRun) error {
	captureRef, err := c.gateway.Capture(ctx, run.authRef)
	if err != nil {
		return errs.Mark(err, ErrPaymentDeclined)
	}

	run.captureRef = captureRef
	run.lock.SetMetadata(checkout.MetaCaptureID, captureRef)
	run.compensate(checkout.PhasePaymentCapture, "refund capture", func(ctx context.Context) error {
		return c.gateway.Refund(ctx, captureRef)
	})
	return nil
}

// phaseCommitStock converts the run's reservations into permanent order-scoped
// claims. It registers no compensation: once stock is committed to an order
// there is no automatic undo, and a failure here is flagged for manual
// reconciliation while the earlier phases unwind.
func (c *checkoutCommandsImpl) phaseCommitStock(ctx context.Context, run *sagaRun) error {
	for _, res := range run.reservations {
		if err := c.stock.Confirm(ctx, res.ID, run.order.ID); err != nil {
			run.lock.SetMetadata(checkout.MetaNeedsReconciliation, "true")
			return errs.Mark(err, ErrStockCommitFailed)
		}
	}
	return nil
}

func (c *checkoutCommandsImpl) enterPhase(ctx context.Context, lock *checkout.Lock, phase checkout.Phase) error {
	if err := lock.EnterPhase(phase, c.clock.Now()); err != nil {
		return err
	}
	if err := c.saveLock(ctx, lock); err != nil {
		return err
	}

	c.emitter.Emit(ctx, Signal{
		Name: SignalPhaseTransitioned,
		At:   c.clock.Now(),
		Fields: map[string]any{
			"lock_id": lock.ID(),
			"phase":   phase.String(),
		},
	})
	return nil
}

// rollback unwinds the registered compensations newest-first and moves the
// lock to failed. It runs on a context detached from the caller's
// cancellation: an abandoned request must not leave half-compensated state.
func (c *checkoutCommandsImpl) rollback(ctx context.Context, run *sagaRun, failedAt checkout.Phase, cause error) {
	ctx = context.WithoutCancel(ctx)

	slog.Warn("checkout failed, rolling back",
		"lock_id", run.lock.ID(),
		"phase", failedAt.String(),
		"compensations", len(run.compensations),
		"error", cause.Error())

	for i := len(run.compensations) - 1; i >= 0; i-- {
		comp := run.compensations[i]
		if err := comp.run(ctx); err != nil {
			slog.Error("compensation failed",
				"lock_id", run.lock.ID(),
				"compensating_phase", comp.phase.String(),
				"step", comp.name,
				"error", err.Error())
		}
	}

	if err := run.lock.Fail(failedAt, cause.Error()); err != nil {
		slog.Error("failed to mark checkout lock failed", "lock_id", run.lock.ID(), "error", err.Error())
		return
	}
	if err := c.saveLock(ctx, run.lock); err != nil {
		slog.Error("failed to persist failed checkout lock", "lock_id", run.lock.ID(), "error", err.Error())
	}

	c.emitter.Emit(ctx, Signal{
		Name: SignalCheckoutFailed,
		At:   c.clock.Now(),
		Fields: map[string]any{
			"lock_id":      run.lock.ID(),
			"failed_phase": failedAt.String(),
			"reason":       cause.Error(),
		},
	})
}

// ReclaimExpiredLocks fails expired in-flight locks and releases the stock
// their runs reserved. Locks that cannot be reclaimed are logged and left for
// the next sweep.
func (c *checkoutCommandsImpl) ReclaimExpiredLocks(ctx context.Context, limit int32) (int, error) {
	var expired []*checkout.Lock
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		expired, err = tx.CheckoutLocks().FindExpiredActive(ctx, c.clock.Now(), limit)
		return err
	})
	if err != nil {
		return 0, errs.Mark(err, ErrCheckoutFailed)
	}

	reclaimed := 0
	for _, lock := range expired {
		if err := c.reclaimLock(ctx, lock); err != nil {
			slog.Warn("failed to reclaim expired checkout lock",
				"lock_id", lock.ID(), "error", err.Error())
			continue
		}
		reclaimed++
	}
	return reclaimed, nil
}

func (c *checkoutCommandsImpl) reclaimLock(ctx context.Context, lock *checkout.Lock) error {
	var held []*inventory.Reservation
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		held, err = tx.Reservations().FindByReference(ctx, inventory.CheckoutReference(lock.ID()))
		return err
	})
	if err != nil {
		return errs.Mark(err, ErrCheckoutFailed)
	}

	for _, res := range held {
		if res.Released() || res.Status() == inventory.ReservationStatusOrderConfirmed {
			continue
		}
		if _, err := c.stock.Release(ctx, res.ID(), "checkout lock expired", systemActor); err != nil {
			return err
		}
	}

	lock.SetMetadata(checkout.MetaReclaimReason, "ttl expired")
	if err := lock.Fail(lock.CurrentPhase(), "checkout lock expired"); err != nil {
		return errs.Mark(err, ErrCheckoutFailed)
	}
	if err := c.saveLock(ctx, lock); err != nil {
		return err
	}

	c.emitter.Emit(ctx, Signal{
		Name: SignalCheckoutFailed,
		At:   c.clock.Now(),
		Fields: map[string]any{
			"lock_id": lock.ID(),
			"reason":  "ttl expired",
		},
	})
	return nil
}

func (c *checkoutCommandsImpl) loadCart(ctx context.Context, cartID uuid.UUID) (*shared.CartSnapshot, error) {
	cart, err := c.uow.Reads().CartByID(ctx, cartID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCartNotFound)
		}
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}
	return cart, nil
}

func (c *checkoutCommandsImpl) loadLock(ctx context.Context, lockID uuid.UUID) (*checkout.Lock, error) {
	var lock *checkout.Lock
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		lock, err = tx.CheckoutLocks().FindByID(ctx, lockID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrLockNotFound)
		}
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}
	return lock, nil
}

func (c *checkoutCommandsImpl) saveLock(ctx context.Context, lock *checkout.Lock) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.CheckoutLocks().Update(ctx, lock)
	})
}

func toLockView(lock *checkout.Lock) *queries.CheckoutLockView {
	return &queries.CheckoutLockView{
		ID:        lock.ID(),
		CartID:    lock.CartID(),
		UserID:    lock.UserID(),
		State:     lock.State().String(),
		Phase:     lock.CurrentPhase().String(),
		LockedAt:  lock.LockedAt(),
		ExpiresAt: lock.ExpiresAt(),
		Metadata:  lock.Metadata(),
		CreatedAt: lock.CreatedAt(),
		UpdatedAt: lock.UpdatedAt(),
	}
}
