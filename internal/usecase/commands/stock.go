package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

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
	ErrInsufficientStock     = errs.New("insufficient stock")
	ErrLockContention        = errs.New("stock lock contention")
	ErrReservationNotFound   = errs.New("reservation not found")
	ErrInventoryNotFound     = errs.New("inventory level not found")
	ErrWarehouseSelection    = errs.New("warehouse selection failed")
	ErrReservationImmutable  = errs.New("reservation cannot be modified")
	ErrInvalidAdjustment     = errs.New("invalid stock adjustment")
	ErrStockOperationFailed  = errs.New("stock operation failed")
	ErrTransferUnavailable   = errs.New("not enough available stock to transfer")
	ErrSameWarehouseTransfer = errs.New("transfer requires two distinct warehouses")
)

const systemActor = "system"

type ReserveParams struct {
	VariantID   uuid.UUID
	Quantity    int64
	Reference   inventory.Reference
	WarehouseID *uuid.UUID // nil lets the warehouse selector choose
	TTL         time.Duration
	Actor       string
}

type ManualReservationParams struct {
	VariantID   uuid.UUID
	WarehouseID uuid.UUID
	Quantity    int64
	Reason      string
	Actor       string
}

type AdjustParams struct {
	VariantID   uuid.UUID
	WarehouseID uuid.UUID
	Type        inventory.MovementType
	Quantity    int64  // signed delta; ignored for correction
	Target      *int64 // correction only: explicit on-hand target
	Reason      string
	Actor       string
}

type TransferParams struct {
	VariantID     uuid.UUID
	FromWarehouse uuid.UUID
	ToWarehouse   uuid.UUID
	Quantity      int64
	Reason        string
	Actor         string
}

// StockCommands is the concurrency-safe reservation engine. Every mutation of
// an inventory row happens inside the per-(variant, warehouse) mutex plus a
// row-level lock, and writes exactly one ledger entry in the same transaction.
type StockCommands interface {
	Reserve(ctx context.Context, p ReserveParams) (*queries.ReservationView, error)
	Confirm(ctx context.Context, reservationID, orderID uuid.UUID) error
	Release(ctx context.Context, reservationID uuid.UUID, reason, actor string) (bool, error)
	CompletePartial(ctx context.Context, reservationID uuid.UUID, additional int64, actor string) (*queries.ReservationView, error)
	CreateManual(ctx context.Context, p ManualReservationParams) (*queries.ReservationView, error)
	ReleaseExpired(ctx context.Context, limit int32) (int, error)
	Adjust(ctx context.Context, p AdjustParams) error
	Transfer(ctx context.Context, p TransferParams) error
}

type stockCommandsImpl struct {
	uow      shared.UnitOfWork
	locker   shared.StockLocker
	selector WarehouseSelector
	emitter  SignalEmitter
	cfg      config.CheckoutConfig
	clock    clock.Clock
}

func NewStockCommands(
	uow shared.UnitOfWork,
	locker shared.StockLocker,
	selector WarehouseSelector,
	emitter SignalEmitter,
	cfg config.CheckoutConfig,
	clk clock.Clock,
) StockCommands {
	return &stockCommandsImpl{
		uow:      uow,
		locker:   locker,
		selector: selector,
		emitter:  emitter,
		cfg:      cfg,
		clock:    clk,
	}
}

func stockKey(variantID, warehouseID uuid.UUID) string {
	return fmt.Sprintf("stock:%s:%s", variantID, warehouseID)
}

// Reserve claims up to p.Quantity units. Partial reservation is intentional:
// when less stock is available than requested the claim is capped, never
// errored, and the caller checks ReservedQty against RequestedQty.
func (s *stockCommandsImpl) Reserve(ctx context.Context, p ReserveParams) (*queries.ReservationView, error) {
	if p.Quantity <= 0 {
		return nil, errs.Mark(errs.New("quantity must be positive"), ErrInvalidAdjustment)
	}

	candidates, err := s.candidateWarehouses(ctx, p)
	if err != nil {
		return nil, err
	}

	for _, warehouseID := range candidates {
		view, err := s.reserveAt(ctx, p, warehouseID)
		if err == nil {
			s.emitter.Emit(ctx, Signal{
				Name: SignalStockReserved,
				At:   s.clock.Now(),
				Fields: map[string]any{
					"reservation_id": view.ID,
					"variant_id":     p.VariantID,
					"warehouse_id":   warehouseID,
					"requested":      p.Quantity,
					"reserved":       view.ReservedQty,
				},
			})
			return view, nil
		}
		// An empty candidate is not fatal while others remain.
		if errors.Is(err, ErrInsufficientStock) {
			continue
		}
		return nil, err
	}

	return nil, ErrInsufficientStock
}

func (s *stockCommandsImpl) candidateWarehouses(ctx context.Context, p ReserveParams) ([]uuid.UUID, error) {
	if p.WarehouseID != nil {
		return []uuid.UUID{*p.WarehouseID}, nil
	}

	ranked, err := s.selector.RankWarehouses(ctx, p.VariantID, p.Quantity)
	if err != nil {
		return nil, errs.Mark(err, ErrWarehouseSelection)
	}
	if len(ranked) == 0 {
		return nil, ErrInsufficientStock
	}
	return ranked, nil
}

func (s *stockCommandsImpl) reserveAt(ctx context.Context, p ReserveParams, warehouseID uuid.UUID) (*queries.ReservationView, error) {
	handle, err := s.acquire(ctx, p.VariantID, warehouseID)
	if err != nil {
		return nil, err
	}
	defer s.release(ctx, handle)

	ttl := p.TTL
	if ttl <= 0 {
		ttl = s.cfg.ReservationTTL
	}

	var res *inventory.Reservation
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		level, err := s.levelForUpdate(ctx, tx, p.VariantID, warehouseID)
		if err != nil {
			return err
		}

		available := level.Available()
		if available <= 0 {
			return ErrInsufficientStock
		}

		claim := min(p.Quantity, available)
		now := s.clock.Now()

		before := level.Snapshot()
		if err := level.Reserve(claim, false); err != nil {
			return errs.Mark(err, ErrStockOperationFailed)
		}

		res, err = inventory.NewCartReservation(
			p.VariantID, warehouseID,
			p.Quantity, claim,
			p.Reference,
			handle.Token(), handle.ExpiresAt(),
			now, ttl,
		)
		if err != nil {
			return errs.Mark(err, ErrStockOperationFailed)
		}

		if err := tx.Reservations().Create(ctx, res); err != nil {
			return errs.Mark(err, ErrStockOperationFailed)
		}
		if err := tx.Inventory().Save(ctx, level); err != nil {
			return errs.Mark(err, ErrStockOperationFailed)
		}

		return s.appendMovement(ctx, tx, level, inventory.MovementReservation, -claim, before,
			res.Ref(), "stock reserved", p.Actor, now)
	})
	if err != nil {
		return nil, err
	}

	return toReservationView(res), nil
}

// Confirm converts a cart reservation into a permanent order-scoped one under
// the same lock class as reserve. Quantities stay put: the claim already moved
// stock out of available at reserve time.
func (s *stockCommandsImpl) Confirm(ctx context.Context, reservationID, orderID uuid.UUID) error {
	res, err := s.loadReservation(ctx, reservationID)
	if err != nil {
		return err
	}

	handle, err := s.acquire(ctx, res.VariantID(), res.WarehouseID())
	if err != nil {
		return err
	}
	defer s.release(ctx, handle)

	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		fresh, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			return s.mapReservationErr(err)
		}
		if err := fresh.Confirm(orderID); err != nil {
			return errs.Mark(err, ErrReservationImmutable)
		}
		return tx.Reservations().Update(ctx, fresh)
	})
}

// Release frees a reservation's claim. Idempotent: a second release is a no-op
// reporting false.
func (s *stockCommandsImpl) Release(ctx context.Context, reservationID uuid.UUID, reason, actor string) (bool, error) {
	res, err := s.loadReservation(ctx, reservationID)
	if err != nil {
		return false, err
	}
	if res.Released() {
		return false, nil
	}

	handle, err := s.acquire(ctx, res.VariantID(), res.WarehouseID())
	if err != nil {
		return false, err
	}
	defer s.release(ctx, handle)

	released := false
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		fresh, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			return s.mapReservationErr(err)
		}
		if !fresh.Release() {
			return nil // lost the race to another releaser
		}

		level, err := s.levelForUpdate(ctx, tx, fresh.VariantID(), fresh.WarehouseID())
		if err != nil {
			return err
		}

		now := s.clock.Now()
		before := level.Snapshot()
		if err := level.ReleaseReserved(fresh.ReservedQty()); err != nil {
			return errs.Mark(err, ErrStockOperationFailed)
		}

		if err := tx.Reservations().Update(ctx, fresh); err != nil {
			return errs.Mark(err, ErrStockOperationFailed)
		}
		if err := tx.Inventory().Save(ctx, level); err != nil {
			return errs.Mark(err, ErrStockOperationFailed)
		}

		if err := s.appendMovement(ctx, tx, level, inventory.MovementRelease, fresh.ReservedQty(), before,
			fresh.Ref(), reason, actor, now); err != nil {
			return err
		}

		released = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if released {
		s.emitter.Emit(ctx, Signal{
			Name: SignalStockReleased,
			At:   s.clock.Now(),
			Fields: map[string]any{
				"reservation_id": reservationID,
				"variant_id":     res.VariantID(),
				"warehouse_id":   res.WarehouseID(),
				"reason":         reason,
			},
		})
	}
	return released, nil
}

// CompletePartial tops up a partially satisfied reservation using the same
// lock-and-check protocol as Reserve.
func (s *stockCommandsImpl) CompletePartial(ctx context.Context, reservationID uuid.UUID, additional int64, actor string) (*queries.ReservationView, error) {
	if additional <= 0 {
		return nil, errs.Mark(errs.New("additional quantity must be positive"), ErrInvalidAdjustment)
	}

	res, err := s.loadReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.FullySatisfied() {
		return nil, errs.Mark(inventory.ErrRequestIncomplete, ErrReservationImmutable)
	}

	handle, err := s.acquire(ctx, res.VariantID(), res.WarehouseID())
	if err != nil {
		return nil, err
	}
	defer s.release(ctx, handle)

	var updated *inventory.Reservation
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		fresh, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			return s.mapReservationErr(err)
		}

		level, err := s.levelForUpdate(ctx, tx, fresh.VariantID(), fresh.WarehouseID())
		if err != nil {
			return err
		}

		available := level.Available()
		if available <= 0 {
			return ErrInsufficientStock
		}

		grow := min(additional, fresh.Shortfall(), available)
		now := s.clock.Now()

		before := level.Snapshot()
		if err := level.Reserve(grow, false); err != nil {
			return errs.Mark(err, ErrStockOperationFailed)
		}
		if err := fresh.Grow(grow); err != nil {
			return errs.Mark(err, ErrReservationImmutable)
		}

		if err := tx.Reservations().Update(ctx, fresh); err != nil {
			return errs.Mark(err, ErrStockOperationFailed)
		}
		if err := tx.Inventory().Save(ctx, level); err != nil {
			return errs.Mark(err, ErrStockOperationFailed)
		}

		if err := s.appendMovement(ctx, tx, level, inventory.MovementReservation, -grow, before,
			fresh.Ref(), "partial reservation completed", actor, now); err != nil {
			return err
		}

		updated = fresh
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toReservationView(updated), nil
}

// CreateManual is the administrative override path: it may claim beyond the
// available quantity, driving available negative, and never expires.
func (s *stockCommandsImpl) CreateManual(ctx context.Context, p ManualReservationParams) (*queries.ReservationView, error) {
	handle, err := s.acquire(ctx, p.VariantID, p.WarehouseID)
	if err != nil {
		return nil, err
	}
	defer s.release(ctx, handle)

	var res *inventory.Reservation
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		level, err := s.levelForUpdate(ctx, tx, p.VariantID, p.WarehouseID)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		before := level.Snapshot()
		if err := level.Reserve(p.Quantity, true); err != nil {
			return errs.Mark(err, ErrInvalidAdjustment)
		}

		res, err = inventory.NewManualReservation(p.VariantID, p.WarehouseID, p.Quantity, p.Reason)
		if err != nil {
			return errs.Mark(err, ErrInvalidAdjustment)
		}

		if err := tx.Reservations().Create(ctx, res); err != nil {
			return errs.Mark(err, ErrStockOperationFailed)
		}
		if err := tx.Inventory().Save(ctx, level); err != nil {
			return errs.Mark(err, ErrStockOperationFailed)
		}

		return s.appendMovement(ctx, tx, level, inventory.MovementReservation, -p.Quantity, before,
			res.Ref(), p.Reason, p.Actor, now)
	})
	if err != nil {
		return nil, err
	}

	return toReservationView(res), nil
}

// ReleaseExpired is the sweep for checkout attempts abandoned without going
// through saga rollback. Only expired cart reservations qualify; confirmed and
// manual ones are exempt. Individual failures are logged and skipped so one
// stuck row cannot stall the sweep.
func (s *stockCommandsImpl) ReleaseExpired(ctx context.Context, limit int32) (int, error) {
	var expired []*inventory.Reservation
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		expired, err = tx.Reservations().FindExpiredCart(ctx, s.clock.Now(), limit)
		return err
	})
	if err != nil {
		return 0, errs.Mark(err, ErrStockOperationFailed)
	}

	released := 0
	for _, res := range expired {
		ok, err := s.Release(ctx, res.ID(), "reservation expired", systemActor)
		if err != nil {
			slog.Warn("failed to release expired reservation",
				"reservation_id", res.ID(),
				"variant_id", res.VariantID(),
				"error", err.Error())
			continue
		}
		if ok {
			released++
		}
	}
	return released, nil
}

// Adjust applies a non-reservation quantity change under the usual locking
// discipline, writing its ledger entry in the same transaction.
func (s *stockCommandsImpl) Adjust(ctx context.Context, p AdjustParams) error {
	handle, err := s.acquire(ctx, p.VariantID, p.WarehouseID)
	if err != nil {
		return err
	}
	defer s.release(ctx, handle)

	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		level, err := s.levelForUpdate(ctx, tx, p.VariantID, p.WarehouseID)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		before := level.Snapshot()

		delta := p.Quantity
		switch p.Type {
		case inventory.MovementAdjustment:
			if delta == 0 {
				return errs.Mark(errs.New("adjustment delta required"), ErrInvalidAdjustment)
			}
			if err := level.ApplyQuantityDelta(delta); err != nil {
				return errs.Mark(err, ErrInvalidAdjustment)
			}
		case inventory.MovementImport:
			if delta <= 0 {
				return errs.Mark(errs.New("import delta must be positive"), ErrInvalidAdjustment)
			}
			if err := level.ApplyQuantityDelta(delta); err != nil {
				return errs.Mark(err, ErrInvalidAdjustment)
			}
		case inventory.MovementDamage:
			if delta >= 0 {
				return errs.Mark(errs.New("damage delta must be negative"), ErrInvalidAdjustment)
			}
			if err := level.MarkDamaged(-delta); err != nil {
				return errs.Mark(err, ErrInvalidAdjustment)
			}
		case inventory.MovementCorrection:
			if p.Target == nil {
				return errs.Mark(errs.New("correction requires an explicit target"), ErrInvalidAdjustment)
			}
			delta = *p.Target - level.Quantity()
			if delta == 0 {
				return errs.Mark(errs.New("correction target equals current quantity"), ErrInvalidAdjustment)
			}
			if err := level.ApplyQuantityDelta(delta); err != nil {
				return errs.Mark(err, ErrInvalidAdjustment)
			}
		default:
			return errs.Mark(errs.Newf("type %q is not adjustable", p.Type), ErrInvalidAdjustment)
		}

		if err := tx.Inventory().Save(ctx, level); err != nil {
			return errs.Mark(err, ErrStockOperationFailed)
		}

		return s.appendMovement(ctx, tx, level, p.Type, delta, before,
			inventory.NoReference(), p.Reason, p.Actor, now)
	})
}

// Transfer moves on-hand stock between two warehouses, writing the paired
// ledger entries atomically in one transaction. Both mutexes are taken in a
// stable order so two opposing transfers cannot deadlock.
func (s *stockCommandsImpl) Transfer(ctx context.Context, p TransferParams) error {
	if p.FromWarehouse == p.ToWarehouse {
		return ErrSameWarehouseTransfer
	}
	if p.Quantity <= 0 {
		return errs.Mark(errs.New("transfer quantity must be positive"), ErrInvalidAdjustment)
	}

	keys := []uuid.UUID{p.FromWarehouse, p.ToWarehouse}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	first, err := s.acquire(ctx, p.VariantID, keys[0])
	if err != nil {
		return err
	}
	defer s.release(ctx, first)

	second, err := s.acquire(ctx, p.VariantID, keys[1])
	if err != nil {
		return err
	}
	defer s.release(ctx, second)

	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		from, err := s.levelForUpdate(ctx, tx, p.VariantID, p.FromWarehouse)
		if err != nil {
			return err
		}
		to, err := s.levelForUpdate(ctx, tx, p.VariantID, p.ToWarehouse)
		if err != nil {
			return err
		}

		if from.Available() < p.Quantity {
			return ErrTransferUnavailable
		}

		now := s.clock.Now()
		fromBefore := from.Snapshot()
		toBefore := to.Snapshot()

		if err := from.ApplyQuantityDelta(-p.Quantity); err != nil {
			return errs.Mark(err, ErrInvalidAdjustment)
		}
		if err := to.ApplyQuantityDelta(p.Quantity); err != nil {
			return errs.Mark(err, ErrInvalidAdjustment)
		}

		if err := tx.Inventory().Save(ctx, from); err != nil {
			return errs.Mark(err, ErrStockOperationFailed)
		}
		if err := tx.Inventory().Save(ctx, to); err != nil {
			return errs.Mark(err, ErrStockOperationFailed)
		}

		if err := s.appendMovement(ctx, tx, from, inventory.MovementTransfer, -p.Quantity, fromBefore,
			inventory.NoReference(), p.Reason, p.Actor, now); err != nil {
			return err
		}
		return s.appendMovement(ctx, tx, to, inventory.MovementTransfer, p.Quantity, toBefore,
			inventory.NoReference(), p.Reason, p.Actor, now)
	})
}

func (s *stockCommandsImpl) acquire(ctx context.Context, variantID, warehouseID uuid.UUID) (shared.LockHandle, error) {
	handle, err := s.locker.Acquire(ctx, stockKey(variantID, warehouseID), s.cfg.StockMutexTTL, s.cfg.StockMutexWait)
	if err != nil {
		if errors.Is(err, shared.ErrLockNotAcquired) {
			return nil, errs.Mark(err, ErrLockContention)
		}
		return nil, errs.Mark(err, ErrStockOperationFailed)
	}
	return handle, nil
}

func (s *stockCommandsImpl) release(ctx context.Context, handle shared.LockHandle) {
	if err := handle.Release(ctx); err != nil {
		slog.Warn("failed to release stock mutex", "error", err.Error())
	}
}

func (s *stockCommandsImpl) levelForUpdate(ctx context.Context, tx shared.Tx, variantID, warehouseID uuid.UUID) (*inventory.Level, error) {
	level, err := tx.Inventory().FindForUpdate(ctx, variantID, warehouseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInventoryNotFound)
		}
		return nil, errs.Mark(err, ErrStockOperationFailed)
	}
	return level, nil
}

func (s *stockCommandsImpl) loadReservation(ctx context.Context, id uuid.UUID) (*inventory.Reservation, error) {
	var res *inventory.Reservation
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		res, err = tx.Reservations().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, s.mapReservationErr(err)
	}
	return res, nil
}

func (s *stockCommandsImpl) mapReservationErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrReservationNotFound)
	}
	return errs.Mark(err, ErrStockOperationFailed)
}

func (s *stockCommandsImpl) appendMovement(
	ctx context.Context,
	tx shared.Tx,
	level *inventory.Level,
	typ inventory.MovementType,
	delta int64,
	before inventory.LevelSnapshot,
	ref inventory.Reference,
	reason, actor string,
	occurredAt time.Time,
) error {
	if actor == "" {
		actor = systemActor
	}
	movement, err := inventory.NewMovement(
		level.VariantID(), level.WarehouseID(),
		typ, delta,
		before, level.Snapshot(),
		ref, reason, actor, occurredAt,
	)
	if err != nil {
		return errs.Mark(err, ErrStockOperationFailed)
	}
	if err := tx.Movements().Append(ctx, movement); err != nil {
		return errs.Mark(err, ErrStockOperationFailed)
	}
	return nil
}

func toReservationView(res *inventory.Reservation) *queries.ReservationView {
	view := &queries.ReservationView{
		ID:             res.ID(),
		VariantID:      res.VariantID(),
		WarehouseID:    res.WarehouseID(),
		RequestedQty:   res.RequestedQty(),
		ReservedQty:    res.ReservedQty(),
		Status:         res.Status().String(),
		ExpiresAt:      res.ExpiresAt(),
		Released:       res.Released(),
		OverrideReason: res.OverrideReason(),
		CreatedAt:      res.CreatedAt(),
	}
	if !res.Ref().IsZero() {
		refID := res.Ref().ID
		view.ReferenceType = string(res.Ref().Type)
		view.ReferenceID = &refID
	}
	return view
}
