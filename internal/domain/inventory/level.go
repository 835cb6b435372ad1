package inventory

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInsufficientLevel  = errors.New("not enough available stock")
	ErrReleaseExceeds     = errors.New("release exceeds reserved quantity")
	ErrNegativeOnHand     = errors.New("on-hand quantity cannot go negative")
	ErrDamagedExceedsHand = errors.New("damaged quantity cannot exceed on-hand")
)

// Level is the per-(variant, warehouse) stock record and the single source of
// truth for quantity state. It may only be mutated inside the critical section
// guarded by that pair's mutex plus the row lock held by the surrounding
// transaction.
//
// quantity counts every physical unit on hand, damaged included; available is
// derived as quantity - reserved - damaged.
type Level struct {
	variantID      uuid.UUID
	warehouseID    uuid.UUID
	quantity       int64
	reserved       int64
	incoming       int64
	damaged        int64
	preorder       int64
	backorderLimit int64
	safetyStock    int64
}

func ReconstructLevel(
	variantID, warehouseID uuid.UUID,
	quantity, reserved, incoming, damaged, preorder, backorderLimit, safetyStock int64,
) *Level {
	return &Level{
		variantID:      variantID,
		warehouseID:    warehouseID,
		quantity:       quantity,
		reserved:       reserved,
		incoming:       incoming,
		damaged:        damaged,
		preorder:       preorder,
		backorderLimit: backorderLimit,
		safetyStock:    safetyStock,
	}
}

func (l *Level) Available() int64 {
	return l.quantity - l.reserved - l.damaged
}

// Reserve claims n units. The claim is capped so that reserved never exceeds
// quantity - damaged; the manual override path bypasses the cap and may drive
// available negative.
func (l *Level) Reserve(n int64, override bool) error {
	if n <= 0 {
		return ErrInvalidQuantity
	}
	if !override && n > l.Available() {
		return ErrInsufficientLevel
	}
	l.reserved += n
	return nil
}

func (l *Level) ReleaseReserved(n int64) error {
	if n <= 0 {
		return ErrInvalidQuantity
	}
	if n > l.reserved {
		return ErrReleaseExceeds
	}
	l.reserved -= n
	return nil
}

// ApplyQuantityDelta moves on-hand stock for sale/return/import/adjustment/
// transfer/correction movements.
func (l *Level) ApplyQuantityDelta(delta int64) error {
	if l.quantity+delta < 0 {
		return ErrNegativeOnHand
	}
	l.quantity += delta
	return nil
}

// MarkDamaged flags n on-hand units as unsellable without moving them off the
// shelf; only the derived available drops.
func (l *Level) MarkDamaged(n int64) error {
	if n <= 0 {
		return ErrInvalidQuantity
	}
	if l.damaged+n > l.quantity {
		return ErrDamagedExceedsHand
	}
	l.damaged += n
	return nil
}

func (l *Level) BelowSafetyStock() bool {
	return l.safetyStock > 0 && l.Available() < l.safetyStock
}

// Snapshot captures the quantity triple for ledger before/after bookkeeping.
func (l *Level) Snapshot() LevelSnapshot {
	return LevelSnapshot{
		Quantity:  l.quantity,
		Reserved:  l.reserved,
		Available: l.Available(),
	}
}

type LevelSnapshot struct {
	Quantity  int64
	Reserved  int64
	Available int64
}

func (l *Level) VariantID() uuid.UUID   { return l.variantID }
func (l *Level) WarehouseID() uuid.UUID { return l.warehouseID }
func (l *Level) Quantity() int64        { return l.quantity }
func (l *Level) Reserved() int64        { return l.reserved }
func (l *Level) Incoming() int64        { return l.incoming }
func (l *Level) Damaged() int64         { return l.damaged }
func (l *Level) Preorder() int64        { return l.preorder }
func (l *Level) BackorderLimit() int64  { return l.backorderLimit }
func (l *Level) SafetyStock() int64     { return l.safetyStock }
