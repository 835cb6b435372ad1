package inventory

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownMovementType = errors.New("unknown movement type")
	ErrZeroDelta           = errors.New("movement delta cannot be zero")
	ErrMissingActor        = errors.New("movement actor required")
)

// Movement is one immutable ledger entry documenting a quantity change with
// full before/after context. It must be built inside the same critical section
// as the mutation it records so the captured snapshots stay accurate.
//
// For reservation, release and damage movements the signed delta applies to
// the derived available quantity only; on-hand stays put.
type Movement struct {
	ID              uuid.UUID
	VariantID       uuid.UUID
	WarehouseID     uuid.UUID
	Type            MovementType
	Quantity        int64 // signed delta
	QuantityBefore  int64
	QuantityAfter   int64
	ReservedBefore  int64
	ReservedAfter   int64
	AvailableBefore int64
	AvailableAfter  int64
	Reference       Reference
	Reason          string
	Actor           string
	OccurredAt      time.Time
}

// NewMovement captures the before/after snapshots taken around the mutation.
func NewMovement(
	variantID, warehouseID uuid.UUID,
	typ MovementType,
	delta int64,
	before, after LevelSnapshot,
	ref Reference,
	reason, actor string,
	occurredAt time.Time,
) (*Movement, error) {
	if !typ.Valid() {
		return nil, ErrUnknownMovementType
	}
	if delta == 0 {
		return nil, ErrZeroDelta
	}
	if actor == "" {
		return nil, ErrMissingActor
	}

	return &Movement{
		ID:              uuid.New(),
		VariantID:       variantID,
		WarehouseID:     warehouseID,
		Type:            typ,
		Quantity:        delta,
		QuantityBefore:  before.Quantity,
		QuantityAfter:   after.Quantity,
		ReservedBefore:  before.Reserved,
		ReservedAfter:   after.Reserved,
		AvailableBefore: before.Available,
		AvailableAfter:  after.Available,
		Reference:       ref,
		Reason:          reason,
		Actor:           actor,
		OccurredAt:      occurredAt,
	}, nil
}

// Inbound reports whether the movement added stock.
func (m *Movement) Inbound() bool {
	return m.Quantity > 0
}
