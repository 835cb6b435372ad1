package inventory

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyReleased   = errors.New("reservation already released")
	ErrAlreadyConfirmed  = errors.New("reservation already confirmed")
	ErrNotCartScoped     = errors.New("reservation is not cart-scoped")
	ErrExceedsRequest    = errors.New("reserved quantity would exceed request")
	ErrRequestIncomplete = errors.New("reservation already satisfies its request")
	ErrNothingReserved   = errors.New("reserved quantity must be positive")
)

// Reservation is one claim of reserved stock against a (variant, warehouse)
// pair. Cart reservations expire; confirmed and manual ones do not. A released
// reservation never becomes active again.
type Reservation struct {
	id             uuid.UUID
	variantID      uuid.UUID
	warehouseID    uuid.UUID
	requestedQty   int64
	reservedQty    int64
	status         ReservationStatus
	reference      Reference
	lockToken      string
	lockExpiresAt  *time.Time
	expiresAt      *time.Time
	released       bool
	overrideReason string
	createdAt      time.Time
	updatedAt      time.Time
}

// NewCartReservation records a (possibly partial) claim made during checkout.
// reserved may be less than requested; the caller decides whether a partial
// claim is acceptable.
func NewCartReservation(
	variantID, warehouseID uuid.UUID,
	requested, reserved int64,
	ref Reference,
	lockToken string,
	lockExpiresAt time.Time,
	now time.Time,
	ttl time.Duration,
) (*Reservation, error) {
	if requested <= 0 || reserved <= 0 {
		return nil, ErrNothingReserved
	}
	if reserved > requested {
		return nil, ErrExceedsRequest
	}

	lockExp := lockExpiresAt
	exp := now.Add(ttl)
	return &Reservation{
		id:            uuid.New(),
		variantID:     variantID,
		warehouseID:   warehouseID,
		requestedQty:  requested,
		reservedQty:   reserved,
		status:        ReservationStatusCart,
		reference:     ref,
		lockToken:     lockToken,
		lockExpiresAt: &lockExp,
		expiresAt:     &exp,
	}, nil
}

// NewManualReservation records an administrative override claim. It carries no
// expiry and must name a reason.
func NewManualReservation(
	variantID, warehouseID uuid.UUID,
	quantity int64,
	reason string,
) (*Reservation, error) {
	if quantity <= 0 {
		return nil, ErrNothingReserved
	}
	if reason == "" {
		return nil, errors.New("override reason required")
	}

	id := uuid.New()
	return &Reservation{
		id:             id,
		variantID:      variantID,
		warehouseID:    warehouseID,
		requestedQty:   quantity,
		reservedQty:    quantity,
		status:         ReservationStatusManual,
		reference:      ManualReference(id),
		overrideReason: reason,
	}, nil
}

func ReconstructReservation(
	id, variantID, warehouseID uuid.UUID,
	requested, reserved int64,
	status ReservationStatus,
	ref Reference,
	lockToken string,
	lockExpiresAt, expiresAt *time.Time,
	released bool,
	overrideReason string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:             id,
		variantID:      variantID,
		warehouseID:    warehouseID,
		requestedQty:   requested,
		reservedQty:    reserved,
		status:         status,
		reference:      ref,
		lockToken:      lockToken,
		lockExpiresAt:  lockExpiresAt,
		expiresAt:      expiresAt,
		released:       released,
		overrideReason: overrideReason,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Confirm converts a cart claim into a permanent order-scoped one. The expiry
// and lock fields are cleared; quantities are untouched.
func (r *Reservation) Confirm(orderID uuid.UUID) error {
	if r.released {
		return ErrAlreadyReleased
	}
	if r.status == ReservationStatusOrderConfirmed {
		return ErrAlreadyConfirmed
	}
	if r.status != ReservationStatusCart {
		return ErrNotCartScoped
	}

	r.status = ReservationStatusOrderConfirmed
	r.reference = OrderReference(orderID)
	r.expiresAt = nil
	r.lockToken = ""
	r.lockExpiresAt = nil
	return nil
}

// Release marks the reservation released. Releasing twice is a no-op and
// reports false.
func (r *Reservation) Release() bool {
	if r.released {
		return false
	}
	r.released = true
	r.status = ReservationStatusReleased
	return true
}

// Grow adds stock claimed by completePartialReservation. Only an unreleased
// cart reservation short of its request may grow.
func (r *Reservation) Grow(n int64) error {
	if n <= 0 {
		return ErrNothingReserved
	}
	if r.released {
		return ErrAlreadyReleased
	}
	if r.status != ReservationStatusCart {
		return ErrNotCartScoped
	}
	if r.reservedQty >= r.requestedQty {
		return ErrRequestIncomplete
	}
	if r.reservedQty+n > r.requestedQty {
		return ErrExceedsRequest
	}
	r.reservedQty += n
	return nil
}

func (r *Reservation) Shortfall() int64 {
	return r.requestedQty - r.reservedQty
}

func (r *Reservation) FullySatisfied() bool {
	return r.reservedQty >= r.requestedQty
}

// ExpiredAt reports whether the sweep may reclaim this reservation: only
// unexpired-status cart claims whose TTL has passed qualify.
func (r *Reservation) ExpiredAt(now time.Time) bool {
	return r.status == ReservationStatusCart && !r.released &&
		r.expiresAt != nil && !now.Before(*r.expiresAt)
}

func (r *Reservation) ID() uuid.UUID             { return r.id }
func (r *Reservation) VariantID() uuid.UUID      { return r.variantID }
func (r *Reservation) WarehouseID() uuid.UUID    { return r.warehouseID }
func (r *Reservation) RequestedQty() int64       { return r.requestedQty }
func (r *Reservation) ReservedQty() int64        { return r.reservedQty }
func (r *Reservation) Status() ReservationStatus { return r.status }
func (r *Reservation) Ref() Reference            { return r.reference }
func (r *Reservation) LockToken() string         { return r.lockToken }
func (r *Reservation) LockExpiresAt() *time.Time { return r.lockExpiresAt }
func (r *Reservation) ExpiresAt() *time.Time     { return r.expiresAt }
func (r *Reservation) Released() bool            { return r.released }
func (r *Reservation) OverrideReason() string    { return r.overrideReason }
func (r *Reservation) CreatedAt() time.Time      { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time      { return r.updatedAt }
