package queries

import (
	"context"

	"github.com/google/uuid"
)

type CheckoutQueries interface {
	LockByID(ctx context.Context, id uuid.UUID) (*CheckoutLockView, error)
	ReservationsByLock(ctx context.Context, lockID uuid.UUID) ([]*ReservationView, error)
	SnapshotsByLock(ctx context.Context, lockID uuid.UUID) ([]*PriceSnapshotView, error)
}
