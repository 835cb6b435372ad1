package shared

import (
	"context"
	"time"

	"checkout-core/internal/domain/checkout"
	"checkout-core/internal/domain/inventory"
	"checkout-core/internal/domain/pricing"
	"checkout-core/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// Reads: Direct access to command reads outside transactions
	Reads() CommandReads
}

type Tx interface {
	CheckoutLocks() CheckoutLockRepository
	Reservations() ReservationRepository
	Inventory() InventoryRepository
	Movements() MovementRepository
	Snapshots() PriceSnapshotRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CheckoutLockRepository interface {
	Create(ctx context.Context, lock *checkout.Lock) error
	Update(ctx context.Context, lock *checkout.Lock) error
	FindByID(ctx context.Context, id uuid.UUID) (*checkout.Lock, error)
	// FindActiveByCart returns the non-terminal, unexpired lock for a cart and
	// owner, if any. At most one can exist.
	FindActiveByCart(ctx context.Context, cartID, userID uuid.UUID, now time.Time) (*checkout.Lock, error)
	// FindExpiredActive lists non-terminal locks whose TTL has passed, oldest
	// first, for the reclaim sweep.
	FindExpiredActive(ctx context.Context, now time.Time, limit int32) ([]*checkout.Lock, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *inventory.Reservation) error
	Update(ctx context.Context, res *inventory.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*inventory.Reservation, error)
	FindByReference(ctx context.Context, ref inventory.Reference) ([]*inventory.Reservation, error)
	// FindExpiredCart lists unexpired-status cart reservations whose expiry has
	// passed, oldest first.
	FindExpiredCart(ctx context.Context, now time.Time, limit int32) ([]*inventory.Reservation, error)
}

type InventoryRepository interface {
	// FindForUpdate reads the (variant, warehouse) row under a row-level
	// exclusive lock; must run inside a transaction.
	FindForUpdate(ctx context.Context, variantID, warehouseID uuid.UUID) (*inventory.Level, error)
	Save(ctx context.Context, level *inventory.Level) error
}

// MovementRepository is append-only: the ledger has no update or delete path.
type MovementRepository interface {
	Append(ctx context.Context, m *inventory.Movement) error
}

type PriceSnapshotRepository interface {
	// Create persists a write-once snapshot; writing a second snapshot of the
	// same scope for the same checkout lock fails.
	Create(ctx context.Context, s *pricing.Snapshot) error
	FindByLock(ctx context.Context, checkoutLockID uuid.UUID) ([]*pricing.Snapshot, error)
	ExistsForLock(ctx context.Context, checkoutLockID uuid.UUID) (bool, error)
}

type CommandReads interface {
	CartByID(ctx context.Context, cartID uuid.UUID) (*CartSnapshot, error)
	// AvailableStock sums available quantity across warehouses without
	// reserving anything.
	AvailableStock(ctx context.Context, variantID uuid.UUID) (int64, error)
}

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)
type CartSnapshot struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Status             string
	Currency           string
	HasShippingAddress bool
	HasBillingAddress  bool
	CouponCode         *string
	Lines              []CartLineSnapshot
}

type CartLineSnapshot struct {
	ID             uuid.UUID
	VariantID      uuid.UUID
	Quantity       int64
	UnitPriceCents int64
	StockTracked   bool
}

func (c *CartSnapshot) Empty() bool {
	return len(c.Lines) == 0
}

// Orderable reports whether the cart can produce an order at all.
func (c *CartSnapshot) Orderable() bool {
	return c.Status == "active" && !c.Empty()
}
