package queries

import (
	"time"

	"github.com/google/uuid"
)

type CheckoutLockView struct {
	ID        uuid.UUID         `json:"id"`
	CartID    uuid.UUID         `json:"cartId"`
	UserID    uuid.UUID         `json:"userId"`
	State     string            `json:"state"`
	Phase     string            `json:"phase,omitempty"`
	LockedAt  time.Time         `json:"lockedAt"`
	ExpiresAt time.Time         `json:"expiresAt"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type ReservationView struct {
	ID             uuid.UUID  `json:"id"`
	VariantID      uuid.UUID  `json:"variantId"`
	WarehouseID    uuid.UUID  `json:"warehouseId"`
	RequestedQty   int64      `json:"requestedQuantity"`
	ReservedQty    int64      `json:"reservedQuantity"`
	Status         string     `json:"status"`
	ReferenceType  string     `json:"referenceType,omitempty"`
	ReferenceID    *uuid.UUID `json:"referenceId,omitempty"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	Released       bool       `json:"released"`
	OverrideReason string     `json:"overrideReason,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type MovementView struct {
	ID              uuid.UUID  `json:"id"`
	VariantID       uuid.UUID  `json:"variantId"`
	WarehouseID     uuid.UUID  `json:"warehouseId"`
	Type            string     `json:"type"`
	Quantity        int64      `json:"quantity"`
	QuantityBefore  int64      `json:"quantityBefore"`
	QuantityAfter   int64      `json:"quantityAfter"`
	ReservedBefore  int64      `json:"reservedBefore"`
	ReservedAfter   int64      `json:"reservedAfter"`
	AvailableBefore int64      `json:"availableBefore"`
	AvailableAfter  int64      `json:"availableAfter"`
	ReferenceType   string     `json:"referenceType,omitempty"`
	ReferenceID     *uuid.UUID `json:"referenceId,omitempty"`
	Reason          string     `json:"reason,omitempty"`
	Actor           string     `json:"actor"`
	OccurredAt      time.Time  `json:"occurredAt"`
}

type MovementSummary struct {
	VariantID uuid.UUID        `json:"variantId"`
	TotalIn   int64            `json:"totalIn"`
	TotalOut  int64            `json:"totalOut"`
	Net       int64            `json:"net"`
	ByType    map[string]int64 `json:"byType"`
	ByActor   map[string]int64 `json:"byActor"`
	Count     int64            `json:"count"`
}

type PriceSnapshotView struct {
	ID             uuid.UUID        `json:"id"`
	CheckoutLockID uuid.UUID        `json:"checkoutLockId"`
	CartLineID     *uuid.UUID       `json:"cartLineId,omitempty"`
	SubtotalCents  int64            `json:"subtotalCents"`
	DiscountCents  int64            `json:"discountCents"`
	TaxCents       int64            `json:"taxCents"`
	TotalCents     int64            `json:"totalCents"`
	Discounts      map[string]int64 `json:"discounts,omitempty"`
	Taxes          map[string]int64 `json:"taxes,omitempty"`
	Currency       string           `json:"currency"`
	ExchangeRate   float64          `json:"exchangeRate"`
	CouponCode     *string          `json:"couponCode,omitempty"`
	FrozenAt       time.Time        `json:"frozenAt"`
}

type OrderView struct {
	ID            uuid.UUID       `json:"id"`
	CartID        uuid.UUID       `json:"cartId"`
	UserID        uuid.UUID       `json:"userId"`
	Status        string          `json:"status"`
	SubtotalCents int64           `json:"subtotalCents"`
	DiscountCents int64           `json:"discountCents"`
	TaxCents      int64           `json:"taxCents"`
	TotalCents    int64           `json:"totalCents"`
	Currency      string          `json:"currency"`
	Lines         []OrderLineView `json:"lines"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type OrderLineView struct {
	ID             uuid.UUID `json:"id"`
	CartLineID     uuid.UUID `json:"cartLineId"`
	VariantID      uuid.UUID `json:"variantId"`
	Quantity       int64     `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	TotalCents     int64     `json:"totalCents"`
}

// LedgerFilter scopes a movement listing. Zero values mean "no filter".
type LedgerFilter struct {
	WarehouseID *uuid.UUID
	Type        *string
	From        *time.Time
	To          *time.Time
	Limit       int
	After       string // pagination cursor, newest-first
}
