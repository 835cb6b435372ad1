package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateManualReservationRequest struct {
	VariantID   uuid.UUID `json:"variant_id" binding:"required"`
	WarehouseID uuid.UUID `json:"warehouse_id" binding:"required"`
	Quantity    int64     `json:"quantity" binding:"required,gt=0"`
	Reason      string    `json:"reason" binding:"required"`
}

func (r CreateManualReservationRequest) TrimmedReason() string {
	return strings.TrimSpace(r.Reason)
}

type ReleaseReservationRequest struct {
	Reason string `json:"reason,omitempty"`
}

type CompletePartialRequest struct {
	AdditionalQuantity int64 `json:"additional_quantity" binding:"required,gt=0"`
}

type AdjustStockRequest struct {
	VariantID   uuid.UUID `json:"variant_id" binding:"required"`
	WarehouseID uuid.UUID `json:"warehouse_id" binding:"required"`
	Type        string    `json:"type" binding:"required"`
	Quantity    int64     `json:"quantity,omitempty"`
	Target      *int64    `json:"target,omitempty"`
	Reason      string    `json:"reason,omitempty"`
}

type TransferStockRequest struct {
	VariantID     uuid.UUID `json:"variant_id" binding:"required"`
	FromWarehouse uuid.UUID `json:"from_warehouse_id" binding:"required"`
	ToWarehouse   uuid.UUID `json:"to_warehouse_id" binding:"required"`
	Quantity      int64     `json:"quantity" binding:"required,gt=0"`
	Reason        string    `json:"reason,omitempty"`
}

// LedgerListQuery binds the movement listing filters from the query string.
type LedgerListQuery struct {
	WarehouseID *uuid.UUID `form:"warehouse_id"`
	Type        *string    `form:"type"`
	From        *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To          *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit       int        `form:"limit"`
	After       string     `form:"after"`
}
