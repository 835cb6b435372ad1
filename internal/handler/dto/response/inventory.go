package response

import (
	"time"

	"checkout-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
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

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:             v.ID,
		VariantID:      v.VariantID,
		WarehouseID:    v.WarehouseID,
		RequestedQty:   v.RequestedQty,
		ReservedQty:    v.ReservedQty,
		Status:         v.Status,
		ReferenceType:  v.ReferenceType,
		ReferenceID:    v.ReferenceID,
		ExpiresAt:      v.ExpiresAt,
		Released:       v.Released,
		OverrideReason: v.OverrideReason,
		CreatedAt:      v.CreatedAt,
	}
}

type MovementResponse struct {
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

func FromMovementView(v *queries.MovementView) *MovementResponse {
	return &MovementResponse{
		ID:              v.ID,
		VariantID:       v.VariantID,
		WarehouseID:     v.WarehouseID,
		Type:            v.Type,
		Quantity:        v.Quantity,
		QuantityBefore:  v.QuantityBefore,
		QuantityAfter:   v.QuantityAfter,
		ReservedBefore:  v.ReservedBefore,
		ReservedAfter:   v.ReservedAfter,
		AvailableBefore: v.AvailableBefore,
		AvailableAfter:  v.AvailableAfter,
		ReferenceType:   v.ReferenceType,
		ReferenceID:     v.ReferenceID,
		Reason:          v.Reason,
		Actor:           v.Actor,
		OccurredAt:      v.OccurredAt,
	}
}

type MovementListResponse struct {
	Movements  []*MovementResponse `json:"movements"`
	NextCursor string              `json:"nextCursor,omitempty"`
}

type MovementSummaryResponse struct {
	VariantID uuid.UUID        `json:"variantId"`
	TotalIn   int64            `json:"totalIn"`
	TotalOut  int64            `json:"totalOut"`
	Net       int64            `json:"net"`
	ByType    map[string]int64 `json:"byType"`
	ByActor   map[string]int64 `json:"byActor"`
	Count     int64            `json:"count"`
}

func FromMovementSummary(v *queries.MovementSummary) *MovementSummaryResponse {
	return &MovementSummaryResponse{
		VariantID: v.VariantID,
		TotalIn:   v.TotalIn,
		TotalOut:  v.TotalOut,
		Net:       v.Net,
		ByType:    v.ByType,
		ByActor:   v.ByActor,
		Count:     v.Count,
	}
}

type ReleaseResponse struct {
	Released bool `json:"released"`
}

type SweepResponse struct {
	Released int `json:"released"`
}
