package response

import (
	"time"

	"checkout-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type CheckoutLockResponse struct {
	ID        uuid.UUID         `json:"id"`
	CartID    uuid.UUID         `json:"cartId"`
	State     string            `json:"state"`
	Phase     string            `json:"phase,omitempty"`
	LockedAt  time.Time         `json:"lockedAt"`
	ExpiresAt time.Time         `json:"expiresAt"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

func FromCheckoutLockView(v *queries.CheckoutLockView) *CheckoutLockResponse {
	return &CheckoutLockResponse{
		ID:        v.ID,
		CartID:    v.CartID,
		State:     v.State,
		Phase:     v.Phase,
		LockedAt:  v.LockedAt,
		ExpiresAt: v.ExpiresAt,
		Metadata:  v.Metadata,
	}
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	CartID        uuid.UUID           `json:"cartId"`
	Status        string              `json:"status"`
	SubtotalCents int64               `json:"subtotalCents"`
	DiscountCents int64               `json:"discountCents"`
	TaxCents      int64               `json:"taxCents"`
	TotalCents    int64               `json:"totalCents"`
	Currency      string              `json:"currency"`
	Lines         []OrderLineResponse `json:"lines"`
	CreatedAt     time.Time           `json:"createdAt"`
}

type OrderLineResponse struct {
	ID             uuid.UUID `json:"id"`
	VariantID      uuid.UUID `json:"variantId"`
	Quantity       int64     `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	TotalCents     int64     `json:"totalCents"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	resp := &OrderResponse{
		ID:            v.ID,
		CartID:        v.CartID,
		Status:        v.Status,
		SubtotalCents: v.SubtotalCents,
		DiscountCents: v.DiscountCents,
		TaxCents:      v.TaxCents,
		TotalCents:    v.TotalCents,
		Currency:      v.Currency,
		CreatedAt:     v.CreatedAt,
	}
	for _, line := range v.Lines {
		resp.Lines = append(resp.Lines, OrderLineResponse{
			ID:             line.ID,
			VariantID:      line.VariantID,
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPriceCents,
			TotalCents:     line.TotalCents,
		})
	}
	return resp
}

type CheckoutResultResponse struct {
	Lock  *CheckoutLockResponse `json:"lock"`
	Order *OrderResponse        `json:"order"`
}

type PriceSnapshotResponse struct {
	ID            uuid.UUID        `json:"id"`
	CartLineID    *uuid.UUID       `json:"cartLineId,omitempty"`
	SubtotalCents int64            `json:"subtotalCents"`
	DiscountCents int64            `json:"discountCents"`
	TaxCents      int64            `json:"taxCents"`
	TotalCents    int64            `json:"totalCents"`
	Discounts     map[string]int64 `json:"discounts,omitempty"`
	Taxes         map[string]int64 `json:"taxes,omitempty"`
	Currency      string           `json:"currency"`
	ExchangeRate  float64          `json:"exchangeRate"`
	CouponCode    *string          `json:"couponCode,omitempty"`
	FrozenAt      time.Time        `json:"frozenAt"`
}

func FromPriceSnapshotView(v *queries.PriceSnapshotView) *PriceSnapshotResponse {
	return &PriceSnapshotResponse{
		ID:            v.ID,
		CartLineID:    v.CartLineID,
		SubtotalCents: v.SubtotalCents,
		DiscountCents: v.DiscountCents,
		TaxCents:      v.TaxCents,
		TotalCents:    v.TotalCents,
		Discounts:     v.Discounts,
		Taxes:         v.Taxes,
		Currency:      v.Currency,
		ExchangeRate:  v.ExchangeRate,
		CouponCode:    v.CouponCode,
		FrozenAt:      v.FrozenAt,
	}
}
