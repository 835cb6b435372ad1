package gateway

import (
	"context"
	"net/http"

	"checkout-core/internal/domain/pricing"
	"checkout-core/internal/pkg/config"
	"checkout-core/internal/pkg/errs"
	"checkout-core/internal/usecase/commands"
	"checkout-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// PricingEngine calls the pricing service that owns discount and tax rules.
// The checkout core freezes whatever it returns; it never reimplements the
// rules locally.
type PricingEngine struct {
	http httpClient
}

func NewPricingEngine(cfg config.GatewayConfig) *PricingEngine {
	return &PricingEngine{
		http: httpClient{
			base:   cfg.PricingBaseURL,
			client: &http.Client{Timeout: cfg.Timeout},
		},
	}
}

var _ commands.PricingEngine = (*PricingEngine)(nil)

type computeTotalsRequest struct {
	CartID     uuid.UUID           `json:"cartId"`
	Currency   string              `json:"currency"`
	CouponCode *string             `json:"couponCode,omitempty"`
	Lines      []computeTotalsLine `json:"lines"`
}

type computeTotalsLine struct {
	LineID         uuid.UUID `json:"lineId"`
	VariantID      uuid.UUID `json:"variantId"`
	Quantity       int64     `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
}

type totalsPayload struct {
	SubtotalCents int64            `json:"subtotalCents"`
	DiscountCents int64            `json:"discountCents"`
	TaxCents      int64            `json:"taxCents"`
	TotalCents    int64            `json:"totalCents"`
	Discounts     map[string]int64 `json:"discounts,omitempty"`
	Taxes         map[string]int64 `json:"taxes,omitempty"`
	Currency      string           `json:"currency"`
	ExchangeRate  float64          `json:"exchangeRate"`
	CouponCode    *string          `json:"couponCode,omitempty"`
}

type computeTotalsResponse struct {
	Cart  totalsPayload               `json:"cart"`
	Lines map[uuid.UUID]totalsPayload `json:"lines"`
}

func (g *PricingEngine) ComputeTotals(ctx context.Context, cart *shared.CartSnapshot) (*commands.TotalsResult, error) {
	req := computeTotalsRequest{
		CartID:     cart.ID,
		Currency:   cart.Currency,
		CouponCode: cart.CouponCode,
	}
	for _, line := range cart.Lines {
		req.Lines = append(req.Lines, computeTotalsLine{
			LineID:         line.ID,
			VariantID:      line.VariantID,
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPriceCents,
		})
	}

	var resp computeTotalsResponse
	if err := g.http.postJSON(ctx, "/v1/totals", req, &resp); err != nil {
		return nil, errs.Wrap(err, "totals computation failed")
	}

	result := &commands.TotalsResult{
		Cart:  toTotals(resp.Cart),
		Lines: make(map[uuid.UUID]pricing.Totals, len(resp.Lines)),
	}
	for lineID, payload := range resp.Lines {
		result.Lines[lineID] = toTotals(payload)
	}
	return result, nil
}

func toTotals(p totalsPayload) pricing.Totals {
	return pricing.Totals{
		SubtotalCents: p.SubtotalCents,
		DiscountCents: p.DiscountCents,
		TaxCents:      p.TaxCents,
		TotalCents:    p.TotalCents,
		Discounts:     p.Discounts,
		Taxes:         p.Taxes,
		Currency:      p.Currency,
		ExchangeRate:  p.ExchangeRate,
		CouponCode:    p.CouponCode,
	}
}
