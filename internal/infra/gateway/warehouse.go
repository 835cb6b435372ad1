package gateway

import (
	"context"
	"net/http"

	"checkout-core/internal/pkg/config"
	"checkout-core/internal/pkg/errs"
	"checkout-core/internal/usecase/commands"

	"github.com/google/uuid"
)

// WarehouseSelector asks the fulfillment service to rank warehouses for a
// claim. Ranking weighs proximity and stock depth; the checkout core only
// walks the returned order.
type WarehouseSelector struct {
	http httpClient
}

func NewWarehouseSelector(cfg config.GatewayConfig) *WarehouseSelector {
	return &WarehouseSelector{
		http: httpClient{
			base:   cfg.WarehouseBaseURL,
			client: &http.Client{Timeout: cfg.Timeout},
		},
	}
}

var _ commands.WarehouseSelector = (*WarehouseSelector)(nil)

type rankWarehousesRequest struct {
	VariantID uuid.UUID `json:"variantId"`
	Quantity  int64     `json:"quantity"`
}

type rankWarehousesResponse struct {
	WarehouseIDs []uuid.UUID `json:"warehouseIds"`
}

func (g *WarehouseSelector) RankWarehouses(ctx context.Context, variantID uuid.UUID, quantity int64) ([]uuid.UUID, error) {
	var resp rankWarehousesResponse
	err := g.http.postJSON(ctx, "/v1/warehouses/rank", rankWarehousesRequest{
		VariantID: variantID,
		Quantity:  quantity,
	}, &resp)
	if err != nil {
		return nil, errs.Wrap(err, "warehouse ranking failed")
	}
	return resp.WarehouseIDs, nil
}
