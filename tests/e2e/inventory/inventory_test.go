//go:build e2e

package inventory

import (
	"context"
	"net/http"
	"testing"

	"checkout-core/tests/common/authtest"
	"checkout-core/tests/common/dbtest"
	httpt "checkout-core/tests/common/httptest"
	"checkout-core/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type InventoryE2ETestSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestInventoryE2E(t *testing.T) {
	suite.Run(t, new(InventoryE2ETestSuite))
}

func (s *InventoryE2ETestSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *InventoryE2ETestSuite) operatorToken() string {
	return s.jwt.GenerateToken(s.T(), uuid.New(), "operator")
}

func (s *InventoryE2ETestSuite) inventoryState(variantID, warehouseID uuid.UUID) (quantity, reserved, damaged int64) {
	err := s.DB.QueryRow(context.Background(),
		"SELECT quantity, reserved, damaged FROM inventory_levels WHERE variant_id = $1 AND warehouse_id = $2",
		variantID, warehouseID).Scan(&quantity, &reserved, &damaged)
	s.Require().NoError(err)
	return quantity, reserved, damaged
}

func (s *InventoryE2ETestSuite) TestInventory() {
	s.Run("manual reservation may drive available negative", func() {
		variantID := uuid.New()
		warehouseID := uuid.New()
		dbtest.SeedInventoryLevel(s.T(), s.DB, variantID, warehouseID, 2, 0)

		w := httpt.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/inventory/reservations",
			map[string]any{
				"variant_id":   variantID,
				"warehouse_id": warehouseID,
				"quantity":     5,
				"reason":       "flash sale hold",
			}, s.operatorToken())
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

		var resp struct {
			ID          uuid.UUID `json:"id"`
			ReservedQty int64     `json:"reservedQuantity"`
			Status      string    `json:"status"`
		}
		httpt.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Equal(int64(5), resp.ReservedQty)
		s.Equal("manual", resp.Status)

		quantity, reserved, _ := s.inventoryState(variantID, warehouseID)
		s.Equal(int64(2), quantity)
		s.Equal(int64(5), reserved)
	})

	s.Run("release is idempotent", func() {
		variantID := uuid.New()
		warehouseID := uuid.New()
		dbtest.SeedInventoryLevel(s.T(), s.DB, variantID, warehouseID, 10, 0)
		token := s.operatorToken()

		w := httpt.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/inventory/reservations",
			map[string]any{
				"variant_id":   variantID,
				"warehouse_id": warehouseID,
				"quantity":     4,
				"reason":       "hold",
			}, token)
		s.Require().Equal(http.StatusCreated, w.Code)
		var created struct {
			ID uuid.UUID `json:"id"`
		}
		httpt.DecodeResponseBody(s.T(), w.Body, &created)

		release := func() bool {
			w := httpt.PerformRequest(s.T(), s.Router, http.MethodPost,
				"/api/inventory/reservations/"+created.ID.String()+"/release",
				map[string]any{"reason": "done"}, token)
			s.Require().Equal(http.StatusOK, w.Code)
			var resp struct {
				Released bool `json:"released"`
			}
			httpt.DecodeResponseBody(s.T(), w.Body, &resp)
			return resp.Released
		}

		s.True(release())
		s.False(release())

		_, reserved, _ := s.inventoryState(variantID, warehouseID)
		s.Zero(reserved)
		s.Equal(1, dbtest.CountMovements(s.T(), s.DB, variantID, "release"))
	})

	s.Run("adjustments move on-hand and write the ledger", func() {
		variantID := uuid.New()
		warehouseID := uuid.New()
		dbtest.SeedInventoryLevel(s.T(), s.DB, variantID, warehouseID, 10, 0)
		token := s.operatorToken()

		w := httpt.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/inventory/adjustments",
			map[string]any{
				"variant_id":   variantID,
				"warehouse_id": warehouseID,
				"type":         "import",
				"quantity":     5,
				"reason":       "restock",
			}, token)
		s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())

		w = httpt.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/inventory/adjustments",
			map[string]any{
				"variant_id":   variantID,
				"warehouse_id": warehouseID,
				"type":         "damage",
				"quantity":     -2,
				"reason":       "dropped pallet",
			}, token)
		s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())

		quantity, _, damaged := s.inventoryState(variantID, warehouseID)
		s.Equal(int64(15), quantity)
		s.Equal(int64(2), damaged)

		s.Equal(1, dbtest.CountMovements(s.T(), s.DB, variantID, "import"))
		s.Equal(1, dbtest.CountMovements(s.T(), s.DB, variantID, "damage"))
	})

	s.Run("correction targets an absolute quantity", func() {
		variantID := uuid.New()
		warehouseID := uuid.New()
		dbtest.SeedInventoryLevel(s.T(), s.DB, variantID, warehouseID, 10, 0)

		w := httpt.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/inventory/adjustments",
			map[string]any{
				"variant_id":   variantID,
				"warehouse_id": warehouseID,
				"type":         "correction",
				"target":       7,
				"reason":       "cycle count",
			}, s.operatorToken())
		s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())

		quantity, _, _ := s.inventoryState(variantID, warehouseID)
		s.Equal(int64(7), quantity)
	})

	s.Run("transfer moves stock and ledgers both sides", func() {
		variantID := uuid.New()
		fromWH := uuid.New()
		toWH := uuid.New()
		dbtest.SeedInventoryLevel(s.T(), s.DB, variantID, fromWH, 10, 0)
		dbtest.SeedInventoryLevel(s.T(), s.DB, variantID, toWH, 1, 0)

		w := httpt.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/inventory/transfers",
			map[string]any{
				"variant_id":        variantID,
				"from_warehouse_id": fromWH,
				"to_warehouse_id":   toWH,
				"quantity":          4,
				"reason":            "rebalance",
			}, s.operatorToken())
		s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())

		fromQty, _, _ := s.inventoryState(variantID, fromWH)
		toQty, _, _ := s.inventoryState(variantID, toWH)
		s.Equal(int64(6), fromQty)
		s.Equal(int64(5), toQty)

		s.Equal(2, dbtest.CountMovements(s.T(), s.DB, variantID, "transfer"))
	})

	s.Run("transfer rejects overdraw of available stock", func() {
		variantID := uuid.New()
		fromWH := uuid.New()
		toWH := uuid.New()
		// 5 on hand but 4 already reserved
		dbtest.SeedInventoryLevel(s.T(), s.DB, variantID, fromWH, 5, 4)
		dbtest.SeedInventoryLevel(s.T(), s.DB, variantID, toWH, 0, 0)

		w := httpt.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/inventory/transfers",
			map[string]any{
				"variant_id":        variantID,
				"from_warehouse_id": fromWH,
				"to_warehouse_id":   toWH,
				"quantity":          3,
			}, s.operatorToken())
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("movement listing paginates newest first", func() {
		variantID := uuid.New()
		warehouseID := uuid.New()
		dbtest.SeedInventoryLevel(s.T(), s.DB, variantID, warehouseID, 100, 0)
		token := s.operatorToken()

		for i := 0; i < 3; i++ {
			w := httpt.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/inventory/adjustments",
				map[string]any{
					"variant_id":   variantID,
					"warehouse_id": warehouseID,
					"type":         "import",
					"quantity":     1,
					"reason":       "restock",
				}, token)
			s.Require().Equal(http.StatusNoContent, w.Code)
		}

		type listResponse struct {
			Movements []struct {
				Type     string `json:"type"`
				Quantity int64  `json:"quantity"`
			} `json:"movements"`
			NextCursor string `json:"nextCursor"`
		}

		w := httpt.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/inventory/variants/"+variantID.String()+"/movements?limit=2", nil, token)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
		var first listResponse
		httpt.DecodeResponseBody(s.T(), w.Body, &first)
		s.Len(first.Movements, 2)
		s.Require().NotEmpty(first.NextCursor)

		w = httpt.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/inventory/variants/"+variantID.String()+"/movements?limit=2&after="+first.NextCursor, nil, token)
		s.Require().Equal(http.StatusOK, w.Code)
		var second listResponse
		httpt.DecodeResponseBody(s.T(), w.Body, &second)
		s.Len(second.Movements, 1)
		s.Empty(second.NextCursor)
	})

	s.Run("summary aggregates the ledger", func() {
		variantID := uuid.New()
		warehouseID := uuid.New()
		dbtest.SeedInventoryLevel(s.T(), s.DB, variantID, warehouseID, 10, 0)
		token := s.operatorToken()

		w := httpt.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/inventory/adjustments",
			map[string]any{
				"variant_id":   variantID,
				"warehouse_id": warehouseID,
				"type":         "import",
				"quantity":     5,
			}, token)
		s.Require().Equal(http.StatusNoContent, w.Code)

		w = httpt.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/inventory/adjustments",
			map[string]any{
				"variant_id":   variantID,
				"warehouse_id": warehouseID,
				"type":         "manual_adjustment",
				"quantity":     -3,
				"reason":       "shrinkage",
			}, token)
		s.Require().Equal(http.StatusNoContent, w.Code)

		w = httpt.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/inventory/variants/"+variantID.String()+"/movements/summary", nil, token)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		var summary struct {
			TotalIn  int64 `json:"totalIn"`
			TotalOut int64 `json:"totalOut"`
			Net      int64 `json:"net"`
			Count    int64 `json:"count"`
		}
		httpt.DecodeResponseBody(s.T(), w.Body, &summary)
		s.Equal(int64(5), summary.TotalIn)
		s.Equal(int64(3), summary.TotalOut)
		s.Equal(int64(2), summary.Net)
		s.Equal(int64(2), summary.Count)
	})

	s.Run("customers cannot mutate inventory", func() {
		customer := s.jwt.GenerateToken(s.T(), uuid.New(), "customer")
		w := httpt.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/inventory/reservations",
			map[string]any{
				"variant_id":   uuid.New(),
				"warehouse_id": uuid.New(),
				"quantity":     1,
				"reason":       "hold",
			}, customer)
		s.Equal(http.StatusForbidden, w.Code)
	})
}
