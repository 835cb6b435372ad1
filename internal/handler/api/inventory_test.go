//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"checkout-core/internal/handler/api"
	"checkout-core/internal/pkg/errs"
	"checkout-core/internal/usecase/commands"
	"checkout-core/internal/usecase/queries"
	commandsmock "checkout-core/tests/mock/commands"
	queriesmock "checkout-core/tests/mock/queries"

	httpt "checkout-core/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InventoryHandlerTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	stock  *commandsmock.MockStockCommands
	ledger *queriesmock.MockLedgerQueries
	router *gin.Engine
	userID uuid.UUID
}

func TestInventoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(InventoryHandlerTestSuite))
}

func (s *InventoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.stock = commandsmock.NewMockStockCommands(s.ctrl)
	s.ledger = queriesmock.NewMockLedgerQueries(s.ctrl)
	s.userID = uuid.New()

	handler := api.NewInventoryHandler(s.stock, s.ledger)
	s.router = gin.New()
	group := s.router.Group("/api/inventory", stubAuth(s.userID, "operator"))
	group.POST("/reservations", handler.CreateManualReservation)
	group.POST("/reservations/:id/release", handler.ReleaseReservation)
	group.POST("/reservations/:id/complete", handler.CompletePartial)
	group.POST("/adjustments", handler.Adjust)
	group.POST("/transfers", handler.Transfer)
	group.GET("/variants/:variantId/movements", handler.ListMovements)
	group.GET("/variants/:variantId/movements/summary", handler.MovementSummary)
}

func (s *InventoryHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InventoryHandlerTestSuite) reservationView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:           uuid.New(),
		VariantID:    uuid.New(),
		WarehouseID:  uuid.New(),
		RequestedQty: 5,
		ReservedQty:  5,
		Status:       "manual",
	}
}

func (s *InventoryHandlerTestSuite) TestCreateManualReservation() {
	variantID := uuid.New()
	warehouseID := uuid.New()

	testCases := []struct {
		name       string
		body       map[string]any
		setupMock  func()
		expectCode int
		expectBody string
	}{
		{
			name: "creates override reservation",
			body: map[string]any{
				"variant_id":   variantID,
				"warehouse_id": warehouseID,
				"quantity":     5,
				"reason":       "flash sale hold",
			},
			setupMock: func() {
				s.stock.EXPECT().
					CreateManual(gomock.Any(), commands.ManualReservationParams{
						VariantID:   variantID,
						WarehouseID: warehouseID,
						Quantity:    5,
						Reason:      "flash sale hold",
						Actor:       s.userID.String(),
					}).
					Return(s.reservationView(), nil)
			},
			expectCode: http.StatusCreated,
			expectBody: `"status":"manual"`,
		},
		{
			name: "whitespace reason rejected",
			body: map[string]any{
				"variant_id":   variantID,
				"warehouse_id": warehouseID,
				"quantity":     5,
				"reason":       "   ",
			},
			setupMock:  func() {},
			expectCode: http.StatusBadRequest,
			expectBody: "Override reason required",
		},
		{
			name: "missing reason rejected",
			body: map[string]any{
				"variant_id":   variantID,
				"warehouse_id": warehouseID,
				"quantity":     5,
			},
			setupMock:  func() {},
			expectCode: http.StatusBadRequest,
			expectBody: "Invalid request format",
		},
		{
			name: "unknown inventory level",
			body: map[string]any{
				"variant_id":   variantID,
				"warehouse_id": warehouseID,
				"quantity":     5,
				"reason":       "hold",
			},
			setupMock: func() {
				s.stock.EXPECT().CreateManual(gomock.Any(), gomock.Any()).
					Return(nil, commands.ErrInventoryNotFound)
			},
			expectCode: http.StatusNotFound,
			expectBody: "Inventory level not found",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock()
			w := httpt.PerformRequest(s.T(), s.router, http.MethodPost, "/api/inventory/reservations", tc.body, "")
			s.Equal(tc.expectCode, w.Code)
			s.Contains(w.Body.String(), tc.expectBody)
		})
	}
}

func (s *InventoryHandlerTestSuite) TestReleaseReservation() {
	reservationID := uuid.New()

	testCases := []struct {
		name       string
		setupMock  func()
		expectCode int
		expectBody string
	}{
		{
			name: "releases reservation",
			setupMock: func() {
				s.stock.EXPECT().
					Release(gomock.Any(), reservationID, "damaged shipment", s.userID.String()).
					Return(true, nil)
			},
			expectCode: http.StatusOK,
			expectBody: `"released":true`,
		},
		{
			name: "second release reports false",
			setupMock: func() {
				s.stock.EXPECT().Release(gomock.Any(), reservationID, gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			expectCode: http.StatusOK,
			expectBody: `"released":false`,
		},
		{
			name: "reservation not found",
			setupMock: func() {
				s.stock.EXPECT().Release(gomock.Any(), reservationID, gomock.Any(), gomock.Any()).
					Return(false, commands.ErrReservationNotFound)
			},
			expectCode: http.StatusNotFound,
			expectBody: "Reservation not found",
		},
		{
			name: "mutex contention",
			setupMock: func() {
				s.stock.EXPECT().Release(gomock.Any(), reservationID, gomock.Any(), gomock.Any()).
					Return(false, commands.ErrLockContention)
			},
			expectCode: http.StatusConflict,
			expectBody: "Stock is busy",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock()
			w := httpt.PerformRequest(s.T(), s.router, http.MethodPost,
				"/api/inventory/reservations/"+reservationID.String()+"/release",
				map[string]any{"reason": "damaged shipment"}, "")
			s.Equal(tc.expectCode, w.Code)
			s.Contains(w.Body.String(), tc.expectBody)
		})
	}
}

func (s *InventoryHandlerTestSuite) TestCompletePartial() {
	reservationID := uuid.New()

	s.Run("fills shortfall", func() {
		view := s.reservationView()
		s.stock.EXPECT().
			CompletePartial(gomock.Any(), reservationID, int64(3), s.userID.String()).
			Return(view, nil)

		w := httpt.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/inventory/reservations/"+reservationID.String()+"/complete",
			map[string]any{"additional_quantity": 3}, "")
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("already satisfied", func() {
		s.stock.EXPECT().
			CompletePartial(gomock.Any(), reservationID, int64(1), gomock.Any()).
			Return(nil, commands.ErrReservationImmutable)

		w := httpt.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/inventory/reservations/"+reservationID.String()+"/complete",
			map[string]any{"additional_quantity": 1}, "")
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("non-positive quantity rejected by binding", func() {
		w := httpt.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/inventory/reservations/"+reservationID.String()+"/complete",
			map[string]any{"additional_quantity": 0}, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *InventoryHandlerTestSuite) TestAdjust() {
	variantID := uuid.New()
	warehouseID := uuid.New()

	s.Run("applies adjustment", func() {
		s.stock.EXPECT().
			Adjust(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p commands.AdjustParams) error {
				s.Equal(variantID, p.VariantID)
				s.Equal(int64(-2), p.Quantity)
				return nil
			})

		w := httpt.PerformRequest(s.T(), s.router, http.MethodPost, "/api/inventory/adjustments",
			map[string]any{
				"variant_id":   variantID,
				"warehouse_id": warehouseID,
				"type":         "manual_adjustment",
				"quantity":     -2,
				"reason":       "shrinkage",
			}, "")
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("unknown movement type", func() {
		w := httpt.PerformRequest(s.T(), s.router, http.MethodPost, "/api/inventory/adjustments",
			map[string]any{
				"variant_id":   variantID,
				"warehouse_id": warehouseID,
				"type":         "teleport",
				"quantity":     1,
			}, "")
		s.Equal(http.StatusBadRequest, w.Code)
		s.Contains(w.Body.String(), "Unknown movement type")
	})

	s.Run("negative on-hand rejected", func() {
		s.stock.EXPECT().Adjust(gomock.Any(), gomock.Any()).
			Return(errs.Mark(errs.New("on-hand would go negative"), commands.ErrInvalidAdjustment))

		w := httpt.PerformRequest(s.T(), s.router, http.MethodPost, "/api/inventory/adjustments",
			map[string]any{
				"variant_id":   variantID,
				"warehouse_id": warehouseID,
				"type":         "manual_adjustment",
				"quantity":     -999,
			}, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *InventoryHandlerTestSuite) TestTransfer() {
	variantID := uuid.New()
	fromWH := uuid.New()
	toWH := uuid.New()

	s.Run("moves stock", func() {
		s.stock.EXPECT().Transfer(gomock.Any(), commands.TransferParams{
			VariantID:     variantID,
			FromWarehouse: fromWH,
			ToWarehouse:   toWH,
			Quantity:      4,
			Reason:        "rebalance",
			Actor:         s.userID.String(),
		}).Return(nil)

		w := httpt.PerformRequest(s.T(), s.router, http.MethodPost, "/api/inventory/transfers",
			map[string]any{
				"variant_id":        variantID,
				"from_warehouse_id": fromWH,
				"to_warehouse_id":   toWH,
				"quantity":          4,
				"reason":            "rebalance",
			}, "")
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("same warehouse rejected", func() {
		s.stock.EXPECT().Transfer(gomock.Any(), gomock.Any()).
			Return(commands.ErrSameWarehouseTransfer)

		w := httpt.PerformRequest(s.T(), s.router, http.MethodPost, "/api/inventory/transfers",
			map[string]any{
				"variant_id":        variantID,
				"from_warehouse_id": fromWH,
				"to_warehouse_id":   fromWH,
				"quantity":          1,
			}, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("not enough available", func() {
		s.stock.EXPECT().Transfer(gomock.Any(), gomock.Any()).
			Return(commands.ErrTransferUnavailable)

		w := httpt.PerformRequest(s.T(), s.router, http.MethodPost, "/api/inventory/transfers",
			map[string]any{
				"variant_id":        variantID,
				"from_warehouse_id": fromWH,
				"to_warehouse_id":   toWH,
				"quantity":          99,
			}, "")
		s.Equal(http.StatusConflict, w.Code)
	})
}

func (s *InventoryHandlerTestSuite) TestListMovements() {
	variantID := uuid.New()

	s.Run("lists with cursor", func() {
		s.ledger.EXPECT().
			MovementsByVariant(gomock.Any(), variantID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, f queries.LedgerFilter) ([]*queries.MovementView, string, error) {
				s.Equal(25, f.Limit)
				return []*queries.MovementView{
					{ID: uuid.New(), VariantID: variantID, Type: "reservation", Quantity: -2,
						Actor: "system", OccurredAt: time.Now()},
				}, "next-page", nil
			})

		w := httpt.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/inventory/variants/"+variantID.String()+"/movements?limit=25", nil, "")
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"nextCursor":"next-page"`)
	})

	s.Run("invalid variant id", func() {
		w := httpt.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/inventory/variants/not-a-uuid/movements", nil, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *InventoryHandlerTestSuite) TestMovementSummary() {
	variantID := uuid.New()
	s.ledger.EXPECT().Summary(gomock.Any(), variantID, gomock.Any()).
		Return(&queries.MovementSummary{
			VariantID: variantID,
			TotalIn:   10,
			TotalOut:  4,
			Net:       6,
			Count:     3,
		}, nil)

	w := httpt.PerformRequest(s.T(), s.router, http.MethodGet,
		"/api/inventory/variants/"+variantID.String()+"/movements/summary", nil, "")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"net":6`)
}
