package api

import (
	"errors"
	"net/http"

	"checkout-core/internal/domain/inventory"
	"checkout-core/internal/handler/dto/request"
	resdto "checkout-core/internal/handler/dto/response"
	"checkout-core/internal/handler/middleware"
	"checkout-core/internal/infra"
	"checkout-core/internal/usecase/commands"
	"checkout-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	stock  commands.StockCommands
	ledger queries.LedgerQueries
}

func NewInventoryHandler(stock commands.StockCommands, ledger queries.LedgerQueries) *InventoryHandler {
	return &InventoryHandler{
		stock:  stock,
		ledger: ledger,
	}
}

func (h *InventoryHandler) CreateManualReservation(c *gin.Context) {
	var req request.CreateManualReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	if req.TrimmedReason() == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Override reason required",
		})
		return
	}

	view, err := h.stock.CreateManual(c.Request.Context(), commands.ManualReservationParams{
		VariantID:   req.VariantID,
		WarehouseID: req.WarehouseID,
		Quantity:    req.Quantity,
		Reason:      req.TrimmedReason(),
		Actor:       middleware.GetActor(c),
	})
	if err != nil {
		h.respondStockError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

func (h *InventoryHandler) ReleaseReservation(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	var req request.ReleaseReservationRequest
	_ = c.ShouldBindJSON(&req)
	reason := req.Reason
	if reason == "" {
		reason = "released by operator"
	}

	released, err := h.stock.Release(c.Request.Context(), reservationID, reason, middleware.GetActor(c))
	if err != nil {
		h.respondStockError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ReleaseResponse{Released: released})
}

func (h *InventoryHandler) CompletePartial(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	var req request.CompletePartialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.stock.CompletePartial(c.Request.Context(), reservationID, req.AdditionalQuantity, middleware.GetActor(c))
	if err != nil {
		h.respondStockError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func (h *InventoryHandler) Adjust(c *gin.Context) {
	var req request.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	typ := inventory.MovementType(req.Type)
	if !typ.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown movement type",
		})
		return
	}

	err := h.stock.Adjust(c.Request.Context(), commands.AdjustParams{
		VariantID:   req.VariantID,
		WarehouseID: req.WarehouseID,
		Type:        typ,
		Quantity:    req.Quantity,
		Target:      req.Target,
		Reason:      req.Reason,
		Actor:       middleware.GetActor(c),
	})
	if err != nil {
		h.respondStockError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) Transfer(c *gin.Context) {
	var req request.TransferStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.stock.Transfer(c.Request.Context(), commands.TransferParams{
		VariantID:     req.VariantID,
		FromWarehouse: req.FromWarehouse,
		ToWarehouse:   req.ToWarehouse,
		Quantity:      req.Quantity,
		Reason:        req.Reason,
		Actor:         middleware.GetActor(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSameWarehouseTransfer):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Transfer requires two distinct warehouses",
			})
		case errors.Is(err, commands.ErrTransferUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Not enough available stock to transfer",
			})
		default:
			h.respondStockError(c, err)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) ListMovements(c *gin.Context) {
	variantID, err := uuid.Parse(c.Param("variantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid variant ID format",
		})
		return
	}

	var q request.LedgerListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	views, nextCursor, err := h.ledger.MovementsByVariant(c.Request.Context(), variantID, queries.LedgerFilter{
		WarehouseID: q.WarehouseID,
		Type:        q.Type,
		From:        q.From,
		To:          q.To,
		Limit:       q.Limit,
		After:       q.After,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp := resdto.MovementListResponse{NextCursor: nextCursor}
	for _, v := range views {
		resp.Movements = append(resp.Movements, resdto.FromMovementView(v))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) MovementSummary(c *gin.Context) {
	variantID, err := uuid.Parse(c.Param("variantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid variant ID format",
		})
		return
	}

	var q request.LedgerListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	summary, err := h.ledger.Summary(c.Request.Context(), variantID, queries.LedgerFilter{
		WarehouseID: q.WarehouseID,
		From:        q.From,
		To:          q.To,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromMovementSummary(summary))
}

func (h *InventoryHandler) respondStockError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, commands.ErrInventoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Inventory level not found",
		})
	case errors.Is(err, commands.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Insufficient stock",
		})
	case errors.Is(err, commands.ErrLockContention):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Stock is busy, retry shortly",
		})
	case errors.Is(err, commands.ErrReservationImmutable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Reservation cannot be modified",
		})
	case errors.Is(err, commands.ErrInvalidAdjustment):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid stock adjustment",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func respondNotFoundOrInternal(c *gin.Context, err error, notFoundMsg string) {
	if infra.IsKind(err, infra.KindNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": notFoundMsg,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
