package api

import (
	"errors"
	"net/http"

	reqdto "checkout-core/internal/handler/dto/request"
	resdto "checkout-core/internal/handler/dto/response"
	"checkout-core/internal/handler/middleware"
	"checkout-core/internal/usecase/commands"
	"checkout-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	checkout commands.CheckoutCommands
	queries  queries.CheckoutQueries
}

func NewCheckoutHandler(checkout commands.CheckoutCommands, q queries.CheckoutQueries) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		queries:  q,
	}
}

func (h *CheckoutHandler) Start(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.StartCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	lock, err := h.checkout.Start(c.Request.Context(), commands.StartCheckoutParams{
		CartID: req.CartID,
		UserID: userID,
		TTL:    req.TTL(),
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCartNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Cart not found",
			})
		case errors.Is(err, commands.ErrCartNotOrderable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Cart cannot be checked out",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCheckoutLockView(lock))
}

func (h *CheckoutHandler) Execute(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	lockID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid checkout lock ID format",
		})
		return
	}

	var req reqdto.ExecuteCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.checkout.Execute(c.Request.Context(), commands.ExecuteCheckoutParams{
		LockID: lockID,
		UserID: userID,
		Payment: commands.PaymentInput{
			Method: req.PaymentMethod,
			Token:  req.PaymentToken,
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrLockNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Checkout not found",
			})
		case errors.Is(err, commands.ErrLockNotOwned):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Checkout belongs to another user",
			})
		case errors.Is(err, commands.ErrCheckoutNotActive):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Checkout is no longer active",
			})
		case errors.Is(err, commands.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Insufficient stock",
			})
		case errors.Is(err, commands.ErrPaymentDeclined):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Payment was declined",
			})
		case errors.Is(err, commands.ErrCartNotOrderable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Cart cannot be checked out",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CheckoutResultResponse{
		Lock:  resdto.FromCheckoutLockView(result.Lock),
		Order: resdto.FromOrderView(result.Order),
	})
}

func (h *CheckoutHandler) GetLock(c *gin.Context) {
	lockID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid checkout lock ID format",
		})
		return
	}

	lock, err := h.queries.LockByID(c.Request.Context(), lockID)
	if err != nil {
		respondNotFoundOrInternal(c, err, "Checkout not found")
		return
	}

	userID, _ := middleware.GetUserID(c)
	if lock.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Checkout not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutLockView(lock))
}

func (h *CheckoutHandler) GetReservations(c *gin.Context) {
	lockID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid checkout lock ID format",
		})
		return
	}

	views, err := h.queries.ReservationsByLock(c.Request.Context(), lockID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ReservationResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromReservationView(v)
	}
	c.JSON(http.StatusOK, response)
}

func (h *CheckoutHandler) GetSnapshots(c *gin.Context) {
	lockID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid checkout lock ID format",
		})
		return
	}

	views, err := h.queries.SnapshotsByLock(c.Request.Context(), lockID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.PriceSnapshotResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromPriceSnapshotView(v)
	}
	c.JSON(http.StatusOK, response)
}
