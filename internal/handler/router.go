package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"checkout-core/internal/handler/api"
	"checkout-core/internal/handler/middleware"
	"checkout-core/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, checkoutHandler *api.CheckoutHandler, inventoryHandler *api.InventoryHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, checkoutHandler, inventoryHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, checkoutHandler *api.CheckoutHandler, inventoryHandler *api.InventoryHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		checkout := apiGroup.Group("/checkout")
		checkout.Use(authMiddleware.RequireAuth())
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "", Handler: checkoutHandler.Start},
				{Method: http.MethodPost, Path: "/:id/execute", Handler: checkoutHandler.Execute},
				{Method: http.MethodGet, Path: "/:id", Handler: checkoutHandler.GetLock},
				{Method: http.MethodGet, Path: "/:id/reservations", Handler: checkoutHandler.GetReservations},
				{Method: http.MethodGet, Path: "/:id/snapshots", Handler: checkoutHandler.GetSnapshots},
			})
		}

		inventory := apiGroup.Group("/inventory")
		inventory.Use(authMiddleware.RequireAuth())
		{
			operator := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(middleware.RoleOperator)}
			addRoutes(inventory, []route{
				{Method: http.MethodPost, Path: "/reservations", Handler: inventoryHandler.CreateManualReservation, Mw: operator},
				{Method: http.MethodPost, Path: "/reservations/:id/release", Handler: inventoryHandler.ReleaseReservation, Mw: operator},
				{Method: http.MethodPost, Path: "/reservations/:id/complete", Handler: inventoryHandler.CompletePartial, Mw: operator},
				{Method: http.MethodPost, Path: "/adjustments", Handler: inventoryHandler.Adjust, Mw: operator},
				{Method: http.MethodPost, Path: "/transfers", Handler: inventoryHandler.Transfer, Mw: operator},
				{Method: http.MethodGet, Path: "/variants/:variantId/movements", Handler: inventoryHandler.ListMovements},
				{Method: http.MethodGet, Path: "/variants/:variantId/movements/summary", Handler: inventoryHandler.MovementSummary},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
