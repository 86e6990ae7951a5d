package routes

import (
	"github.com/gin-gonic/gin"

	"centime/internal/interfaces/http/handlers"
	"centime/internal/interfaces/http/middleware"
	"centime/internal/shared/authorization"
)

// BillRouteConfig holds dependencies for billing routes.
type BillRouteConfig struct {
	BillHandler          *handlers.BillHandler
	PermissionMiddleware *middleware.PermissionMiddleware
	PayRateLimit         gin.HandlerFunc
}

// SetupBillRoutes configures bill and transaction routes. The api group
// already carries the Identity middleware.
func SetupBillRoutes(api *gin.RouterGroup, cfg *BillRouteConfig) {
	bills := api.Group("/bills")
	{
		// Collection operations
		bills.POST("",
			cfg.PermissionMiddleware.RequirePermission("bills", "write"),
			cfg.BillHandler.Create)
		bills.GET("",
			cfg.PermissionMiddleware.RequirePermission("bills", "read"),
			cfg.BillHandler.List)

		// Named endpoints before /:id
		bills.POST("/generate",
			middleware.RequireRole(authorization.RoleAdmin),
			cfg.BillHandler.Generate)

		bills.GET("/:id",
			cfg.PermissionMiddleware.RequirePermission("bills", "read"),
			cfg.BillHandler.Get)
		bills.POST("/:id/pay",
			cfg.PermissionMiddleware.RequirePermission("bills", "pay"),
			cfg.PayRateLimit,
			cfg.BillHandler.Pay)
	}

	api.GET("/transactions",
		cfg.PermissionMiddleware.RequirePermission("bills", "read"),
		cfg.BillHandler.ListTransactions)
}
