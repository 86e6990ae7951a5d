package routes

import (
	"github.com/gin-gonic/gin"

	"centime/internal/interfaces/http/handlers"
	"centime/internal/interfaces/http/middleware"
)

// CustomerRouteConfig holds dependencies for customer management routes.
type CustomerRouteConfig struct {
	CustomerHandler      *handlers.CustomerHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupCustomerRoutes configures customer account routes.
func SetupCustomerRoutes(api *gin.RouterGroup, cfg *CustomerRouteConfig) {
	customers := api.Group("/customers")
	{
		customers.POST("",
			cfg.PermissionMiddleware.RequirePermission("customers", "write"),
			cfg.CustomerHandler.Create)
		customers.GET("",
			cfg.PermissionMiddleware.RequirePermission("customers", "read"),
			cfg.CustomerHandler.List)

		// Customers may read and edit their own account; the use case
		// rejects cross-user access.
		customers.GET("/:id", cfg.CustomerHandler.Get)
		customers.PUT("/:id/profile", cfg.CustomerHandler.UpdateProfile)
	}
}
