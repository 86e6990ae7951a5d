package routes

import (
	"github.com/gin-gonic/gin"

	"centime/internal/interfaces/http/handlers"
	"centime/internal/interfaces/http/middleware"
)

// SubscriptionRouteConfig holds dependencies for subscription routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler  *handlers.SubscriptionHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupSubscriptionRoutes configures subscription routes. Ownership is
// checked inside the use cases, so both roles share the same paths.
func SetupSubscriptionRoutes(api *gin.RouterGroup, cfg *SubscriptionRouteConfig) {
	subscriptions := api.Group("/subscriptions")
	{
		subscriptions.POST("",
			cfg.PermissionMiddleware.RequirePermission("subscriptions", "write"),
			cfg.SubscriptionHandler.Create)
		subscriptions.GET("",
			cfg.PermissionMiddleware.RequirePermission("subscriptions", "read"),
			cfg.SubscriptionHandler.List)
		subscriptions.POST("/:id/toggle",
			cfg.PermissionMiddleware.RequirePermission("subscriptions", "write"),
			cfg.SubscriptionHandler.Toggle)
		subscriptions.PATCH("/:id",
			cfg.PermissionMiddleware.RequirePermission("subscriptions", "write"),
			cfg.SubscriptionHandler.Update)
	}
}
