package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"centime/internal/interfaces/http/middleware"
	"centime/internal/interfaces/http/routes"
	"centime/internal/shared/logger"
)

// Router owns the gin engine and route registration.
type Router struct {
	engine    *gin.Engine
	container *Container
	log       logger.Interface
}

func NewRouter(container *Container, mode string, log logger.Interface) *Router {
	gin.SetMode(mode)
	engine := gin.New()

	return &Router{
		engine:    engine,
		container: container,
		log:       log,
	}
}

// Setup registers middleware and all routes.
func (r *Router) Setup() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.CORS([]string{"http://localhost:3000"}))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")
	api.Use(middleware.Identity(r.container.UserRepo, r.log.Named("middleware.identity")))

	permissionMiddleware := middleware.NewPermissionMiddleware(
		r.container.Enforcer,
		r.log.Named("middleware.permission"),
	)
	payRateLimit := middleware.PaymentRateLimit(
		r.container.RateLimiter,
		r.container.cfg.Billing.PayRateLimitPerMinute,
		r.log.Named("middleware.ratelimit"),
	)

	routes.SetupBillRoutes(api, &routes.BillRouteConfig{
		BillHandler:          r.container.BillHandler,
		PermissionMiddleware: permissionMiddleware,
		PayRateLimit:         payRateLimit,
	})
	routes.SetupSubscriptionRoutes(api, &routes.SubscriptionRouteConfig{
		SubscriptionHandler:  r.container.SubscriptionHandler,
		PermissionMiddleware: permissionMiddleware,
	})
	routes.SetupCustomerRoutes(api, &routes.CustomerRouteConfig{
		CustomerHandler:      r.container.CustomerHandler,
		PermissionMiddleware: permissionMiddleware,
	})
}

// Engine returns the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
