package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"centime/internal/shared/authorization"
	"centime/internal/shared/constants"
	"centime/internal/shared/logger"
	"centime/internal/shared/utils"
)

type PermissionMiddleware struct {
	enforcer authorization.Enforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer authorization.Enforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// RequirePermission checks the actor's role against the policy store
// for a resource-action pair. Identity must run first.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, role, ok := ActorFromContext(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing actor identity")
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(role.String(), resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "actor_id", actorID, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "actor_id", actorID, "role", role.String(), "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, constants.ErrMsgForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}
