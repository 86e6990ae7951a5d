package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"centime/internal/domain/user"
	"centime/internal/shared/authorization"
	"centime/internal/shared/constants"
	"centime/internal/shared/logger"
	"centime/internal/shared/utils"
)

// Identity resolves the acting user from the X-Actor-ID header and puts
// the id and role into the request context. This is a trusted-header
// scheme for deployments behind an authenticating proxy; there is no
// session handling here.
func Identity(userRepo user.Repository, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(constants.HeaderActorID)
		if raw == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing actor identity")
			c.Abort()
			return
		}

		actorID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || actorID == 0 {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid actor identity")
			c.Abort()
			return
		}

		actor, err := userRepo.GetByID(c.Request.Context(), uint(actorID))
		if err != nil {
			log.Errorw("failed to resolve actor", "actor_id", actorID, "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
			c.Abort()
			return
		}
		if actor == nil || !actor.IsActive() {
			utils.ErrorResponse(c, http.StatusUnauthorized, "unknown or inactive actor")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, actor.ID())
		c.Set(constants.ContextKeyUserRole, actor.Role())

		c.Next()
	}
}

// ActorFromContext returns the id and role stored by Identity.
func ActorFromContext(c *gin.Context) (uint, authorization.Role, bool) {
	rawID, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return 0, "", false
	}
	rawRole, ok := c.Get(constants.ContextKeyUserRole)
	if !ok {
		return 0, "", false
	}

	id, ok := rawID.(uint)
	if !ok {
		return 0, "", false
	}
	role, ok := rawRole.(authorization.Role)
	if !ok {
		return 0, "", false
	}

	return id, role, true
}

// RequireRole aborts with 403 unless the actor carries one of the given
// roles.
func RequireRole(roles ...authorization.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := ActorFromContext(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing actor identity")
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, constants.ErrMsgForbidden)
		c.Abort()
	}
}
