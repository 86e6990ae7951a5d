package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"centime/internal/infrastructure/ratelimit"
	"centime/internal/shared/logger"
	"centime/internal/shared/utils"
)

// PaymentRateLimit caps payment attempts per actor using the sliding
// window limiter. Limiter outages fail open so a Redis blip never
// blocks all payments.
func PaymentRateLimit(limiter ratelimit.RateLimiter, perMinute int, log logger.Interface) gin.HandlerFunc {
	config := ratelimit.RateLimitConfig{
		RequestsPerMinute: perMinute,
	}

	return func(c *gin.Context) {
		actorID, _, ok := ActorFromContext(c)
		if !ok {
			c.Next()
			return
		}

		key := fmt.Sprintf("pay:%d", actorID)
		allowed, err := limiter.Allow(key, config)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many payment attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
