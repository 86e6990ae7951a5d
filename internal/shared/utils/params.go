package utils

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"centime/internal/shared/biztime"
	"centime/internal/shared/errors"
)

// ParseUintParam parses a numeric ID from a URL path parameter.
// entityName is used in error messages (e.g., "bill", "subscription").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(id), nil
}

// ParseUintQuery parses an optional numeric query parameter.
// Returns nil when the parameter is absent.
func ParseUintQuery(c *gin.Context, key string) (*uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return nil, errors.NewValidationError("invalid " + key)
	}

	value := uint(id)
	return &value, nil
}

// ParseDateQuery parses an optional YYYY-MM-DD query parameter.
// Returns nil when the parameter is absent.
func ParseDateQuery(c *gin.Context, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}

	t, err := biztime.ParseDate(raw)
	if err != nil {
		return nil, errors.NewValidationError("invalid "+key+" date, expected YYYY-MM-DD", err.Error())
	}

	return &t, nil
}
