package ratelimit

import "time"

// RateLimitConfig sets per-window request budgets. A zero window is
// not enforced; payment throttling only sets the per-minute budget.
type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

// RateLimiter throttles requests per key. Backed by Redis when
// available, by an in-process counter otherwise.
type RateLimiter interface {
	Allow(key string, config RateLimitConfig) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}
