package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "centime:throttle"

// RedisRateLimiter shares sliding windows across instances, one sorted
// set per key and window span. Members are attempt timestamps in
// nanoseconds; every check prunes expired members before counting, so
// the payment throttle sees the true attempt rate with no fixed-window
// burst at the boundary.
type RedisRateLimiter struct {
	client *redis.Client
}

func NewRedisRateLimiter(client *redis.Client) RateLimiter {
	return &RedisRateLimiter{client: client}
}

func (l *RedisRateLimiter) Allow(key string, config RateLimitConfig) (bool, error) {
	now := time.Now()

	budgets := []struct {
		span time.Duration
		max  int
	}{
		{time.Minute, config.RequestsPerMinute},
		{time.Hour, config.RequestsPerHour},
		{24 * time.Hour, config.RequestsPerDay},
	}

	for _, budget := range budgets {
		if budget.max <= 0 {
			continue
		}

		used, err := l.record(key, budget.span, now)
		if err != nil {
			return false, err
		}
		if used >= int64(budget.max) {
			return false, nil
		}
	}

	return true, nil
}

// record prunes expired members, counts the survivors, and registers
// the current attempt in one pipeline round trip. The returned count
// excludes the attempt being registered; denied attempts still count
// against later checks, so hammering a closed window keeps it closed.
func (l *RedisRateLimiter) record(key string, span time.Duration, now time.Time) (int64, error) {
	ctx := context.Background()
	setKey := l.windowKey(key, span)
	cutoff := strconv.FormatInt(now.Add(-span).UnixNano(), 10)
	stamp := now.UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, setKey, "0", cutoff)
	used := pipe.ZCard(ctx, setKey)
	pipe.ZAdd(ctx, setKey, redis.Z{Score: float64(stamp), Member: stamp})
	pipe.Expire(ctx, setKey, span+time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("rate limit pipeline for %s: %w", setKey, err)
	}

	return used.Val(), nil
}

// GetRemaining reports the attempts currently inside the window.
func (l *RedisRateLimiter) GetRemaining(key string, window time.Duration) (int64, error) {
	ctx := context.Background()
	setKey := l.windowKey(key, window)
	cutoff := strconv.FormatInt(time.Now().Add(-window).UnixNano(), 10)

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, setKey, "0", cutoff)
	used := pipe.ZCard(ctx, setKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("rate limit count for %s: %w", setKey, err)
	}

	return used.Val(), nil
}

// Reset drops every window tracked for the key.
func (l *RedisRateLimiter) Reset(key string) error {
	ctx := context.Background()

	var stale []string
	iter := l.client.Scan(ctx, 0, fmt.Sprintf("%s:%s:*", redisKeyPrefix, key), 0).Iterator()
	for iter.Next(ctx) {
		stale = append(stale, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("rate limit scan for %s: %w", key, err)
	}
	if len(stale) == 0 {
		return nil
	}

	if err := l.client.Del(ctx, stale...).Err(); err != nil {
		return fmt.Errorf("rate limit reset for %s: %w", key, err)
	}

	return nil
}

func (l *RedisRateLimiter) windowKey(key string, span time.Duration) string {
	return fmt.Sprintf("%s:%s:%s", redisKeyPrefix, key, span)
}
