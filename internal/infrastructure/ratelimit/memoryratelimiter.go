package ratelimit

import (
	"sync"
	"time"
)

// MemoryRateLimiter is a sliding window limiter for single-instance
// deployments and tests. Timestamps are pruned lazily on access.
type MemoryRateLimiter struct {
	mu      sync.Mutex
	entries map[string][]time.Time
}

func NewMemoryRateLimiter() RateLimiter {
	return &MemoryRateLimiter{
		entries: make(map[string][]time.Time),
	}
}

func (l *MemoryRateLimiter) Allow(key string, config RateLimitConfig) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	windows := []struct {
		duration time.Duration
		limit    int
	}{
		{time.Minute, config.RequestsPerMinute},
		{time.Hour, config.RequestsPerHour},
		{24 * time.Hour, config.RequestsPerDay},
	}

	longest := time.Duration(0)
	for _, window := range windows {
		if window.limit <= 0 {
			continue
		}
		if window.duration > longest {
			longest = window.duration
		}
		if l.countSince(key, now.Add(-window.duration)) >= window.limit {
			return false, nil
		}
	}

	l.entries[key] = append(l.prune(key, now.Add(-longest)), now)
	return true, nil
}

func (l *MemoryRateLimiter) GetRemaining(key string, window time.Duration) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return int64(l.countSince(key, time.Now().Add(-window))), nil
}

func (l *MemoryRateLimiter) Reset(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.entries, key)
	return nil
}

func (l *MemoryRateLimiter) countSince(key string, cutoff time.Time) int {
	count := 0
	for _, ts := range l.entries[key] {
		if ts.After(cutoff) {
			count++
		}
	}
	return count
}

func (l *MemoryRateLimiter) prune(key string, cutoff time.Time) []time.Time {
	kept := l.entries[key][:0]
	for _, ts := range l.entries[key] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	return kept
}
