package ratelimit

import (
	"context"
	"time"
)

// RateLimiter bounds request rates per caller key.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	GetRemaining(ctx context.Context, key string, limit int, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}
