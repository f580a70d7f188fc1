package repository

import (
	"context"
	"time"
)

// CacheRepository is a byte-level cache with TTL, used for computed area
// scores and statistics.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// DeletePrefix removes every key under the given prefix and returns
	// how many were dropped.
	DeletePrefix(ctx context.Context, prefix string) (int, error)
}
