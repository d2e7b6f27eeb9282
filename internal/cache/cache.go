// Package cache is the best-effort response cache in front of read endpoints.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque values with a TTL. A miss is (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Incr atomically increments an integer counter and returns the new value.
	Incr(ctx context.Context, key string) (int64, error)
}
