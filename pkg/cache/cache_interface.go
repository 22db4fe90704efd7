package cache

import (
	"context"
	"time"
)

// Counter is the slice of a key-value store the inbound throttle needs.
// Implementations must make Increment atomic across processes.
type Counter interface {
	// Increment adds one to key, creating it at 1 when missing
	Increment(ctx context.Context, key string) (int64, error)

	// Expire sets a TTL on key
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

// Cache is a Counter that can also be probed and released.
type Cache interface {
	Counter

	// Ping verifies the connection
	Ping(ctx context.Context) error

	Close() error
}
