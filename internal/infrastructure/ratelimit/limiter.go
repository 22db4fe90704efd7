package ratelimit

import "context"

// Limiter decides whether a caller identified by key may send another request.
// When err is non-nil the returned bool is the fail-open decision.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
