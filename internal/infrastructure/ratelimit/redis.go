package ratelimit

import (
	"context"
	"fmt"
	"time"

	"employee-facade/pkg/cache"
)

var _ Limiter = (*RedisLimiter)(nil)

// RedisLimiter counts requests per key in fixed windows shared by every replica.
// Keys look like ratelimit:{key}:{window start unix}.
type RedisLimiter struct {
	counter cache.Counter
	limit   int64
	window  time.Duration
	now     func() time.Time
}

func NewRedisLimiter(counter cache.Counter, requestsPerMinute int) *RedisLimiter {
	return &RedisLimiter{
		counter: counter,
		limit:   int64(requestsPerMinute),
		window:  time.Minute,
		now:     time.Now,
	}
}

// Allow fails open: on a store error the request is allowed and the error returned for logging.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowStart := l.now().Truncate(l.window).Unix()
	counterKey := fmt.Sprintf("ratelimit:%s:%d", key, windowStart)

	n, err := l.counter.Increment(ctx, counterKey)
	if err != nil {
		return true, err
	}
	if n == 1 {
		// Slightly longer than the window so a late INCR never lands on a key without TTL.
		if err := l.counter.Expire(ctx, counterKey, l.window+time.Second); err != nil {
			return true, err
		}
	}
	return n <= l.limit, nil
}
