package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLocal(rpm, burst int) (*LocalLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	l := NewLocalLimiter(rpm, burst)
	l.now = clock.now
	l.lastSweep = clock.t
	return l, clock
}

func TestLocalLimiter_BurstThenRefill(t *testing.T) {
	l, clock := newTestLocal(60, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		assert.NoError(t, err)
		assert.True(t, ok, "request %d should pass", i)
	}

	ok, _ := l.Allow(ctx, "10.0.0.1")
	assert.False(t, ok)

	clock.advance(time.Second)
	ok, _ = l.Allow(ctx, "10.0.0.1")
	assert.True(t, ok)
}

func TestLocalLimiter_KeysAreIndependent(t *testing.T) {
	l, _ := newTestLocal(60, 1)
	ctx := context.Background()

	ok, _ := l.Allow(ctx, "a")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "a")
	assert.False(t, ok)

	ok, _ = l.Allow(ctx, "b")
	assert.True(t, ok)
}

func TestLocalLimiter_DefaultBurst(t *testing.T) {
	l := NewLocalLimiter(30, 0)
	assert.Equal(t, 30, l.burst)
}

func TestLocalLimiter_SweepsIdleBuckets(t *testing.T) {
	l, clock := newTestLocal(60, 1)
	ctx := context.Background()

	_, _ = l.Allow(ctx, "a")
	_, _ = l.Allow(ctx, "b")
	assert.Equal(t, 2, l.size())

	clock.advance(11 * time.Minute)
	_, _ = l.Allow(ctx, "c")
	assert.Equal(t, 1, l.size())
}
