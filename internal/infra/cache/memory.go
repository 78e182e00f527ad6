package cache

import (
	"context"
	"sync"
	"time"

	"coloring-api/internal/pkg/clock"

	"golang.org/x/time/rate"
)

const idleEviction = 10 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter is the single-instance fallback used when Redis is not configured.
// Each key gets a token bucket of size limit that refills over window.
type MemoryLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	clock     clock.Clock
	lastSweep time.Time
}

func NewMemoryLimiter(clk clock.Clock) *MemoryLimiter {
	return &MemoryLimiter{
		buckets:   make(map[string]*bucket),
		clock:     clk,
		lastSweep: clk.Now(),
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (Decision, error) {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)

	if limit <= 0 {
		return Decision{Allowed: false, RetryAfter: window}, nil
	}

	b, ok := l.buckets[key]
	if !ok {
		every := window / time.Duration(limit)
		b = &bucket{limiter: rate.NewLimiter(rate.Every(every), limit)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	r := b.limiter.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return Decision{Allowed: false, RetryAfter: delay}, nil
	}
	return Decision{Allowed: true, Remaining: int(b.limiter.TokensAt(now))}, nil
}

func (l *MemoryLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < idleEviction {
		return
	}
	for k, b := range l.buckets {
		if now.Sub(b.lastSeen) >= idleEviction {
			delete(l.buckets, k)
		}
	}
	l.lastSweep = now
}
