package cache

import (
	"context"
	"strconv"
	"time"

	"coloring-api/internal/pkg/clock"
	"coloring-api/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// Decision is the outcome of one hit against a limit.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// RedisLimiter counts hits in fixed windows aligned to the epoch, so every
// instance sharing the Redis agrees on window boundaries.
type RedisLimiter struct {
	client *redis.Client
	clock  clock.Clock
}

func NewRedisLimiter(client *redis.Client, clk clock.Clock) *RedisLimiter {
	return &RedisLimiter{client: client, clock: clk}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (Decision, error) {
	now := l.clock.Now()
	start := now.Truncate(window)
	windowEnd := start.Add(window)
	redisKey := keyPrefix + key + ":" + strconv.FormatInt(start.Unix(), 10)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, redisKey)
		// keep the counter a little past the window end to absorb clock skew between instances
		p.Expire(ctx, redisKey, window+time.Second)
		return nil
	})
	if err != nil {
		return Decision{}, errs.Wrap(err, "rate limit counter update failed")
	}

	return decide(int(incr.Val()), limit, windowEnd.Sub(now)), nil
}

func decide(count, limit int, untilReset time.Duration) Decision {
	if count > limit {
		return Decision{Allowed: false, RetryAfter: untilReset}
	}
	return Decision{Allowed: true, Remaining: limit - count}
}
