package bootstrap

import (
	"context"
	"log/slog"

	"coloring-api/internal/handler/middleware"
	"coloring-api/internal/infra/cache"
	"coloring-api/internal/pkg/clock"
	"coloring-api/internal/pkg/config"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRateLimiter,
	),
)

// NewRateLimiter shares counters through Redis when REDIS_URL is set and reachable,
// and falls back to per-process buckets otherwise.
func NewRateLimiter(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) middleware.RateLimiter {
	if cfg.Redis.URL == "" {
		logger.Info("REDIS_URL not set; using in-memory rate limiter")
		return cache.NewMemoryLimiter(clk)
	}

	client, err := cache.Connect(context.Background(), cfg.Redis.URL)
	if err != nil {
		logger.Warn("redis unavailable; using in-memory rate limiter", "error", err.Error())
		return cache.NewMemoryLimiter(clk)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	logger.Info("rate limiter backed by redis")
	return cache.NewRedisLimiter(client, clk)
}
