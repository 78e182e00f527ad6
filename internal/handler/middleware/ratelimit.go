package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"coloring-api/internal/handler/httperr"
	"coloring-api/internal/infra/cache"
	"coloring-api/internal/pkg/config"
	"coloring-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errRateLimited = errs.New("rate limit exceeded")

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (cache.Decision, error)
}

type RateLimitRule struct {
	PathPrefix string
	Limit      int
}

func RateLimitRules(cfg config.RateLimitConfig) []RateLimitRule {
	return []RateLimitRule{
		{PathPrefix: "/api/generate", Limit: cfg.GenerateLimit},
		{PathPrefix: "/api/checkout", Limit: cfg.CheckoutLimit},
		{PathPrefix: "/api/redeem", Limit: cfg.RedeemLimit},
	}
}

// RateLimit applies the first matching rule per client IP and path.
// A limiter failure lets the request through.
func RateLimit(limiter RateLimiter, window time.Duration, rules []RateLimitRule) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		var rule *RateLimitRule
		for i := range rules {
			if strings.HasPrefix(path, rules[i].PathPrefix) {
				rule = &rules[i]
				break
			}
		}
		if rule == nil {
			c.Next()
			return
		}

		key := c.ClientIP() + ":" + rule.PathPrefix
		decision, err := limiter.Allow(c.Request.Context(), key, rule.Limit, window)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "rate limiter unavailable, allowing request",
				"path", path,
				"error", err.Error())
			c.Next()
			return
		}
		if decision.Allowed {
			c.Next()
			return
		}

		retryAfter := int(math.Ceil(decision.RetryAfter.Seconds()))
		if retryAfter < 1 {
			retryAfter = 1
		}
		c.Header("Retry-After", strconv.Itoa(retryAfter))
		resp := httperr.New(http.StatusTooManyRequests, "Too many requests. Please slow down.")
		resp.RetryAfter = retryAfter
		httperr.Abort(c, errRateLimited, resp)
	}
}
