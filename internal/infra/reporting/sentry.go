package reporting

import (
	"context"
	"log/slog"
	"time"

	"coloring-api/internal/pkg/config"
	"coloring-api/internal/pkg/errs"

	"github.com/getsentry/sentry-go"
)

const flushTimeout = 2 * time.Second

// Init configures the global Sentry client. An empty DSN leaves reporting disabled;
// the returned flush func is always safe to call.
func Init(cfg config.SentryConfig) (func(), error) {
	if cfg.DSN == "" {
		slog.Info("sentry disabled, no DSN configured")
		return func() {}, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		EnableTracing:    cfg.SampleRate > 0,
		TracesSampleRate: cfg.SampleRate,
	})
	if err != nil {
		return func() {}, errs.Wrap(err, "sentry init failed")
	}
	return func() { sentry.Flush(flushTimeout) }, nil
}

// SentryReporter sends to the request-scoped hub when the sentry gin middleware
// installed one, otherwise to the given hub.
type SentryReporter struct {
	hub *sentry.Hub
}

func NewSentryReporter(hub *sentry.Hub) *SentryReporter {
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	return &SentryReporter{hub: hub}
}

func (r *SentryReporter) CaptureException(ctx context.Context, err error) {
	if err == nil {
		return
	}
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = r.hub
	}
	hub.CaptureException(err)
}
