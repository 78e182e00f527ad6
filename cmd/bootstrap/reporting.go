package bootstrap

import (
	"context"

	"coloring-api/internal/infra/reporting"
	"coloring-api/internal/pkg/config"
	"coloring-api/internal/usecase"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"
)

var ReportingModule = fx.Module("reporting",
	fx.Provide(
		NewSentryHub,
		fx.Annotate(
			reporting.NewSentryReporter,
			fx.As(new(usecase.ErrorReporter)),
		),
	),
)

// NewSentryHub initializes the global client and flushes buffered events on stop.
func NewSentryHub(lc fx.Lifecycle, cfg config.Config) (*sentry.Hub, error) {
	flush, err := reporting.Init(cfg.Sentry)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			flush()
			return nil
		},
	})
	return sentry.CurrentHub(), nil
}
