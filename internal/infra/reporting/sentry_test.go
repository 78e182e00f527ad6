//go:build unit

package reporting_test

import (
	"context"
	"sync"
	"testing"

	"coloring-api/internal/infra/reporting"
	"coloring-api/internal/pkg/config"
	"coloring-api/internal/pkg/errs"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	mu     sync.Mutex
	events []*sentry.Event
}

func (c *captured) hub(t *testing.T) *sentry.Hub {
	t.Helper()
	client, err := sentry.NewClient(sentry.ClientOptions{
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.events = append(c.events, event)
			return nil
		},
	})
	require.NoError(t, err)
	return sentry.NewHub(client, sentry.NewScope())
}

func (c *captured) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

func TestSentryReporter_CaptureException(t *testing.T) {
	t.Run("falls back to the default hub", func(t *testing.T) {
		var c captured
		r := reporting.NewSentryReporter(c.hub(t))

		r.CaptureException(context.Background(), errs.New("consume failed"))

		require.Equal(t, 1, c.len())
		require.NotEmpty(t, c.events[0].Exception)
		assert.Contains(t, c.events[0].Exception[len(c.events[0].Exception)-1].Value, "consume failed")
	})

	t.Run("prefers the request hub", func(t *testing.T) {
		var fallback, request captured
		r := reporting.NewSentryReporter(fallback.hub(t))
		ctx := sentry.SetHubOnContext(context.Background(), request.hub(t))

		r.CaptureException(ctx, errs.New("boom"))

		assert.Equal(t, 0, fallback.len())
		assert.Equal(t, 1, request.len())
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		var c captured
		reporting.NewSentryReporter(c.hub(t)).CaptureException(context.Background(), nil)
		assert.Equal(t, 0, c.len())
	})
}

func TestInit_WithoutDSN(t *testing.T) {
	flush, err := reporting.Init(config.SentryConfig{})
	require.NoError(t, err)
	assert.NotPanics(t, flush)
}
