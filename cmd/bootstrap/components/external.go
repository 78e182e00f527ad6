package components

import (
	"context"
	"log/slog"

	"coloring-api/internal/infra/imagegen"
	"coloring-api/internal/infra/payment"
	"coloring-api/internal/pkg/config"
	"coloring-api/internal/usecase"

	"go.uber.org/fx"
)

var ExternalModule = fx.Module("external",
	fx.Provide(
		fx.Annotate(
			NewImageGenerator,
			fx.As(new(usecase.ImageGenerator)),
		),
		fx.Annotate(
			NewCheckoutGateway,
			fx.As(new(usecase.CheckoutGateway)),
		),
		fx.Annotate(
			NewEventVerifier,
			fx.As(new(usecase.PaymentEventVerifier)),
		),
	),
)

func NewImageGenerator(cfg config.Config, logger *slog.Logger) (*imagegen.GeminiClient, error) {
	if cfg.ImageGen.APIKey == "" {
		logger.Warn("GEMINI_API_KEY not set; image generation will fail")
	}
	return imagegen.NewGeminiClient(context.Background(), cfg.ImageGen, nil)
}

func NewCheckoutGateway(cfg config.Config) *payment.StripeGateway {
	return payment.NewStripeGateway(cfg.Payment, nil)
}

func NewEventVerifier(cfg config.Config) *payment.WebhookVerifier {
	return payment.NewWebhookVerifier(cfg.Payment)
}
