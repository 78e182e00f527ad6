package components

import (
	"coloring-api/internal/handler"
	"coloring-api/internal/handler/api"
	"coloring-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewGenerationHandler,
		api.NewUsageHandler,
		api.NewPaymentHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
