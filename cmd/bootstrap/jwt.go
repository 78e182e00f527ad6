package bootstrap

import (
	"log/slog"
	"time"

	"coloring-api/internal/handler/middleware"
	"coloring-api/internal/pkg/config"
	"coloring-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

const adminTokenDuration = 12 * time.Hour

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(new(middleware.AdminValidator)),
		),
	),
)

// NewJWTService rejects every admin token when ADMIN_JWT_SECRET is unset.
func NewJWTService(cfg config.Config, logger *slog.Logger) *jwt.Service {
	if cfg.Admin.JWTSecret == "" {
		logger.Warn("ADMIN_JWT_SECRET not set; admin routes will reject all requests")
	}
	return jwt.NewService(cfg.Admin.JWTSecret, adminTokenDuration)
}
