package bootstrap

import (
	"coloring-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CacheModule,
	ReportingModule,
	JWTModule,
	components.ExternalModule,
	components.UseCaseModule,
	components.HandlerModule,
)
