package components

import (
	"coloring-api/internal/domain/device"
	"coloring-api/internal/domain/purchase"
	"coloring-api/internal/pkg/clock"
	"coloring-api/internal/pkg/config"
	"coloring-api/internal/usecase"
	"coloring-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) device.Policy {
		return device.Policy{
			Limit:  int32(cfg.Ledger.FreeTierLimit),
			Window: cfg.Ledger.FreeTierWeek,
		}
	},
	func(cfg config.Config) *purchase.Catalog {
		return purchase.NewCatalog(cfg.Payment.PriceIDs())
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		usecase.NewLedgerUseCase,
		usecase.NewRedeemUseCase,
		usecase.NewPaymentUseCase,
		usecase.NewSupportUseCase,
		func(ledger usecase.LedgerUseCase, gen usecase.ImageGenerator, reporter usecase.ErrorReporter, clk clock.Clock, cfg config.Config) usecase.GenerationUseCase {
			return usecase.NewGenerationUseCase(ledger, gen, reporter, clk, cfg.ImageGen.Timeout)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPurchaseQueries,
	),
)
