package bootstrap

import (
	"context"
	"log/slog"

	"coloring-api/internal/infra/db"
	"coloring-api/internal/infra/memory"
	"coloring-api/internal/infra/readstore"
	sqlc "coloring-api/internal/infra/sqlc/generated"
	"coloring-api/internal/infra/uow"
	"coloring-api/internal/pkg/config"
	"coloring-api/internal/usecase/queries"
	"coloring-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewPersistence,
	),
)

type Persistence struct {
	fx.Out

	UnitOfWork shared.UnitOfWork
	ReadStore  queries.PurchaseReadStore
}

// NewPersistence picks the entitlement store by DB_DRIVER. The memory store keeps
// nothing across restarts and is meant for local development.
func NewPersistence(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Persistence, error) {
	if cfg.DB.IsMemory() {
		logger.Warn("using in-memory entitlement store; balances are lost on restart")
		store := memory.New()
		return Persistence{UnitOfWork: store, ReadStore: store}, nil
	}

	pool, err := NewDB(lc, cfg)
	if err != nil {
		return Persistence{}, err
	}
	return NewPostgresPersistence(pool), nil
}

func NewPostgresPersistence(pool *pgxpool.Pool) Persistence {
	q := sqlc.New()
	return Persistence{
		UnitOfWork: uow.NewPostgresUoW(pool, q),
		ReadStore:  readstore.NewPurchaseReadStore(q, pool),
	}
}

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
