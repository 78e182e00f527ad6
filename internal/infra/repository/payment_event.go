package repository

import (
	"context"
	"time"

	"coloring-api/internal/infra"
	sqlc "coloring-api/internal/infra/sqlc/generated"
	"coloring-api/internal/pkg/pgconv"
)

type PaymentEventQueries interface {
	PaymentEventExists(ctx context.Context, db sqlc.DBTX, eventID string) (bool, error)
	MarkPaymentEventProcessed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkPaymentEventProcessedParams) error
}

type PaymentEventRepository struct {
	queries PaymentEventQueries
	db      sqlc.DBTX
}

func NewPaymentEventRepository(queries PaymentEventQueries, db sqlc.DBTX) *PaymentEventRepository {
	return &PaymentEventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentEventRepository) IsProcessed(ctx context.Context, eventID string) (bool, error) {
	exists, err := r.queries.PaymentEventExists(ctx, r.db, eventID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check payment event", err)
	}
	return exists, nil
}

func (r *PaymentEventRepository) MarkProcessed(ctx context.Context, eventID, eventType string, now time.Time) error {
	err := r.queries.MarkPaymentEventProcessed(ctx, r.db, sqlc.MarkPaymentEventProcessedParams{
		EventID:     eventID,
		EventType:   eventType,
		ProcessedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark payment event processed", err)
	}
	return nil
}
