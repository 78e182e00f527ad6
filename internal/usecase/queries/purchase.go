package queries

import (
	"context"
	"strings"

	"coloring-api/internal/infra"
	"coloring-api/internal/pkg/errs"
)

type PurchaseQueries interface {
	GetBySession(ctx context.Context, sessionID string) (*PurchaseReceiptView, error)
}

type PurchaseReadStore interface {
	FindReceiptBySession(ctx context.Context, sessionID string) (*PurchaseReceiptView, error)
}

type purchaseQueriesImpl struct {
	readStore PurchaseReadStore
}

func NewPurchaseQueries(readStore PurchaseReadStore) PurchaseQueries {
	return &purchaseQueriesImpl{
		readStore: readStore,
	}
}

func (q *purchaseQueriesImpl) GetBySession(ctx context.Context, sessionID string) (*PurchaseReceiptView, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, errs.ErrPurchaseNotFound
	}

	receipt, err := q.readStore.FindReceiptBySession(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPurchaseNotFound
		}
		return nil, err
	}
	return receipt, nil
}
