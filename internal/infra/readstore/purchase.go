package readstore

import (
	"context"

	"coloring-api/internal/infra"
	sqlc "coloring-api/internal/infra/sqlc/generated"
	"coloring-api/internal/pkg/pgconv"
	"coloring-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type PurchaseReadQueries interface {
	GetPurchaseReceiptBySession(ctx context.Context, db sqlc.DBTX, stripeSessionID pgtype.Text) (sqlc.GetPurchaseReceiptBySessionRow, error)
}

type PurchaseReadStore struct {
	queries PurchaseReadQueries
	db      sqlc.DBTX
}

func NewPurchaseReadStore(queries PurchaseReadQueries, db sqlc.DBTX) *PurchaseReadStore {
	return &PurchaseReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PurchaseReadStore) FindReceiptBySession(ctx context.Context, sessionID string) (*queries.PurchaseReceiptView, error) {
	row, err := r.queries.GetPurchaseReceiptBySession(ctx, r.db, pgconv.StringToPgtype(sessionID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("purchase receipt not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find purchase receipt", err)
	}

	return &queries.PurchaseReceiptView{
		PurchaseID:     row.PurchaseID,
		PurchaseStatus: row.PurchaseStatus,
		PackType:       row.PackType,
		Code:           row.Code,
		Tokens:         row.InitialTokens,
		CodeStatus:     row.CodeStatus,
	}, nil
}
