package repository

import (
	"context"
	"time"

	"coloring-api/internal/domain/purchase"
	"coloring-api/internal/infra"
	"coloring-api/internal/infra/repository/converter"
	sqlc "coloring-api/internal/infra/sqlc/generated"
	"coloring-api/internal/pkg/pgconv"
	"coloring-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=purchase.go -destination=../../../tests/mock/repository/purchase_queries.go -package=repositorymock

type PurchaseQueries interface {
	CreatePurchase(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePurchaseParams) error
	AttachPurchaseSession(ctx context.Context, db sqlc.DBTX, arg sqlc.AttachPurchaseSessionParams) (int64, error)
	GetPurchaseByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Purchases, error)
	GetPurchaseBySession(ctx context.Context, db sqlc.DBTX, stripeSessionID pgtype.Text) (sqlc.Purchases, error)
	GetPurchaseByPaymentIntent(ctx context.Context, db sqlc.DBTX, stripePaymentIntentID pgtype.Text) (sqlc.Purchases, error)
	CompletePurchase(ctx context.Context, db sqlc.DBTX, arg sqlc.CompletePurchaseParams) (int64, error)
	ExpirePurchase(ctx context.Context, db sqlc.DBTX, arg sqlc.ExpirePurchaseParams) (int64, error)
	ApplyPurchaseRefund(ctx context.Context, db sqlc.DBTX, arg sqlc.ApplyPurchaseRefundParams) (sqlc.Purchases, error)
	DeletePurchase(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type PurchaseRepository struct {
	queries PurchaseQueries
	db      sqlc.DBTX
}

func NewPurchaseRepository(queries PurchaseQueries, db sqlc.DBTX) *PurchaseRepository {
	return &PurchaseRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PurchaseRepository) Create(ctx context.Context, p *purchase.Purchase) error {
	if err := r.queries.CreatePurchase(ctx, r.db, converter.PurchaseToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create purchase", err)
	}
	return nil
}

func (r *PurchaseRepository) AttachSession(ctx context.Context, id uuid.UUID, sessionID string, now time.Time) error {
	affected, err := r.queries.AttachPurchaseSession(ctx, r.db, sqlc.AttachPurchaseSessionParams{
		StripeSessionID: pgconv.StringToPgtype(sessionID),
		Now:             pgconv.TimeToPgtype(now),
		ID:              id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to attach checkout session", err)
	}
	if affected == 0 {
		return infra.NewNotFound("purchase not found")
	}
	return nil
}

func (r *PurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*purchase.Purchase, error) {
	row, err := r.queries.GetPurchaseByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapFindPurchaseErr(err)
	}
	return converter.PurchaseFromRow(row), nil
}

func (r *PurchaseRepository) FindBySession(ctx context.Context, sessionID string) (*purchase.Purchase, error) {
	row, err := r.queries.GetPurchaseBySession(ctx, r.db, pgconv.StringToPgtype(sessionID))
	if err != nil {
		return nil, wrapFindPurchaseErr(err)
	}
	return converter.PurchaseFromRow(row), nil
}

func (r *PurchaseRepository) FindByPaymentIntent(ctx context.Context, paymentIntentID string) (*purchase.Purchase, error) {
	row, err := r.queries.GetPurchaseByPaymentIntent(ctx, r.db, pgconv.StringToPgtype(paymentIntentID))
	if err != nil {
		return nil, wrapFindPurchaseErr(err)
	}
	return converter.PurchaseFromRow(row), nil
}

func (r *PurchaseRepository) MarkCompleted(ctx context.Context, id uuid.UUID, details shared.PurchaseCompletion, now time.Time) (bool, error) {
	affected, err := r.queries.CompletePurchase(ctx, r.db, sqlc.CompletePurchaseParams{
		StripeSessionID:       pgconv.NonEmptyStringToPgtype(details.SessionID),
		StripePaymentIntentID: pgconv.NonEmptyStringToPgtype(details.PaymentIntentID),
		Email:                 pgconv.NonEmptyStringToPgtype(details.Email),
		Now:                   pgconv.TimeToPgtype(now),
		ID:                    id,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to complete purchase", err)
	}
	return affected == 1, nil
}

func (r *PurchaseRepository) MarkExpired(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	affected, err := r.queries.ExpirePurchase(ctx, r.db, sqlc.ExpirePurchaseParams{
		Now: pgconv.TimeToPgtype(now),
		ID:  id,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to expire purchase", err)
	}
	return affected == 1, nil
}

func (r *PurchaseRepository) ApplyRefund(ctx context.Context, id uuid.UUID, refundedAmountCents int32, now time.Time) (*purchase.Purchase, error) {
	row, err := r.queries.ApplyPurchaseRefund(ctx, r.db, sqlc.ApplyPurchaseRefundParams{
		RefundedAmountCents: refundedAmountCents,
		Now:                 pgconv.TimeToPgtype(now),
		ID:                  id,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("purchase not refundable", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to apply refund", err)
	}
	return converter.PurchaseFromRow(row), nil
}

func (r *PurchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeletePurchase(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to delete purchase", err)
	}
	return nil
}

func wrapFindPurchaseErr(err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr("purchase not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to find purchase", err)
}
