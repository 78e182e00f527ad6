package repository

import (
	"context"
	"time"

	"coloring-api/internal/domain/redemption"
	"coloring-api/internal/infra"
	"coloring-api/internal/infra/repository/converter"
	sqlc "coloring-api/internal/infra/sqlc/generated"
	"coloring-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=redemption_code.go -destination=../../../tests/mock/repository/redemption_code_queries.go -package=repositorymock

type RedemptionCodeQueries interface {
	CreateRedemptionCode(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRedemptionCodeParams) error
	GetRedemptionCodeByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.RedemptionCodes, error)
	ListRedemptionCodesByPurchase(ctx context.Context, db sqlc.DBTX, purchaseID pgtype.UUID) ([]sqlc.RedemptionCodes, error)
	ListUsableRedemptionCodes(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUsableRedemptionCodesParams) ([]sqlc.RedemptionCodes, error)
	ConsumeRedemptionToken(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	BindRedemptionCodeFingerprint(ctx context.Context, db sqlc.DBTX, arg sqlc.BindRedemptionCodeFingerprintParams) (int64, error)
	ActivateRedemptionCodesForPurchase(ctx context.Context, db sqlc.DBTX, arg sqlc.ActivateRedemptionCodesForPurchaseParams) (int64, error)
	InvalidateRedemptionCodesForPurchase(ctx context.Context, db sqlc.DBTX, arg sqlc.InvalidateRedemptionCodesForPurchaseParams) (int64, error)
	DeletePendingRedemptionCodesForPurchase(ctx context.Context, db sqlc.DBTX, purchaseID pgtype.UUID) (int64, error)
}

type RedemptionCodeRepository struct {
	queries RedemptionCodeQueries
	db      sqlc.DBTX
}

func NewRedemptionCodeRepository(queries RedemptionCodeQueries, db sqlc.DBTX) *RedemptionCodeRepository {
	return &RedemptionCodeRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RedemptionCodeRepository) Create(ctx context.Context, code *redemption.RedemptionCode) error {
	if err := r.queries.CreateRedemptionCode(ctx, r.db, converter.RedemptionCodeToCreateParams(code)); err != nil {
		return infra.WrapRepoErr("failed to create redemption code", err)
	}
	return nil
}

func (r *RedemptionCodeRepository) FindByCode(ctx context.Context, code redemption.Code) (*redemption.RedemptionCode, error) {
	row, err := r.queries.GetRedemptionCodeByCode(ctx, r.db, code.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("redemption code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find redemption code", err)
	}
	return converter.RedemptionCodeFromRow(row), nil
}

func (r *RedemptionCodeRepository) FindByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]*redemption.RedemptionCode, error) {
	rows, err := r.queries.ListRedemptionCodesByPurchase(ctx, r.db, pgconv.UUIDToPgtype(purchaseID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list redemption codes for purchase", err)
	}
	return converter.RedemptionCodesFromRows(rows), nil
}

func (r *RedemptionCodeRepository) FindUsable(ctx context.Context, fingerprint string, codes []redemption.Code) ([]*redemption.RedemptionCode, error) {
	values := make([]string, 0, len(codes))
	for _, c := range codes {
		values = append(values, c.String())
	}
	rows, err := r.queries.ListUsableRedemptionCodes(ctx, r.db, sqlc.ListUsableRedemptionCodesParams{
		Codes:       values,
		Fingerprint: pgconv.NonEmptyStringToPgtype(fingerprint),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list usable redemption codes", err)
	}
	return converter.RedemptionCodesFromRows(rows), nil
}

func (r *RedemptionCodeRepository) TryConsumeToken(ctx context.Context, codeID uuid.UUID) (bool, error) {
	affected, err := r.queries.ConsumeRedemptionToken(ctx, r.db, codeID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to consume redemption token", err)
	}
	return affected == 1, nil
}

func (r *RedemptionCodeRepository) BindFingerprint(ctx context.Context, codeID uuid.UUID, fingerprint string, now time.Time) (bool, error) {
	affected, err := r.queries.BindRedemptionCodeFingerprint(ctx, r.db, sqlc.BindRedemptionCodeFingerprintParams{
		Fingerprint: pgconv.StringToPgtype(fingerprint),
		Now:         pgconv.TimeToPgtype(now),
		ID:          codeID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to bind redemption code", err)
	}
	return affected == 1, nil
}

func (r *RedemptionCodeRepository) ActivateForPurchase(ctx context.Context, purchaseID uuid.UUID, fingerprint *string, now time.Time) (int64, error) {
	affected, err := r.queries.ActivateRedemptionCodesForPurchase(ctx, r.db, sqlc.ActivateRedemptionCodesForPurchaseParams{
		Fingerprint: pgconv.StringPtrToPgtype(fingerprint),
		Now:         pgconv.TimeToPgtype(now),
		PurchaseID:  pgconv.UUIDToPgtype(purchaseID),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to activate redemption codes", err)
	}
	return affected, nil
}

func (r *RedemptionCodeRepository) InvalidateForPurchase(ctx context.Context, purchaseID uuid.UUID, now time.Time) (int64, error) {
	affected, err := r.queries.InvalidateRedemptionCodesForPurchase(ctx, r.db, sqlc.InvalidateRedemptionCodesForPurchaseParams{
		Now:        pgconv.TimeToPgtype(now),
		PurchaseID: pgconv.UUIDToPgtype(purchaseID),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to invalidate redemption codes", err)
	}
	return affected, nil
}

func (r *RedemptionCodeRepository) DeletePendingForPurchase(ctx context.Context, purchaseID uuid.UUID) (int64, error) {
	affected, err := r.queries.DeletePendingRedemptionCodesForPurchase(ctx, r.db, pgconv.UUIDToPgtype(purchaseID))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete pending redemption codes", err)
	}
	return affected, nil
}
