//go:build unit

package repository_test

import (
	"context"
	"testing"

	"coloring-api/internal/domain/redemption"
	"coloring-api/internal/infra"
	"coloring-api/internal/infra/repository"
	sqlc "coloring-api/internal/infra/sqlc/generated"
	"coloring-api/internal/pkg/pgconv"
	repositorymock "coloring-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCodeRepo(t *testing.T) (*repository.RedemptionCodeRepository, *repositorymock.MockRedemptionCodeQueries) {
	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockRedemptionCodeQueries(ctrl)
	return repository.NewRedemptionCodeRepository(q, nil), q
}

func TestRedemptionCodeRepository_Create(t *testing.T) {
	code, err := redemption.Generate()
	require.NoError(t, err)
	purchaseID := uuid.New()
	rc, err := redemption.NewPending(code, 50, purchaseID, "fp", now)
	require.NoError(t, err)

	t.Run("maps the entity", func(t *testing.T) {
		repo, q := newCodeRepo(t)
		q.EXPECT().CreateRedemptionCode(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateRedemptionCodeParams) error {
				assert.Equal(t, rc.ID, arg.ID)
				assert.Equal(t, code.String(), arg.Code)
				assert.Equal(t, int32(50), arg.InitialTokens)
				assert.Equal(t, int32(50), arg.RemainingTokens)
				assert.Equal(t, "pending", arg.Status)
				assert.Equal(t, pgconv.UUIDToPgtype(purchaseID), arg.PurchaseID)
				assert.Equal(t, pgconv.StringToPgtype("fp"), arg.RedeemedByFingerprint)
				assert.False(t, arg.RedeemedAt.Valid)
				return nil
			})

		assert.NoError(t, repo.Create(context.Background(), rc))
	})

	t.Run("duplicate code", func(t *testing.T) {
		repo, q := newCodeRepo(t)
		q.EXPECT().CreateRedemptionCode(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505"})

		err := repo.Create(context.Background(), rc)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("missing purchase", func(t *testing.T) {
		repo, q := newCodeRepo(t)
		q.EXPECT().CreateRedemptionCode(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23503"})

		err := repo.Create(context.Background(), rc)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestRedemptionCodeRepository_FindByCode(t *testing.T) {
	code, err := redemption.Generate()
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		repo, q := newCodeRepo(t)
		row := sqlc.RedemptionCodes{
			ID:                    uuid.New(),
			Code:                  code.String(),
			InitialTokens:         10,
			RemainingTokens:       7,
			Status:                "active",
			RedeemedByFingerprint: pgconv.StringToPgtype("fp"),
			RedeemedAt:            pgconv.TimeToPgtype(now),
			CreatedAt:             pgconv.TimeToPgtype(now),
		}
		q.EXPECT().GetRedemptionCodeByCode(gomock.Any(), gomock.Any(), code.String()).Return(row, nil)

		got, err := repo.FindByCode(context.Background(), code)
		require.NoError(t, err)
		assert.Equal(t, code, got.Code)
		assert.Equal(t, redemption.StatusActive, got.Status)
		assert.Equal(t, int32(7), got.RemainingTokens)
		assert.Nil(t, got.PurchaseID)
		assert.Nil(t, got.InvalidatedAt)
		assert.True(t, got.IsUsable())
	})

	t.Run("not found", func(t *testing.T) {
		repo, q := newCodeRepo(t)
		q.EXPECT().GetRedemptionCodeByCode(gomock.Any(), gomock.Any(), code.String()).
			Return(sqlc.RedemptionCodes{}, pgx.ErrNoRows)

		_, err := repo.FindByCode(context.Background(), code)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestRedemptionCodeRepository_FindUsable(t *testing.T) {
	a, err := redemption.Generate()
	require.NoError(t, err)
	b, err := redemption.Generate()
	require.NoError(t, err)

	t.Run("passes codes and fingerprint", func(t *testing.T) {
		repo, q := newCodeRepo(t)
		q.EXPECT().ListUsableRedemptionCodes(gomock.Any(), gomock.Any(), sqlc.ListUsableRedemptionCodesParams{
			Codes:       []string{a.String(), b.String()},
			Fingerprint: pgconv.StringToPgtype("fp"),
		}).Return([]sqlc.RedemptionCodes{{ID: uuid.New(), Code: a.String(), Status: "active", RemainingTokens: 3}}, nil)

		got, err := repo.FindUsable(context.Background(), "fp", []redemption.Code{a, b})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, a, got[0].Code)
	})

	t.Run("empty fingerprint matches nothing by binding", func(t *testing.T) {
		repo, q := newCodeRepo(t)
		q.EXPECT().ListUsableRedemptionCodes(gomock.Any(), gomock.Any(), sqlc.ListUsableRedemptionCodesParams{
			Codes:       []string{},
			Fingerprint: pgtype.Text{},
		}).Return(nil, nil)

		got, err := repo.FindUsable(context.Background(), "", nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestRedemptionCodeRepository_ConditionalUpdates(t *testing.T) {
	id := uuid.New()
	purchaseID := uuid.New()

	t.Run("token consumed", func(t *testing.T) {
		repo, q := newCodeRepo(t)
		q.EXPECT().ConsumeRedemptionToken(gomock.Any(), gomock.Any(), id).Return(int64(1), nil)

		ok, err := repo.TryConsumeToken(context.Background(), id)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("lost token race is not an error", func(t *testing.T) {
		repo, q := newCodeRepo(t)
		q.EXPECT().ConsumeRedemptionToken(gomock.Any(), gomock.Any(), id).Return(int64(0), nil)

		ok, err := repo.TryConsumeToken(context.Background(), id)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("bind once", func(t *testing.T) {
		repo, q := newCodeRepo(t)
		q.EXPECT().BindRedemptionCodeFingerprint(gomock.Any(), gomock.Any(), sqlc.BindRedemptionCodeFingerprintParams{
			Fingerprint: pgconv.StringToPgtype("fp"),
			Now:         pgconv.TimeToPgtype(now),
			ID:          id,
		}).Return(int64(0), nil)

		ok, err := repo.BindFingerprint(context.Background(), id, "fp", now)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("activate without fingerprint", func(t *testing.T) {
		repo, q := newCodeRepo(t)
		q.EXPECT().ActivateRedemptionCodesForPurchase(gomock.Any(), gomock.Any(), sqlc.ActivateRedemptionCodesForPurchaseParams{
			Fingerprint: pgtype.Text{},
			Now:         pgconv.TimeToPgtype(now),
			PurchaseID:  pgconv.UUIDToPgtype(purchaseID),
		}).Return(int64(1), nil)

		n, err := repo.ActivateForPurchase(context.Background(), purchaseID, nil, now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("invalidate failure", func(t *testing.T) {
		repo, q := newCodeRepo(t)
		q.EXPECT().InvalidateRedemptionCodesForPurchase(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), assert.AnError)

		_, err := repo.InvalidateForPurchase(context.Background(), purchaseID, now)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("delete pending", func(t *testing.T) {
		repo, q := newCodeRepo(t)
		q.EXPECT().DeletePendingRedemptionCodesForPurchase(gomock.Any(), gomock.Any(), pgconv.UUIDToPgtype(purchaseID)).
			Return(int64(2), nil)

		n, err := repo.DeletePendingForPurchase(context.Background(), purchaseID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})
}
