//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"coloring-api/internal/domain/device"
	"coloring-api/internal/infra"
	"coloring-api/internal/infra/repository"
	sqlc "coloring-api/internal/infra/sqlc/generated"
	"coloring-api/internal/pkg/pgconv"
	repositorymock "coloring-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

func TestDeviceRepository_GetOrCreate(t *testing.T) {
	policy := device.DefaultPolicy()
	row := sqlc.Devices{
		ID:            uuid.New(),
		Fingerprint:   "fp",
		UsageCount:    2,
		WeekStartedAt: pgconv.TimeToPgtype(now.Add(-time.Hour)),
		CreatedAt:     pgconv.TimeToPgtype(now.Add(-time.Hour)),
		UpdatedAt:     pgconv.TimeToPgtype(now),
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockDeviceQueries(ctrl)
		repo := repository.NewDeviceRepository(q, nil)

		gomock.InOrder(
			q.EXPECT().InsertDeviceIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertDeviceIfAbsentParams) error {
					assert.Equal(t, "fp", arg.Fingerprint)
					assert.Equal(t, now, arg.Now.Time)
					return nil
				}),
			q.EXPECT().ResetExpiredDeviceWindow(gomock.Any(), gomock.Any(), sqlc.ResetExpiredDeviceWindowParams{
				Now:         pgconv.TimeToPgtype(now),
				Fingerprint: "fp",
				Cutoff:      pgconv.TimeToPgtype(now.Add(-policy.Window)),
			}).Return(int64(0), nil),
			q.EXPECT().GetDeviceByFingerprint(gomock.Any(), gomock.Any(), "fp").Return(row, nil),
		)

		got, err := repo.GetOrCreate(context.Background(), "fp", policy, now)
		require.NoError(t, err)
		assert.Equal(t, row.ID, got.ID)
		assert.Equal(t, int32(2), got.UsageCount)
		assert.Equal(t, now.Add(-time.Hour), got.WeekStartedAt)
	})

	t.Run("insert failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockDeviceQueries(ctrl)
		repo := repository.NewDeviceRepository(q, nil)

		q.EXPECT().InsertDeviceIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

		_, err := repo.GetOrCreate(context.Background(), "fp", policy, now)
		assert.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("row vanished", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockDeviceQueries(ctrl)
		repo := repository.NewDeviceRepository(q, nil)

		q.EXPECT().InsertDeviceIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		q.EXPECT().ResetExpiredDeviceWindow(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		q.EXPECT().GetDeviceByFingerprint(gomock.Any(), gomock.Any(), "fp").Return(sqlc.Devices{}, pgx.ErrNoRows)

		_, err := repo.GetOrCreate(context.Background(), "fp", policy, now)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestDeviceRepository_TryConsumeFreeTier(t *testing.T) {
	policy := device.Policy{Limit: 3, Window: 7 * 24 * time.Hour}

	tests := []struct {
		name      string
		affected  int64
		mockError error
		want      bool
		wantError bool
	}{
		{name: "consumed", affected: 1, want: true},
		{name: "limit reached", affected: 0, want: false},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockDeviceQueries(ctrl)
			repo := repository.NewDeviceRepository(q, nil)

			q.EXPECT().ConsumeFreeTier(gomock.Any(), gomock.Any(), sqlc.ConsumeFreeTierParams{
				Cutoff:      pgconv.TimeToPgtype(now.Add(-policy.Window)),
				Now:         pgconv.TimeToPgtype(now),
				Fingerprint: "fp",
				FreeLimit:   3,
			}).Return(tt.affected, tt.mockError)

			got, err := repo.TryConsumeFreeTier(context.Background(), "fp", policy, now)
			if tt.wantError {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
