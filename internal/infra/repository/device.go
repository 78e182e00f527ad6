package repository

import (
	"context"
	"time"

	"coloring-api/internal/domain/device"
	"coloring-api/internal/infra"
	"coloring-api/internal/infra/repository/converter"
	sqlc "coloring-api/internal/infra/sqlc/generated"
	"coloring-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=device.go -destination=../../../tests/mock/repository/device_queries.go -package=repositorymock

type DeviceQueries interface {
	InsertDeviceIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertDeviceIfAbsentParams) error
	ResetExpiredDeviceWindow(ctx context.Context, db sqlc.DBTX, arg sqlc.ResetExpiredDeviceWindowParams) (int64, error)
	GetDeviceByFingerprint(ctx context.Context, db sqlc.DBTX, fingerprint string) (sqlc.Devices, error)
	ConsumeFreeTier(ctx context.Context, db sqlc.DBTX, arg sqlc.ConsumeFreeTierParams) (int64, error)
}

type DeviceRepository struct {
	queries DeviceQueries
	db      sqlc.DBTX
}

func NewDeviceRepository(queries DeviceQueries, db sqlc.DBTX) *DeviceRepository {
	return &DeviceRepository{
		queries: queries,
		db:      db,
	}
}

// GetOrCreate lazily inserts the device and self-heals an expired window before reading.
func (r *DeviceRepository) GetOrCreate(ctx context.Context, fingerprint string, policy device.Policy, now time.Time) (*device.Device, error) {
	err := r.queries.InsertDeviceIfAbsent(ctx, r.db, sqlc.InsertDeviceIfAbsentParams{
		ID:          uuid.New(),
		Fingerprint: fingerprint,
		Now:         pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert device", err)
	}

	_, err = r.queries.ResetExpiredDeviceWindow(ctx, r.db, sqlc.ResetExpiredDeviceWindowParams{
		Now:         pgconv.TimeToPgtype(now),
		Fingerprint: fingerprint,
		Cutoff:      pgconv.TimeToPgtype(policy.WindowStartCutoff(now)),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reset device window", err)
	}

	row, err := r.queries.GetDeviceByFingerprint(ctx, r.db, fingerprint)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("device not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get device", err)
	}

	return converter.DeviceFromRow(row), nil
}

func (r *DeviceRepository) TryConsumeFreeTier(ctx context.Context, fingerprint string, policy device.Policy, now time.Time) (bool, error) {
	affected, err := r.queries.ConsumeFreeTier(ctx, r.db, sqlc.ConsumeFreeTierParams{
		Cutoff:      pgconv.TimeToPgtype(policy.WindowStartCutoff(now)),
		Now:         pgconv.TimeToPgtype(now),
		Fingerprint: fingerprint,
		FreeLimit:   policy.Limit,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to consume free tier", err)
	}
	return affected == 1, nil
}
