package converter

import (
	"coloring-api/internal/domain/device"
	sqlc "coloring-api/internal/infra/sqlc/generated"
	"coloring-api/internal/pkg/pgconv"
)

func DeviceFromRow(row sqlc.Devices) *device.Device {
	return &device.Device{
		ID:            row.ID,
		Fingerprint:   row.Fingerprint,
		UsageCount:    row.UsageCount,
		WeekStartedAt: pgconv.TimeFromPgtype(row.WeekStartedAt),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
