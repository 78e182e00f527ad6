package repository

import (
	"context"

	"coloring-api/internal/domain/generation"
	"coloring-api/internal/infra"
	sqlc "coloring-api/internal/infra/sqlc/generated"
	"coloring-api/internal/pkg/pgconv"
)

type GenerationQueries interface {
	CreateGeneration(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateGenerationParams) error
}

type GenerationRepository struct {
	queries GenerationQueries
	db      sqlc.DBTX
}

func NewGenerationRepository(queries GenerationQueries, db sqlc.DBTX) *GenerationRepository {
	return &GenerationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *GenerationRepository) Record(ctx context.Context, rec *generation.Record) error {
	err := r.queries.CreateGeneration(ctx, r.db, sqlc.CreateGenerationParams{
		ID:               rec.ID,
		Fingerprint:      rec.Fingerprint,
		RedemptionCodeID: pgconv.UUIDPtrToPgtype(rec.RedemptionCodeID),
		Prompt:           rec.Prompt,
		WasFreeTier:      rec.WasFreeTier,
		CreatedAt:        pgconv.TimeToPgtype(rec.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record generation", err)
	}
	return nil
}
