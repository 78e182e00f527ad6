package converter

import (
	"coloring-api/internal/domain/redemption"
	sqlc "coloring-api/internal/infra/sqlc/generated"
	"coloring-api/internal/pkg/pgconv"
)

func RedemptionCodeToCreateParams(c *redemption.RedemptionCode) sqlc.CreateRedemptionCodeParams {
	return sqlc.CreateRedemptionCodeParams{
		ID:                    c.ID,
		Code:                  c.Code.String(),
		InitialTokens:         c.InitialTokens,
		RemainingTokens:       c.RemainingTokens,
		Status:                c.Status.String(),
		PurchaseID:            pgconv.UUIDPtrToPgtype(c.PurchaseID),
		RedeemedByFingerprint: pgconv.StringPtrToPgtype(c.RedeemedByFingerprint),
		RedeemedAt:            pgconv.TimePtrToPgtype(c.RedeemedAt),
		InvalidatedAt:         pgconv.TimePtrToPgtype(c.InvalidatedAt),
		CreatedAt:             pgconv.TimeToPgtype(c.CreatedAt),
	}
}

func RedemptionCodeFromRow(row sqlc.RedemptionCodes) *redemption.RedemptionCode {
	return &redemption.RedemptionCode{
		ID:                    row.ID,
		Code:                  redemption.Code(row.Code),
		InitialTokens:         row.InitialTokens,
		RemainingTokens:       row.RemainingTokens,
		Status:                redemption.Status(row.Status),
		PurchaseID:            pgconv.UUIDPtrFromPgtype(row.PurchaseID),
		RedeemedByFingerprint: pgconv.StringPtrFromPgtype(row.RedeemedByFingerprint),
		RedeemedAt:            pgconv.TimePtrFromPgtype(row.RedeemedAt),
		InvalidatedAt:         pgconv.TimePtrFromPgtype(row.InvalidatedAt),
		CreatedAt:             pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func RedemptionCodesFromRows(rows []sqlc.RedemptionCodes) []*redemption.RedemptionCode {
	out := make([]*redemption.RedemptionCode, 0, len(rows))
	for _, row := range rows {
		out = append(out, RedemptionCodeFromRow(row))
	}
	return out
}
