package converter

import (
	"coloring-api/internal/domain/purchase"
	sqlc "coloring-api/internal/infra/sqlc/generated"
	"coloring-api/internal/pkg/pgconv"
)

func PurchaseToCreateParams(p *purchase.Purchase) sqlc.CreatePurchaseParams {
	return sqlc.CreatePurchaseParams{
		ID:              p.ID,
		StripeSessionID: pgconv.StringPtrToPgtype(p.StripeSessionID),
		PackType:        string(p.PackType),
		AmountCents:     p.AmountCents,
		Currency:        p.Currency,
		Status:          p.Status.String(),
		CreatedAt:       pgconv.TimeToPgtype(p.CreatedAt),
	}
}

func PurchaseFromRow(row sqlc.Purchases) *purchase.Purchase {
	return &purchase.Purchase{
		ID:                    row.ID,
		StripeSessionID:       pgconv.StringPtrFromPgtype(row.StripeSessionID),
		StripePaymentIntentID: pgconv.StringPtrFromPgtype(row.StripePaymentIntentID),
		Email:                 pgconv.StringPtrFromPgtype(row.Email),
		PackType:              purchase.PackType(row.PackType),
		AmountCents:           row.AmountCents,
		Currency:              row.Currency,
		Status:                purchase.Status(row.Status),
		RefundedAmountCents:   row.RefundedAmountCents,
		CreatedAt:             pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:             pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
