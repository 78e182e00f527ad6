package shared

import (
	"context"
	"time"

	"coloring-api/internal/domain/device"
	"coloring-api/internal/domain/generation"
	"coloring-api/internal/domain/purchase"
	"coloring-api/internal/domain/redemption"

	"github.com/google/uuid"
)

// Conditional writes report (false, nil) when the guard did not match; only driver failures are errors.

type DeviceRepository interface {
	GetOrCreate(ctx context.Context, fingerprint string, policy device.Policy, now time.Time) (*device.Device, error)
	TryConsumeFreeTier(ctx context.Context, fingerprint string, policy device.Policy, now time.Time) (bool, error)
}

type RedemptionCodeRepository interface {
	Create(ctx context.Context, code *redemption.RedemptionCode) error
	FindByCode(ctx context.Context, code redemption.Code) (*redemption.RedemptionCode, error)
	FindByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]*redemption.RedemptionCode, error)
	// FindUsable returns usable codes listed by the client or bound to fingerprint, fullest first.
	FindUsable(ctx context.Context, fingerprint string, codes []redemption.Code) ([]*redemption.RedemptionCode, error)
	TryConsumeToken(ctx context.Context, codeID uuid.UUID) (bool, error)
	BindFingerprint(ctx context.Context, codeID uuid.UUID, fingerprint string, now time.Time) (bool, error)
	ActivateForPurchase(ctx context.Context, purchaseID uuid.UUID, fingerprint *string, now time.Time) (int64, error)
	InvalidateForPurchase(ctx context.Context, purchaseID uuid.UUID, now time.Time) (int64, error)
	DeletePendingForPurchase(ctx context.Context, purchaseID uuid.UUID) (int64, error)
}

type PurchaseCompletion struct {
	SessionID       string
	PaymentIntentID string
	Email           string
}

type PurchaseRepository interface {
	Create(ctx context.Context, p *purchase.Purchase) error
	AttachSession(ctx context.Context, id uuid.UUID, sessionID string, now time.Time) error
	FindByID(ctx context.Context, id uuid.UUID) (*purchase.Purchase, error)
	FindBySession(ctx context.Context, sessionID string) (*purchase.Purchase, error)
	FindByPaymentIntent(ctx context.Context, paymentIntentID string) (*purchase.Purchase, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, details PurchaseCompletion, now time.Time) (bool, error)
	MarkExpired(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	// ApplyRefund returns KindNotFound when the purchase is not in a refundable state.
	ApplyRefund(ctx context.Context, id uuid.UUID, refundedAmountCents int32, now time.Time) (*purchase.Purchase, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type GenerationRepository interface {
	Record(ctx context.Context, rec *generation.Record) error
}

type PaymentEventRepository interface {
	IsProcessed(ctx context.Context, eventID string) (bool, error)
	MarkProcessed(ctx context.Context, eventID, eventType string, now time.Time) error
}
