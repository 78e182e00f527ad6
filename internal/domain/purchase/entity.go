package purchase

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending           Status = "pending"
	StatusCompleted         Status = "completed"
	StatusRefunded          Status = "refunded"
	StatusPartiallyRefunded Status = "partially_refunded"
	StatusExpired           Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// IsTerminal is true for states that only accept refund-amount accumulation.
func (s Status) IsTerminal() bool {
	return s == StatusRefunded || s == StatusExpired
}

type Purchase struct {
	ID                    uuid.UUID
	StripeSessionID       *string
	StripePaymentIntentID *string
	Email                 *string
	PackType              PackType
	AmountCents           int32
	Currency              string
	Status                Status
	RefundedAmountCents   int32
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func NewPending(pack Pack, now time.Time) *Purchase {
	return &Purchase{
		ID:          uuid.New(),
		PackType:    pack.Type,
		AmountCents: pack.AmountCents,
		Currency:    pack.Currency,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// RefundOutcome folds a cumulative refunded amount into the purchase state.
// Amounts never decrease; a full refund is refundedTotal >= AmountCents.
func (p *Purchase) RefundOutcome(refundedTotal int32) (Status, int32, bool) {
	total := refundedTotal
	if p.RefundedAmountCents > total {
		total = p.RefundedAmountCents
	}
	if total >= p.AmountCents {
		return StatusRefunded, total, true
	}
	return StatusPartiallyRefunded, total, false
}
