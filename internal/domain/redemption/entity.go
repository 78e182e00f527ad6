package redemption

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidTokenCount = errors.New("token count must be positive")

type Status string

const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
)

func (s Status) String() string {
	return string(s)
}

// RedemptionCode tracks lifecycle stage (Status) and the refund kill-switch (InvalidatedAt)
// as separate axes: a code can be active and invalidated at the same time.
type RedemptionCode struct {
	ID                    uuid.UUID
	Code                  Code
	InitialTokens         int32
	RemainingTokens       int32
	Status                Status
	PurchaseID            *uuid.UUID
	RedeemedByFingerprint *string
	RedeemedAt            *time.Time
	InvalidatedAt         *time.Time
	CreatedAt             time.Time
}

// NewPending creates a code awaiting payment, optionally pre-bound to the buyer's device.
func NewPending(code Code, tokens int32, purchaseID uuid.UUID, fingerprint string, now time.Time) (*RedemptionCode, error) {
	if tokens <= 0 {
		return nil, ErrInvalidTokenCount
	}
	rc := &RedemptionCode{
		ID:              uuid.New(),
		Code:            code,
		InitialTokens:   tokens,
		RemainingTokens: tokens,
		Status:          StatusPending,
		PurchaseID:      &purchaseID,
		CreatedAt:       now,
	}
	if fingerprint != "" {
		rc.RedeemedByFingerprint = &fingerprint
	}
	return rc, nil
}

// NewComplimentary creates an immediately active code with no owning purchase.
func NewComplimentary(code Code, tokens int32, fingerprint string, now time.Time) (*RedemptionCode, error) {
	if tokens <= 0 {
		return nil, ErrInvalidTokenCount
	}
	rc := &RedemptionCode{
		ID:              uuid.New(),
		Code:            code,
		InitialTokens:   tokens,
		RemainingTokens: tokens,
		Status:          StatusActive,
		CreatedAt:       now,
	}
	if fingerprint != "" {
		rc.RedeemedByFingerprint = &fingerprint
		rc.RedeemedAt = &now
	}
	return rc, nil
}

func (c *RedemptionCode) IsInvalidated() bool {
	return c.InvalidatedAt != nil
}

func (c *RedemptionCode) IsRedeemable() bool {
	return c.Status == StatusActive && !c.IsInvalidated()
}

func (c *RedemptionCode) IsUsable() bool {
	return c.IsRedeemable() && c.RemainingTokens > 0
}

func (c *RedemptionCode) IsBound() bool {
	return c.RedeemedByFingerprint != nil
}
