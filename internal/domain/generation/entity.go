package generation

import (
	"time"

	"github.com/google/uuid"
)

// Record is one audit row per successful consumption. RedemptionCodeID is nil for free-tier use.
type Record struct {
	ID               uuid.UUID
	Fingerprint      string
	RedemptionCodeID *uuid.UUID
	Prompt           string
	WasFreeTier      bool
	CreatedAt        time.Time
}

func NewFreeTier(fingerprint, prompt string, now time.Time) *Record {
	return &Record{
		ID:          uuid.New(),
		Fingerprint: fingerprint,
		Prompt:      prompt,
		WasFreeTier: true,
		CreatedAt:   now,
	}
}

func NewFromCode(fingerprint, prompt string, codeID uuid.UUID, now time.Time) *Record {
	return &Record{
		ID:               uuid.New(),
		Fingerprint:      fingerprint,
		RedemptionCodeID: &codeID,
		Prompt:           prompt,
		CreatedAt:        now,
	}
}
