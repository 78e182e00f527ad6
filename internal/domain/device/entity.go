package device

import (
	"time"

	"github.com/google/uuid"
)

// Policy is the free-tier allotment per fingerprint over a rolling window.
type Policy struct {
	Limit  int32
	Window time.Duration
}

func DefaultPolicy() Policy {
	return Policy{Limit: 3, Window: 7 * 24 * time.Hour}
}

// WindowStartCutoff returns the latest week start that counts as expired at now.
func (p Policy) WindowStartCutoff(now time.Time) time.Time {
	return now.Add(-p.Window)
}

type Device struct {
	ID            uuid.UUID
	Fingerprint   string
	UsageCount    int32
	WeekStartedAt time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func New(fingerprint string, now time.Time) *Device {
	return &Device{
		ID:            uuid.New(),
		Fingerprint:   fingerprint,
		WeekStartedAt: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// WindowExpired reports whether elapsed time since the week start has reached the window.
func (d *Device) WindowExpired(p Policy, now time.Time) bool {
	return now.Sub(d.WeekStartedAt) >= p.Window
}

func (d *Device) ResetWindow(now time.Time) {
	d.UsageCount = 0
	d.WeekStartedAt = now
	d.UpdatedAt = now
}

func (d *Device) FreeRemaining(p Policy) int32 {
	remaining := p.Limit - d.UsageCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (d *Device) WeekResetsAt(p Policy) time.Time {
	return d.WeekStartedAt.Add(p.Window)
}
