package usecase

import (
	"context"
	"log/slog"
	"time"

	"coloring-api/internal/domain/device"
	"coloring-api/internal/domain/generation"
	"coloring-api/internal/domain/redemption"
	"coloring-api/internal/pkg/clock"
	"coloring-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CodeBalance struct {
	Code            string
	RemainingTokens int32
}

type Balance struct {
	FreeRemaining int32
	TokenBalance  int32
	// Nil while the fingerprint holds tokens; the free tier is not in play then.
	WeekResetDate *time.Time
	ActiveCode    *string
	ActiveCodes   []CodeBalance
}

func (b *Balance) CanGenerate() bool {
	return b.FreeRemaining > 0 || b.TokenBalance > 0
}

type FreeUsage struct {
	FreeRemaining int32
	FreeLimit     int32
	UsageCount    int32
	WeekResetDate time.Time
}

type ConsumeResult struct {
	Success      bool
	UsedFreeTier bool
	CodeID       *uuid.UUID
	Code         *string
}

type LedgerUseCase interface {
	GetBalance(ctx context.Context, fingerprint string, clientCodes []string) (*Balance, error)
	GetFreeUsage(ctx context.Context, fingerprint string) (*FreeUsage, error)
	Consume(ctx context.Context, fingerprint string, clientCodes []string, prompt string) (*ConsumeResult, error)
}

type ledgerUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy device.Policy
}

func NewLedgerUseCase(uow shared.UnitOfWork, clk clock.Clock, policy device.Policy) LedgerUseCase {
	return &ledgerUseCaseImpl{
		uow:    uow,
		clock:  clk,
		policy: policy,
	}
}

func (uc *ledgerUseCaseImpl) GetBalance(ctx context.Context, fingerprint string, clientCodes []string) (*Balance, error) {
	codes := NormalizeCodes(clientCodes)
	now := uc.clock.Now()

	var (
		dev    *device.Device
		usable []*redemption.RedemptionCode
	)
	err := uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		dev, derr = tx.Devices().GetOrCreate(ctx, fingerprint, uc.policy, now)
		if derr != nil {
			return derr
		}
		usable, derr = tx.Codes().FindUsable(ctx, fingerprint, codes)
		return derr
	})
	if err != nil {
		return nil, err
	}

	balance := &Balance{
		ActiveCodes: make([]CodeBalance, 0, len(usable)),
	}
	for _, c := range usable {
		balance.TokenBalance += c.RemainingTokens
		balance.ActiveCodes = append(balance.ActiveCodes, CodeBalance{
			Code:            c.Code.String(),
			RemainingTokens: c.RemainingTokens,
		})
	}
	if len(usable) > 0 {
		active := usable[0].Code.String()
		balance.ActiveCode = &active
	}

	if balance.TokenBalance > 0 {
		return balance, nil
	}

	balance.FreeRemaining = dev.FreeRemaining(uc.policy)
	resetAt := dev.WeekResetsAt(uc.policy)
	balance.WeekResetDate = &resetAt
	return balance, nil
}

func (uc *ledgerUseCaseImpl) GetFreeUsage(ctx context.Context, fingerprint string) (*FreeUsage, error) {
	now := uc.clock.Now()

	var dev *device.Device
	err := uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		dev, derr = tx.Devices().GetOrCreate(ctx, fingerprint, uc.policy, now)
		return derr
	})
	if err != nil {
		return nil, err
	}

	return &FreeUsage{
		FreeRemaining: dev.FreeRemaining(uc.policy),
		FreeLimit:     uc.policy.Limit,
		UsageCount:    dev.UsageCount,
		WeekResetDate: dev.WeekResetsAt(uc.policy),
	}, nil
}

// Consume spends one unit: tokens first, fullest code first, then the free tier.
// A lost race on one source falls through to the next; only total exhaustion reports Success=false.
func (uc *ledgerUseCaseImpl) Consume(ctx context.Context, fingerprint string, clientCodes []string, prompt string) (*ConsumeResult, error) {
	codes := NormalizeCodes(clientCodes)

	var result *ConsumeResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		result = &ConsumeResult{}

		usable, derr := tx.Codes().FindUsable(ctx, fingerprint, codes)
		if derr != nil {
			return derr
		}
		for _, c := range usable {
			ok, derr := tx.Codes().TryConsumeToken(ctx, c.ID)
			if derr != nil {
				return derr
			}
			if !ok {
				slog.DebugContext(ctx, "token consume lost race, falling through", "code_id", c.ID)
				continue
			}
			codeID := c.ID
			code := c.Code.String()
			result.Success = true
			result.CodeID = &codeID
			result.Code = &code
			return tx.Generations().Record(ctx, generation.NewFromCode(fingerprint, prompt, codeID, now))
		}

		if _, derr := tx.Devices().GetOrCreate(ctx, fingerprint, uc.policy, now); derr != nil {
			return derr
		}
		ok, derr := tx.Devices().TryConsumeFreeTier(ctx, fingerprint, uc.policy, now)
		if derr != nil {
			return derr
		}
		if !ok {
			return nil
		}
		result.Success = true
		result.UsedFreeTier = true
		return tx.Generations().Record(ctx, generation.NewFreeTier(fingerprint, prompt, now))
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// NormalizeCodes canonicalizes client-held codes, silently dropping malformed or duplicate entries.
func NormalizeCodes(raw []string) []redemption.Code {
	out := make([]redemption.Code, 0, len(raw))
	seen := make(map[redemption.Code]struct{}, len(raw))
	for _, s := range raw {
		code, err := redemption.Parse(s)
		if err != nil {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}
