package usecase

import (
	"context"
	"log/slog"

	"coloring-api/internal/domain/redemption"
	"coloring-api/internal/infra"
	"coloring-api/internal/pkg/clock"
	"coloring-api/internal/pkg/errs"
	"coloring-api/internal/usecase/shared"
)

type RedeemResult struct {
	Code            string
	RemainingTokens int32
	Usage           *Balance
}

type RedeemUseCase interface {
	Redeem(ctx context.Context, code, fingerprint string) (*RedeemResult, error)
}

type redeemUseCaseImpl struct {
	uow    shared.UnitOfWork
	ledger LedgerUseCase
	clock  clock.Clock
}

func NewRedeemUseCase(uow shared.UnitOfWork, ledger LedgerUseCase, clk clock.Clock) RedeemUseCase {
	return &redeemUseCaseImpl{
		uow:    uow,
		ledger: ledger,
		clock:  clk,
	}
}

func (uc *redeemUseCaseImpl) Redeem(ctx context.Context, raw, fingerprint string) (*RedeemResult, error) {
	code, err := redemption.Parse(raw)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCode)
	}

	var rc *redemption.RedemptionCode
	err = uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		rc, derr = tx.Codes().FindByCode(ctx, code)
		if derr != nil {
			return derr
		}
		if !rc.IsRedeemable() {
			return errs.ErrCodeNotFound
		}
		if rc.RemainingTokens <= 0 {
			return errs.ErrCodeExhausted
		}
		if rc.IsBound() {
			return nil
		}
		bound, derr := tx.Codes().BindFingerprint(ctx, rc.ID, fingerprint, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if bound {
			slog.InfoContext(ctx, "redemption code bound", "code_id", rc.ID)
		}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCodeNotFound
		}
		return nil, err
	}

	usage, err := uc.ledger.GetBalance(ctx, fingerprint, []string{code.String()})
	if err != nil {
		return nil, err
	}

	return &RedeemResult{
		Code:            code.String(),
		RemainingTokens: rc.RemainingTokens,
		Usage:           usage,
	}, nil
}
