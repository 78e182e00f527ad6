package usecase

import (
	"context"
	"log/slog"
	"time"

	"coloring-api/internal/domain/redemption"
	"coloring-api/internal/infra"
	"coloring-api/internal/pkg/clock"
	"coloring-api/internal/pkg/errs"
	"coloring-api/internal/usecase/shared"

	"github.com/google/uuid"
)

const MaxComplimentaryTokens = 500

var ErrInvalidTokenAmount = errs.Mark(errs.New("tokens must be between 1 and 500"), errs.ErrDomainValidation)

type CodeDetails struct {
	ID                    uuid.UUID
	Code                  string
	InitialTokens         int32
	RemainingTokens       int32
	Status                string
	Invalidated           bool
	PurchaseID            *uuid.UUID
	RedeemedByFingerprint *string
	RedeemedAt            *time.Time
	InvalidatedAt         *time.Time
	CreatedAt             time.Time
}

type SupportUseCase interface {
	IssueComplimentaryCode(ctx context.Context, tokens int32, fingerprint string) (*CodeDetails, error)
	LookupCode(ctx context.Context, code string) (*CodeDetails, error)
}

type supportUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSupportUseCase(uow shared.UnitOfWork, clk clock.Clock) SupportUseCase {
	return &supportUseCaseImpl{
		uow:   uow,
		clock: clk,
	}
}

func (uc *supportUseCaseImpl) IssueComplimentaryCode(ctx context.Context, tokens int32, fingerprint string) (*CodeDetails, error) {
	if tokens <= 0 || tokens > MaxComplimentaryTokens {
		return nil, ErrInvalidTokenAmount
	}

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		generated, err := redemption.Generate()
		if err != nil {
			return nil, err
		}
		rc, err := redemption.NewComplimentary(generated, tokens, fingerprint, uc.clock.Now())
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}

		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Codes().Create(ctx, rc)
		})
		if err == nil {
			slog.InfoContext(ctx, "complimentary code issued", "code_id", rc.ID, "tokens", tokens)
			return toCodeDetails(rc), nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil, errs.Mark(errs.New("could not allocate a unique redemption code"), errs.ErrDatabaseOperationFailed)
}

func (uc *supportUseCaseImpl) LookupCode(ctx context.Context, raw string) (*CodeDetails, error) {
	code, err := redemption.Parse(raw)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCode)
	}

	var rc *redemption.RedemptionCode
	err = uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		rc, derr = tx.Codes().FindByCode(ctx, code)
		return derr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCodeNotFound
		}
		return nil, err
	}
	return toCodeDetails(rc), nil
}

func toCodeDetails(rc *redemption.RedemptionCode) *CodeDetails {
	return &CodeDetails{
		ID:                    rc.ID,
		Code:                  rc.Code.String(),
		InitialTokens:         rc.InitialTokens,
		RemainingTokens:       rc.RemainingTokens,
		Status:                rc.Status.String(),
		Invalidated:           rc.IsInvalidated(),
		PurchaseID:            rc.PurchaseID,
		RedeemedByFingerprint: rc.RedeemedByFingerprint,
		RedeemedAt:            rc.RedeemedAt,
		InvalidatedAt:         rc.InvalidatedAt,
		CreatedAt:             rc.CreatedAt,
	}
}
