package usecase

import (
	"context"
	"log/slog"
	"strings"

	"coloring-api/internal/domain/purchase"
	"coloring-api/internal/domain/redemption"
	"coloring-api/internal/infra"
	"coloring-api/internal/pkg/clock"
	"coloring-api/internal/pkg/errs"
	"coloring-api/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxCodeAttempts = 3

var errPurchaseExpired = errs.New("payment completed for an expired checkout")

type CheckoutRequest struct {
	PackType      string
	Fingerprint   string
	ReturnBaseURL string
}

type CheckoutResult struct {
	Code        string
	PurchaseID  uuid.UUID
	CheckoutURL string
	SessionID   string
}

type PaymentCompletion struct {
	SessionID       string
	PurchaseID      *uuid.UUID
	PaymentIntentID string
	Email           string
}

type PaymentUseCase interface {
	InitiateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
	CompletePayment(ctx context.Context, c PaymentCompletion) error
	ExpireCheckout(ctx context.Context, sessionID string) error
	RefundCharge(ctx context.Context, paymentIntentID string, refundedAmountCents int32) error
	HandleEvent(ctx context.Context, event PaymentEvent) error
}

type paymentUseCaseImpl struct {
	uow      shared.UnitOfWork
	gateway  CheckoutGateway
	catalog  *purchase.Catalog
	reporter ErrorReporter
	clock    clock.Clock
}

func NewPaymentUseCase(uow shared.UnitOfWork, gateway CheckoutGateway, catalog *purchase.Catalog, reporter ErrorReporter, clk clock.Clock) PaymentUseCase {
	return &paymentUseCaseImpl{
		uow:      uow,
		gateway:  gateway,
		catalog:  catalog,
		reporter: reporter,
		clock:    clk,
	}
}

// InitiateCheckout persists a pending purchase and a pending code pre-bound to the buyer,
// then opens the processor session. A failed session open deletes both rows again.
func (uc *paymentUseCaseImpl) InitiateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	pack, err := uc.catalog.Lookup(req.PackType)
	if err != nil {
		return nil, errs.ErrInvalidPackType
	}

	p, code, err := uc.createPending(ctx, pack, strings.TrimSpace(req.Fingerprint))
	if err != nil {
		return nil, err
	}

	base := strings.TrimRight(req.ReturnBaseURL, "/")
	session, err := uc.gateway.CreateSession(ctx, CheckoutSessionRequest{
		PurchaseID:  p.ID,
		Pack:        pack,
		Code:        code.Code.String(),
		Fingerprint: req.Fingerprint,
		SuccessURL:  base + "/purchase/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   base + "/purchase/cancelled",
	})
	if err != nil {
		slog.ErrorContext(ctx, "checkout session creation failed",
			"purchase_id", p.ID,
			"pack_type", pack.Type,
			"error", err.Error())
		uc.compensate(ctx, p.ID)
		return nil, errs.Mark(err, errs.ErrCheckoutUnavailable)
	}

	err = uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Purchases().AttachSession(ctx, p.ID, session.ID, uc.clock.Now())
	})
	if err != nil {
		// Completion can still resolve the purchase through client_reference_id.
		slog.ErrorContext(ctx, "failed to attach checkout session",
			"purchase_id", p.ID,
			"session_id", session.ID,
			"error", err.Error())
		uc.reporter.CaptureException(ctx, err)
	}

	return &CheckoutResult{
		Code:        code.Code.String(),
		PurchaseID:  p.ID,
		CheckoutURL: session.URL,
		SessionID:   session.ID,
	}, nil
}

func (uc *paymentUseCaseImpl) createPending(ctx context.Context, pack purchase.Pack, fingerprint string) (*purchase.Purchase, *redemption.RedemptionCode, error) {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		generated, err := redemption.Generate()
		if err != nil {
			return nil, nil, err
		}

		now := uc.clock.Now()
		p := purchase.NewPending(pack, now)
		code, err := redemption.NewPending(generated, pack.Tokens, p.ID, fingerprint, now)
		if err != nil {
			return nil, nil, err
		}

		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if derr := tx.Purchases().Create(ctx, p); derr != nil {
				return derr
			}
			return tx.Codes().Create(ctx, code)
		})
		if err == nil {
			return p, code, nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		slog.WarnContext(ctx, "redemption code collision, regenerating", "attempt", attempt)
	}
	return nil, nil, errs.Mark(errs.New("could not allocate a unique redemption code"), errs.ErrDatabaseOperationFailed)
}

func (uc *paymentUseCaseImpl) compensate(ctx context.Context, purchaseID uuid.UUID) {
	ctx = context.WithoutCancel(ctx)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Codes().DeletePendingForPurchase(ctx, purchaseID); derr != nil {
			return derr
		}
		return tx.Purchases().Delete(ctx, purchaseID)
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to roll back pending checkout", "purchase_id", purchaseID, "error", err.Error())
		uc.reporter.CaptureException(ctx, err)
	}
}

func (uc *paymentUseCaseImpl) CompletePayment(ctx context.Context, c PaymentCompletion) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		p, err := uc.findForCompletion(ctx, tx, c)
		if err != nil {
			return err
		}

		if p.Status == purchase.StatusExpired {
			slog.ErrorContext(ctx, "payment completed for expired purchase",
				"purchase_id", p.ID,
				"session_id", c.SessionID)
			uc.reporter.CaptureException(ctx, errs.Wrap(errPurchaseExpired, p.ID.String()))
			return nil
		}

		updated, err := tx.Purchases().MarkCompleted(ctx, p.ID, shared.PurchaseCompletion{
			SessionID:       c.SessionID,
			PaymentIntentID: c.PaymentIntentID,
			Email:           c.Email,
		}, now)
		if err != nil {
			return err
		}
		if !updated {
			slog.InfoContext(ctx, "purchase not completable, ignoring", "purchase_id", p.ID, "status", p.Status)
			return nil
		}

		activated, err := tx.Codes().ActivateForPurchase(ctx, p.ID, nil, now)
		if err != nil {
			return err
		}
		slog.InfoContext(ctx, "payment completed",
			"purchase_id", p.ID,
			"session_id", c.SessionID,
			"codes_activated", activated)
		return nil
	})
}

func (uc *paymentUseCaseImpl) findForCompletion(ctx context.Context, tx shared.Tx, c PaymentCompletion) (*purchase.Purchase, error) {
	if c.SessionID != "" {
		p, err := tx.Purchases().FindBySession(ctx, c.SessionID)
		if err == nil {
			return p, nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
	}
	if c.PurchaseID != nil {
		p, err := tx.Purchases().FindByID(ctx, *c.PurchaseID)
		if err == nil {
			return p, nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
	}
	slog.WarnContext(ctx, "purchase not found for completed session", "session_id", c.SessionID)
	return nil, errs.ErrPurchaseNotFound
}

func (uc *paymentUseCaseImpl) ExpireCheckout(ctx context.Context, sessionID string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Purchases().FindBySession(ctx, sessionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				slog.WarnContext(ctx, "purchase not found for expired session", "session_id", sessionID)
				return errs.ErrPurchaseNotFound
			}
			return err
		}

		if p.Status != purchase.StatusPending {
			slog.InfoContext(ctx, "expired session already settled, ignoring",
				"purchase_id", p.ID,
				"status", p.Status)
			return nil
		}

		expired, err := tx.Purchases().MarkExpired(ctx, p.ID, uc.clock.Now())
		if err != nil || !expired {
			return err
		}
		deleted, err := tx.Codes().DeletePendingForPurchase(ctx, p.ID)
		if err != nil {
			return err
		}
		slog.InfoContext(ctx, "checkout expired", "purchase_id", p.ID, "codes_deleted", deleted)
		return nil
	})
}

// RefundCharge answers ErrPurchaseNotFound until completion has recorded the payment
// intent, so a refund delivered ahead of its completion is redelivered instead of lost.
func (uc *paymentUseCaseImpl) RefundCharge(ctx context.Context, paymentIntentID string, refundedAmountCents int32) error {
	if paymentIntentID == "" {
		slog.WarnContext(ctx, "refund without payment intent, ignoring")
		return nil
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		p, err := tx.Purchases().FindByPaymentIntent(ctx, paymentIntentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				slog.WarnContext(ctx, "purchase not found for refunded charge", "payment_intent_id", paymentIntentID)
				return errs.ErrPurchaseNotFound
			}
			return err
		}
		if p.Status == purchase.StatusPending {
			slog.WarnContext(ctx, "refund for purchase not yet completed", "purchase_id", p.ID)
			return errs.ErrPurchaseNotFound
		}

		updated, err := tx.Purchases().ApplyRefund(ctx, p.ID, refundedAmountCents, now)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				slog.WarnContext(ctx, "refund for purchase in non-refundable state",
					"purchase_id", p.ID,
					"status", p.Status)
				return nil
			}
			return err
		}

		if updated.Status != purchase.StatusRefunded {
			slog.InfoContext(ctx, "partial refund recorded",
				"purchase_id", p.ID,
				"refunded_cents", updated.RefundedAmountCents)
			return nil
		}

		invalidated, err := tx.Codes().InvalidateForPurchase(ctx, p.ID, now)
		if err != nil {
			return err
		}
		slog.InfoContext(ctx, "full refund, codes invalidated", "purchase_id", p.ID, "codes", invalidated)
		return nil
	})
}

// HandleEvent applies a verified event once. The event id is recorded only after its
// transition committed, so a failed delivery is retried by the processor.
func (uc *paymentUseCaseImpl) HandleEvent(ctx context.Context, event PaymentEvent) error {
	if event.ID != "" {
		var processed bool
		err := uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
			var derr error
			processed, derr = tx.PaymentEvents().IsProcessed(ctx, event.ID)
			return derr
		})
		if err != nil {
			return err
		}
		if processed {
			slog.InfoContext(ctx, "payment event already processed", "event_id", event.ID, "type", event.Type)
			return nil
		}
	}

	var err error
	switch event.Type {
	case EventCheckoutCompleted:
		err = uc.CompletePayment(ctx, PaymentCompletion{
			SessionID:       event.SessionID,
			PurchaseID:      event.PurchaseID,
			PaymentIntentID: event.PaymentIntentID,
			Email:           event.Email,
		})
	case EventCheckoutExpired:
		err = uc.ExpireCheckout(ctx, event.SessionID)
	case EventChargeRefunded:
		err = uc.RefundCharge(ctx, event.PaymentIntentID, event.RefundedAmountCents)
	default:
		slog.DebugContext(ctx, "ignoring payment event", "event_id", event.ID, "type", event.Type)
		return nil
	}
	if err != nil {
		return err
	}

	if event.ID == "" {
		return nil
	}
	return uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.PaymentEvents().MarkProcessed(ctx, event.ID, string(event.Type), uc.clock.Now())
	})
}
