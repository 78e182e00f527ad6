package payment

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"time"

	"coloring-api/internal/pkg/config"
	"coloring-api/internal/pkg/errs"
	"coloring-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
)

var ErrGatewayNotConfigured = errs.New("stripe secret key not configured")

type StripeGateway struct {
	client session.Client
}

// NewStripeGateway uses the default API backend when backend is nil.
func NewStripeGateway(cfg config.PaymentConfig, backend stripe.Backend) *StripeGateway {
	if backend == nil {
		backend = stripe.GetBackend(stripe.APIBackend)
	}
	return &StripeGateway{client: session.Client{B: backend, Key: cfg.StripeSecretKey}}
}

func (g *StripeGateway) CreateSession(ctx context.Context, req usecase.CheckoutSessionRequest) (*usecase.CheckoutSession, error) {
	if g.client.Key == "" {
		return nil, ErrGatewayNotConfigured
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:         []*stripe.CheckoutSessionLineItemParams{lineItem(req)},
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		ClientReferenceID: stripe.String(req.PurchaseID.String()),
	}
	params.Context = ctx
	params.AddMetadata("packType", string(req.Pack.Type))
	params.AddMetadata("tokens", strconv.Itoa(int(req.Pack.Tokens)))
	params.AddMetadata("fingerprint", req.Fingerprint)
	params.AddMetadata("code", req.Code)

	s, err := g.client.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create stripe checkout session")
	}
	return &usecase.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

// lineItem prefers the configured price and falls back to inline price data.
func lineItem(req usecase.CheckoutSessionRequest) *stripe.CheckoutSessionLineItemParams {
	item := &stripe.CheckoutSessionLineItemParams{Quantity: stripe.Int64(1)}
	if req.Pack.PriceID != "" {
		item.Price = stripe.String(req.Pack.PriceID)
		return item
	}
	item.PriceData = &stripe.CheckoutSessionLineItemPriceDataParams{
		Currency:   stripe.String(req.Pack.Currency),
		UnitAmount: stripe.Int64(int64(req.Pack.AmountCents)),
		ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name:        stripe.String(req.Pack.Name),
			Description: stripe.String(req.Pack.Description),
		},
	}
	return item
}

type WebhookVerifier struct {
	secret string
}

func NewWebhookVerifier(cfg config.PaymentConfig) *WebhookVerifier {
	return &WebhookVerifier{secret: cfg.StripeWebhookSecret}
}

// Verify checks the Stripe-Signature header and extracts the fields of the
// event types the ledger reacts to. Other types come back with only ID and Type set.
func (v *WebhookVerifier) Verify(payload []byte, signature string) (*usecase.PaymentEvent, error) {
	if signature == "" {
		return nil, errs.ErrMissingSignature
	}
	if v.secret == "" {
		return nil, errs.ErrWebhookNotConfigured
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "stripe signature verification failed"), errs.ErrInvalidSignature)
	}

	out := &usecase.PaymentEvent{
		ID:        event.ID,
		Type:      usecase.PaymentEventType(event.Type),
		CreatedAt: time.Unix(event.Created, 0).UTC(),
	}
	if event.Data == nil {
		return out, nil
	}

	switch out.Type {
	case usecase.EventCheckoutCompleted, usecase.EventCheckoutExpired:
		var s stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
			return nil, errs.Wrap(err, "failed to decode checkout session")
		}
		out.SessionID = s.ID
		if id, err := uuid.Parse(s.ClientReferenceID); err == nil {
			out.PurchaseID = &id
		}
		if s.PaymentIntent != nil {
			out.PaymentIntentID = s.PaymentIntent.ID
		}
		switch {
		case s.CustomerDetails != nil && s.CustomerDetails.Email != "":
			out.Email = s.CustomerDetails.Email
		default:
			out.Email = s.CustomerEmail
		}
	case usecase.EventChargeRefunded:
		var ch stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &ch); err != nil {
			return nil, errs.Wrap(err, "failed to decode charge")
		}
		if ch.PaymentIntent != nil {
			out.PaymentIntentID = ch.PaymentIntent.ID
		}
		out.RefundedAmountCents = clampCents(ch.AmountRefunded)
	}
	return out, nil
}

func clampCents(v int64) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < 0:
		return 0
	default:
		return int32(v)
	}
}
