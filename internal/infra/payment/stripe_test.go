//go:build unit

package payment

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coloring-api/internal/domain/purchase"
	"coloring-api/internal/pkg/config"
	"coloring-api/internal/pkg/errs"
	"coloring-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const testWebhookSecret = "whsec_test"

func newTestGateway(t *testing.T, key string, handler http.HandlerFunc) *StripeGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		HTTPClient:        srv.Client(),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return NewStripeGateway(config.PaymentConfig{StripeSecretKey: key}, backend)
}

func checkoutRequest(t *testing.T, priceIDs map[string]string) usecase.CheckoutSessionRequest {
	t.Helper()
	pack, err := purchase.NewCatalog(priceIDs).Lookup("family")
	require.NoError(t, err)
	return usecase.CheckoutSessionRequest{
		PurchaseID:  uuid.MustParse("7b6f0c1e-2f4a-4a59-9d55-0c1f4f3b2a10"),
		Pack:        pack,
		Code:        "COLOR-7K3M-9QXD",
		Fingerprint: "fp-1",
		SuccessURL:  "https://example.com/purchase/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   "https://example.com/purchase/cancelled",
	}
}

func TestStripeGateway_CreateSession(t *testing.T) {
	t.Run("configured price", func(t *testing.T) {
		gw := newTestGateway(t, "sk_test_1", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
			assert.Equal(t, "Bearer sk_test_1", r.Header.Get("Authorization"))
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "payment", r.PostForm.Get("mode"))
			assert.Equal(t, "price_family", r.PostForm.Get("line_items[0][price]"))
			assert.Equal(t, "1", r.PostForm.Get("line_items[0][quantity]"))
			assert.Equal(t, "7b6f0c1e-2f4a-4a59-9d55-0c1f4f3b2a10", r.PostForm.Get("client_reference_id"))
			assert.Equal(t, "family", r.PostForm.Get("metadata[packType]"))
			assert.Equal(t, "110", r.PostForm.Get("metadata[tokens]"))
			assert.Equal(t, "fp-1", r.PostForm.Get("metadata[fingerprint]"))
			assert.Equal(t, "https://example.com/purchase/cancelled", r.PostForm.Get("cancel_url"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`))
		})

		s, err := gw.CreateSession(context.Background(), checkoutRequest(t, map[string]string{"family": "price_family"}))
		require.NoError(t, err)
		assert.Equal(t, &usecase.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/pay/cs_test_1"}, s)
	})

	t.Run("inline price data without a price id", func(t *testing.T) {
		gw := newTestGateway(t, "sk_test_1", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Empty(t, r.PostForm.Get("line_items[0][price]"))
			assert.Equal(t, "usd", r.PostForm.Get("line_items[0][price_data][currency]"))
			assert.Equal(t, "999", r.PostForm.Get("line_items[0][price_data][unit_amount]"))
			assert.Equal(t, "Family Pack", r.PostForm.Get("line_items[0][price_data][product_data][name]"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"cs_test_2","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_2"}`))
		})

		s, err := gw.CreateSession(context.Background(), checkoutRequest(t, nil))
		require.NoError(t, err)
		assert.Equal(t, "cs_test_2", s.ID)
	})

	t.Run("api error", func(t *testing.T) {
		gw := newTestGateway(t, "sk_test_1", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"No such price"}}`))
		})

		_, err := gw.CreateSession(context.Background(), checkoutRequest(t, map[string]string{"family": "price_missing"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "No such price")
	})

	t.Run("missing secret key", func(t *testing.T) {
		gw := NewStripeGateway(config.PaymentConfig{}, nil)

		_, err := gw.CreateSession(context.Background(), checkoutRequest(t, nil))
		assert.True(t, errs.Is(err, ErrGatewayNotConfigured))
	})
}

func signed(t *testing.T, payload string) ([]byte, string) {
	t.Helper()
	sp := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	})
	return sp.Payload, sp.Header
}

func eventJSON(id, typ, object string) string {
	return fmt.Sprintf(`{"id":%q,"object":"event","type":%q,"created":1741000000,"api_version":"2020-08-27","data":{"object":%s}}`, id, typ, object)
}

func TestWebhookVerifier_Verify(t *testing.T) {
	v := NewWebhookVerifier(config.PaymentConfig{StripeWebhookSecret: testWebhookSecret})
	purchaseID := uuid.MustParse("7b6f0c1e-2f4a-4a59-9d55-0c1f4f3b2a10")

	t.Run("checkout completed", func(t *testing.T) {
		payload, header := signed(t, eventJSON("evt_1", "checkout.session.completed", `{
			"id":"cs_1","object":"checkout.session",
			"client_reference_id":"7b6f0c1e-2f4a-4a59-9d55-0c1f4f3b2a10",
			"payment_intent":"pi_1",
			"customer_details":{"email":"parent@example.com"}
		}`))

		ev, err := v.Verify(payload, header)
		require.NoError(t, err)
		assert.Equal(t, &usecase.PaymentEvent{
			ID:              "evt_1",
			Type:            usecase.EventCheckoutCompleted,
			SessionID:       "cs_1",
			PurchaseID:      &purchaseID,
			PaymentIntentID: "pi_1",
			Email:           "parent@example.com",
			CreatedAt:       time.Unix(1741000000, 0).UTC(),
		}, ev)
	})

	t.Run("customer email fallback and bad reference", func(t *testing.T) {
		payload, header := signed(t, eventJSON("evt_2", "checkout.session.completed", `{
			"id":"cs_2","object":"checkout.session",
			"client_reference_id":"not-a-uuid",
			"customer_email":"buyer@example.com"
		}`))

		ev, err := v.Verify(payload, header)
		require.NoError(t, err)
		assert.Nil(t, ev.PurchaseID)
		assert.Empty(t, ev.PaymentIntentID)
		assert.Equal(t, "buyer@example.com", ev.Email)
	})

	t.Run("checkout expired", func(t *testing.T) {
		payload, header := signed(t, eventJSON("evt_3", "checkout.session.expired", `{"id":"cs_3","object":"checkout.session"}`))

		ev, err := v.Verify(payload, header)
		require.NoError(t, err)
		assert.Equal(t, usecase.EventCheckoutExpired, ev.Type)
		assert.Equal(t, "cs_3", ev.SessionID)
	})

	t.Run("charge refunded", func(t *testing.T) {
		payload, header := signed(t, eventJSON("evt_4", "charge.refunded", `{
			"id":"ch_1","object":"charge","payment_intent":"pi_1","amount":999,"amount_refunded":500
		}`))

		ev, err := v.Verify(payload, header)
		require.NoError(t, err)
		assert.Equal(t, usecase.EventChargeRefunded, ev.Type)
		assert.Equal(t, "pi_1", ev.PaymentIntentID)
		assert.Equal(t, int32(500), ev.RefundedAmountCents)
	})

	t.Run("refunded amount beyond int32 is clamped", func(t *testing.T) {
		payload, header := signed(t, eventJSON("evt_8", "charge.refunded", `{
			"id":"ch_8","object":"charge","payment_intent":"pi_8","amount":5000000000,"amount_refunded":5000000000
		}`))

		ev, err := v.Verify(payload, header)
		require.NoError(t, err)
		assert.Equal(t, int32(math.MaxInt32), ev.RefundedAmountCents)
	})

	t.Run("unhandled type", func(t *testing.T) {
		payload, header := signed(t, eventJSON("evt_5", "customer.created", `{"id":"cus_1","object":"customer"}`))

		ev, err := v.Verify(payload, header)
		require.NoError(t, err)
		assert.Equal(t, usecase.PaymentEventType("customer.created"), ev.Type)
		assert.Empty(t, ev.SessionID)
	})

	t.Run("missing signature", func(t *testing.T) {
		_, err := v.Verify([]byte(`{}`), "")
		assert.True(t, errs.Is(err, errs.ErrMissingSignature))
	})

	t.Run("tampered payload", func(t *testing.T) {
		_, header := signed(t, eventJSON("evt_6", "checkout.session.expired", `{"id":"cs_6"}`))

		_, err := v.Verify([]byte(eventJSON("evt_6", "checkout.session.expired", `{"id":"cs_other"}`)), header)
		assert.True(t, errs.Is(err, errs.ErrInvalidSignature))
	})

	t.Run("secret not configured", func(t *testing.T) {
		payload, header := signed(t, eventJSON("evt_7", "checkout.session.expired", `{"id":"cs_7"}`))

		_, err := NewWebhookVerifier(config.PaymentConfig{}).Verify(payload, header)
		assert.True(t, errs.Is(err, errs.ErrWebhookNotConfigured))
	})
}

func TestClampCents(t *testing.T) {
	tests := []struct {
		in   int64
		want int32
	}{
		{in: 0, want: 0},
		{in: 999, want: 999},
		{in: math.MaxInt32, want: math.MaxInt32},
		{in: math.MaxInt32 + 1, want: math.MaxInt32},
		{in: -5, want: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clampCents(tt.in), tt.in)
	}
}
