//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"coloring-api/internal/handler/api"
	resdto "coloring-api/internal/handler/dto/response"
	"coloring-api/internal/handler/middleware"
	"coloring-api/internal/pkg/config"
	"coloring-api/internal/pkg/errs"
	"coloring-api/internal/usecase"
	"coloring-api/internal/usecase/queries"
	"coloring-api/tests/common/builder"
	"coloring-api/tests/common/httptest"
	queriesmock "coloring-api/tests/mock/queries"
	usecasemock "coloring-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testPublicURL = "https://color.example.com"

type PaymentHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockPayments  *usecasemock.MockPaymentUseCase
	mockPurchases *queriesmock.MockPurchaseQueries
	mockVerifier  *usecasemock.MockPaymentEventVerifier
	handler       *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPayments = usecasemock.NewMockPaymentUseCase(s.mockCtrl)
	s.mockPurchases = queriesmock.NewMockPurchaseQueries(s.mockCtrl)
	s.mockVerifier = usecasemock.NewMockPaymentEventVerifier(s.mockCtrl)

	cfg := config.Config{Server: config.ServerConfig{PublicURL: testPublicURL}}
	s.handler = api.NewPaymentHandler(s.mockPayments, s.mockPurchases, s.mockVerifier, cfg)

	s.router.POST("/api/checkout", middleware.Fingerprint(), s.handler.Checkout)
	s.router.GET("/api/purchases/:sessionId", s.handler.GetPurchase)
	s.router.POST("/api/webhooks/payment", s.handler.Webhook)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestCheckout() {
	url := "/api/checkout"
	purchaseID := uuid.New()

	s.Run("success: returns the checkout url and pending code", func() {
		s.mockPayments.EXPECT().InitiateCheckout(gomock.Any(), usecase.CheckoutRequest{
			PackType:      "family",
			Fingerprint:   testFingerprint,
			ReturnBaseURL: testPublicURL,
		}).Return(&usecase.CheckoutResult{
			Code:        "COLOR-7K3M-9QXD",
			PurchaseID:  purchaseID,
			CheckoutURL: "https://checkout.stripe.com/c/pay/cs_1",
			SessionID:   "cs_1",
		}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url,
			builder.NewCheckoutBuilder().BuildDTO(), fingerprintHeader)

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(resdto.CheckoutResponse{
			CheckoutURL: "https://checkout.stripe.com/c/pay/cs_1",
			Code:        "COLOR-7K3M-9QXD",
			PurchaseID:  purchaseID,
			SessionID:   "cs_1",
		}, response)
	})

	s.Run("success: body fingerprint overrides the header", func() {
		s.mockPayments.EXPECT().InitiateCheckout(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req usecase.CheckoutRequest) (*usecase.CheckoutResult, error) {
				s.Equal("fp-from-body", req.Fingerprint)
				s.Equal("classroom", req.PackType)
				return &usecase.CheckoutResult{PurchaseID: purchaseID, SessionID: "cs_2"}, nil
			})

		dto := builder.NewCheckoutBuilder().With(func(b *builder.CheckoutBuilder) {
			b.PackType = "classroom"
			b.Fingerprint = "fp-from-body"
		}).BuildDTO()
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, dto, fingerprintHeader)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on missing pack type", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, map[string]any{}, fingerprintHeader)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, []byte(`{"packType":`),
			map[string]string{"Content-Type": "application/json", middleware.FingerprintHeader: "fp-1"})
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		s.NotContains(body.Error.Message, "pack")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "unknown pack", usecaseError: errs.ErrInvalidPackType, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid pack type"},
			{name: "processor down", usecaseError: errs.Mark(errs.New("stripe 500"), errs.ErrCheckoutUnavailable), expectedStatus: http.StatusServiceUnavailable, expectedMsg: "Could not create checkout session"},
			{name: "internal", usecaseError: errs.ErrDatabaseOperationFailed, expectedStatus: http.StatusInternalServerError, expectedMsg: "Could not create checkout session"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockPayments.EXPECT().InitiateCheckout(gomock.Any(), gomock.Any()).Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url,
					builder.NewCheckoutBuilder().BuildDTO(), fingerprintHeader)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *PaymentHandlerTestSuite) TestGetPurchase() {
	s.Run("success", func() {
		purchaseID := uuid.New()
		s.mockPurchases.EXPECT().GetBySession(gomock.Any(), "cs_1").Return(&queries.PurchaseReceiptView{
			PurchaseID:     purchaseID,
			PurchaseStatus: "completed",
			PackType:       "family",
			Code:           "COLOR-7K3M-9QXD",
			Tokens:         110,
			CodeStatus:     "active",
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/purchases/cs_1", nil, "")

		var response resdto.ReceiptResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(resdto.ReceiptResponse{
			PurchaseID:     purchaseID,
			PurchaseStatus: "completed",
			PackType:       "family",
			Code:           "COLOR-7K3M-9QXD",
			Tokens:         110,
			CodeStatus:     "active",
		}, response)
	})

	s.Run("error: 404 on unknown session", func() {
		s.mockPurchases.EXPECT().GetBySession(gomock.Any(), "cs_missing").Return(nil, errs.ErrPurchaseNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/purchases/cs_missing", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Purchase not found")
	})
}

func (s *PaymentHandlerTestSuite) TestWebhook() {
	url := "/api/webhooks/payment"
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	signature := map[string]string{"Stripe-Signature": "t=1,v1=abc"}

	s.Run("success: verified event is handed to the usecase", func() {
		event := &usecase.PaymentEvent{ID: "evt_1", Type: usecase.EventCheckoutCompleted, SessionID: "cs_1"}
		s.mockVerifier.EXPECT().Verify(payload, "t=1,v1=abc").Return(event, nil)
		s.mockPayments.EXPECT().HandleEvent(gomock.Any(), *event).Return(nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, signature)
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("OK", rec.Body.String())
	})

	s.Run("error: verification failures", func() {
		testCases := []struct {
			name           string
			verifyError    error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "missing signature", verifyError: errs.ErrMissingSignature, expectedStatus: http.StatusBadRequest, expectedMsg: "Missing signature"},
			{name: "secret not configured", verifyError: errs.ErrWebhookNotConfigured, expectedStatus: http.StatusInternalServerError, expectedMsg: "Webhook not configured"},
			{name: "bad signature", verifyError: errs.Mark(errs.New("no valid signature"), errs.ErrInvalidSignature), expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid signature"},
			{name: "undecodable payload", verifyError: errs.New("unexpected end of JSON input"), expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid payload"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockVerifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(nil, tc.verifyError).Times(1)

				rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, signature)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: processing failures ask for redelivery", func() {
		testCases := []struct {
			name           string
			handleError    error
			expectedStatus int
		}{
			{name: "unknown purchase", handleError: errs.ErrPurchaseNotFound, expectedStatus: http.StatusNotFound},
			{name: "storage failure", handleError: errs.ErrDatabaseOperationFailed, expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockVerifier.EXPECT().Verify(gomock.Any(), gomock.Any()).
					Return(&usecase.PaymentEvent{ID: "evt_2", Type: usecase.EventCheckoutCompleted}, nil)
				s.mockPayments.EXPECT().HandleEvent(gomock.Any(), gomock.Any()).Return(tc.handleError)

				rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, signature)
				s.Equal(tc.expectedStatus, rec.Code)
			})
		}
	})
}
