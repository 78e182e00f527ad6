package api

import (
	"io"
	"log/slog"
	"net/http"

	reqdto "coloring-api/internal/handler/dto/request"
	resdto "coloring-api/internal/handler/dto/response"
	"coloring-api/internal/handler/httperr"
	"coloring-api/internal/handler/middleware"
	"coloring-api/internal/pkg/config"
	"coloring-api/internal/pkg/errs"
	"coloring-api/internal/usecase"
	"coloring-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	signatureHeader = "Stripe-Signature"
	maxWebhookBody  = 512 << 10
)

type PaymentHandler struct {
	payments      usecase.PaymentUseCase
	purchases     queries.PurchaseQueries
	verifier      usecase.PaymentEventVerifier
	returnBaseURL string
}

func NewPaymentHandler(payments usecase.PaymentUseCase, purchases queries.PurchaseQueries, verifier usecase.PaymentEventVerifier, cfg config.Config) *PaymentHandler {
	return &PaymentHandler{
		payments:      payments,
		purchases:     purchases,
		verifier:      verifier,
		returnBaseURL: cfg.Server.PublicURL,
	}
}

// @Summary Start checkout
// @Description Create a pending purchase and code, and open a hosted checkout session
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/checkout [post]
func (h *PaymentHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	fingerprint := middleware.GetFingerprint(c, req.Fingerprint)
	result, err := h.payments.InitiateCheckout(c.Request.Context(), req.ToUseCase(fingerprint, h.returnBaseURL))
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidPackType):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pack type", nil)
		case errs.Is(err, errs.ErrCheckoutUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Could not create checkout session", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Could not create checkout session", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}

// @Summary Get purchase receipt
// @Description Code and status for a checkout session, for the success page
// @Tags payments
// @Produce json
// @Param sessionId path string true "Checkout session ID"
// @Success 200 {object} resdto.ReceiptResponse
// @Failure 404 {object} httperr.Response
// @Router /api/purchases/{sessionId} [get]
func (h *PaymentHandler) GetPurchase(c *gin.Context) {
	receipt, err := h.purchases.GetBySession(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		if errs.Is(err, errs.ErrPurchaseNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Purchase not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response, err := resdto.FromReceiptView(receipt)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Payment webhook
// @Description Signed payment processor events; answers non-2xx so the processor redelivers
// @Tags payments
// @Accept json
// @Produce plain
// @Param Stripe-Signature header string true "Webhook signature"
// @Success 200 {string} string "OK"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/webhooks/payment [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Could not read payload", nil)
		return
	}

	event, err := h.verifier.Verify(payload, c.GetHeader(signatureHeader))
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrMissingSignature):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing signature", nil)
		case errs.Is(err, errs.ErrWebhookNotConfigured):
			slog.Error("webhook received but secret is not configured")
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Webhook not configured", nil)
		case errs.Is(err, errs.ErrInvalidSignature):
			slog.Warn("webhook signature verification failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid signature", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payload", nil)
		}
		return
	}

	if err := h.payments.HandleEvent(c.Request.Context(), *event); err != nil {
		slog.ErrorContext(c.Request.Context(), "webhook processing failed",
			"event_id", event.ID,
			"type", event.Type,
			"error", err.Error())
		if errs.Is(err, errs.ErrPurchaseNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Purchase not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Webhook handler failed", nil)
		return
	}

	c.String(http.StatusOK, "OK")
}
