package api

import (
	"net/http"

	reqdto "coloring-api/internal/handler/dto/request"
	resdto "coloring-api/internal/handler/dto/response"
	"coloring-api/internal/handler/httperr"
	"coloring-api/internal/handler/middleware"
	"coloring-api/internal/pkg/errs"
	"coloring-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UsageHandler struct {
	ledger usecase.LedgerUseCase
	redeem usecase.RedeemUseCase
}

func NewUsageHandler(ledger usecase.LedgerUseCase, redeem usecase.RedeemUseCase) *UsageHandler {
	return &UsageHandler{
		ledger: ledger,
		redeem: redeem,
	}
}

// @Summary Get balance
// @Description Free-tier and token balance for the device and the codes it holds
// @Tags usage
// @Accept json
// @Produce json
// @Param X-Device-Fingerprint header string false "Device fingerprint"
// @Param request body reqdto.UsageRequest false "Codes held by the client"
// @Success 200 {object} resdto.UsageResponse
// @Failure 400 {object} httperr.Response
// @Router /api/usage [post]
func (h *UsageHandler) GetBalance(c *gin.Context) {
	var req reqdto.UsageRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}

	balance, err := h.ledger.GetBalance(c.Request.Context(), middleware.GetFingerprint(c, ""), req.Codes)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	response, err := resdto.FromBalance(balance)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get free-tier usage
// @Description Free-tier only view; token fields are always empty
// @Tags usage
// @Produce json
// @Param X-Device-Fingerprint header string false "Device fingerprint"
// @Success 200 {object} resdto.UsageResponse
// @Router /api/usage [get]
func (h *UsageHandler) GetFreeUsage(c *gin.Context) {
	usage, err := h.ledger.GetFreeUsage(c.Request.Context(), middleware.GetFingerprint(c, ""))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFreeUsage(usage))
}

// @Summary Redeem code
// @Description Validate a redemption code and bind it to the device
// @Tags usage
// @Accept json
// @Produce json
// @Param request body reqdto.RedeemRequest true "Redeem request"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/redeem [post]
func (h *UsageHandler) Redeem(c *gin.Context) {
	var req reqdto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing code", nil)
		return
	}

	result, err := h.redeem.Redeem(c.Request.Context(), req.Code, middleware.GetFingerprint(c, req.Fingerprint))
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidCode):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid code format", nil)
		case errs.Is(err, errs.ErrCodeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Code not found, payment pending, or code has been invalidated", nil)
		case errs.Is(err, errs.ErrCodeExhausted):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "This code has no remaining tokens", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response, err := resdto.FromRedeemResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, response)
}
