package api

import (
	"log/slog"
	"net/http"

	reqdto "coloring-api/internal/handler/dto/request"
	resdto "coloring-api/internal/handler/dto/response"
	"coloring-api/internal/handler/httperr"
	"coloring-api/internal/handler/middleware"
	"coloring-api/internal/pkg/errs"
	"coloring-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	support usecase.SupportUseCase
}

func NewAdminHandler(support usecase.SupportUseCase) *AdminHandler {
	return &AdminHandler{support: support}
}

// @Summary Issue complimentary code
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssueCodeRequest true "Issue request"
// @Success 201 {object} resdto.CodeDetailsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/codes [post]
func (h *AdminHandler) IssueCode(c *gin.Context) {
	var req reqdto.IssueCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	details, err := h.support.IssueComplimentaryCode(c.Request.Context(), req.Tokens, req.Fingerprint)
	if err != nil {
		if errs.Is(err, errs.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	subject, _ := middleware.GetAdminSubject(c)
	slog.InfoContext(c.Request.Context(), "support code issued",
		"issued_by", subject,
		"code_id", details.ID,
		"tokens", details.InitialTokens)

	response, err := resdto.FromCodeDetails(details)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// @Summary Look up code
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param code path string true "Redemption code"
// @Success 200 {object} resdto.CodeDetailsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/codes/{code} [get]
func (h *AdminHandler) LookupCode(c *gin.Context) {
	details, err := h.support.LookupCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidCode):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid code format", nil)
		case errs.Is(err, errs.ErrCodeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Code not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response, err := resdto.FromCodeDetails(details)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, response)
}
