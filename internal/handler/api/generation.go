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

type GenerationHandler struct {
	generation usecase.GenerationUseCase
}

func NewGenerationHandler(generation usecase.GenerationUseCase) *GenerationHandler {
	return &GenerationHandler{
		generation: generation,
	}
}

// @Summary Generate coloring page
// @Description Generate (or edit) a coloring page, consuming one token or free-tier unit on success
// @Tags generation
// @Accept json
// @Produce json
// @Param X-Device-Fingerprint header string false "Device fingerprint"
// @Param request body reqdto.GenerateRequest true "Generation request"
// @Success 200 {object} resdto.GenerateResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /api/generate [post]
func (h *GenerationHandler) Generate(c *gin.Context) {
	var req reqdto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Please tell us what you would like to color!", nil)
		return
	}

	fingerprint := middleware.GetFingerprint(c, "")
	result, err := h.generation.Generate(c.Request.Context(), req.ToUseCase(fingerprint))
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrPromptRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Please enter a description!", nil)
		case errs.Is(err, usecase.ErrPromptTooLong):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Description too long (max 200 characters)", nil)
		case errs.Is(err, usecase.ErrSourceImageMissing):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Please choose a page to edit", nil)
		case errs.Is(err, errs.ErrInsufficientBalance):
			resp := httperr.New(http.StatusPaymentRequired, "No generations remaining")
			resp.NeedsTokens = true
			httperr.Abort(c, err, resp)
		case errs.Is(err, errs.ErrGenerationTimeout):
			httperr.AbortWithError(c, http.StatusGatewayTimeout, err, "Creating your page took too long. Please try again!", nil)
		case errs.Is(err, errs.ErrGenerationFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Could not create your coloring page", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Something went wrong. Please try again!", nil)
		}
		return
	}

	response, err := resdto.FromGenerateResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Something went wrong. Please try again!", nil)
		return
	}
	c.JSON(http.StatusOK, response)
}
