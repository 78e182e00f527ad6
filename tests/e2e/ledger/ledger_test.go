//go:build e2e

package ledger_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"coloring-api/internal/domain/redemption"
	reqdto "coloring-api/internal/handler/dto/request"
	resdto "coloring-api/internal/handler/dto/response"
	"coloring-api/internal/handler/middleware"
	"coloring-api/tests/common/builder"
	"coloring-api/tests/common/dbtest"
	"coloring-api/tests/common/httptest"
	"coloring-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	generateURL = "/api/generate"
	usageURL    = "/api/usage"
	redeemURL   = "/api/redeem"
)

type LedgerSuite struct {
	e2e.SharedSuite
}

func TestLedgerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(LedgerSuite))
}

func device(fp string) map[string]string {
	return map[string]string{middleware.FingerprintHeader: fp}
}

// =============================================================================
// TestFreeTier - weekly free allotment per fingerprint
// =============================================================================

func (s *LedgerSuite) TestFreeTier() {
	s.Run("Normal case: three free pages, then the device needs tokens", func() {
		t := s.T()
		fp := device("fp-free-1")

		for want := int32(2); want >= 0; want-- {
			w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, generateURL, builder.NewGenerateBuilder().BuildDTO(), fp)
			var res resdto.GenerateResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			require.True(t, res.Success)
			require.Equal(t, want, res.Usage.FreeRemaining)
			require.NotEmpty(t, res.Image.ImageData)
		}

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, generateURL, builder.NewGenerateBuilder().BuildDTO(), fp)
		body := httptest.AssertErrorResponse(t, w, http.StatusPaymentRequired, "No generations remaining")
		require.True(t, body.NeedsTokens)

		require.Equal(t, int32(3), dbtest.DeviceUsage(t, s.DB, "fp-free-1"))
		require.Equal(t, 3, dbtest.CountGenerations(t, s.DB, "fp-free-1"))

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodGet, usageURL, nil, fp)
		var usage resdto.UsageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &usage)
		require.Equal(t, int32(0), usage.FreeRemaining)
		require.NotNil(t, usage.WeekResetDate)
		require.True(t, usage.WeekResetDate.After(time.Now()))
	})

	s.Run("Normal case: an elapsed week restores the allotment", func() {
		t := s.T()
		dbtest.SetDeviceUsage(t, s.DB, "fp-free-2", 3, time.Now().Add(-8*24*time.Hour))

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, usageURL, reqdto.UsageRequest{}, device("fp-free-2"))
		var usage resdto.UsageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &usage)
		require.Equal(t, int32(3), usage.FreeRemaining)
	})

	s.Run("Error case: a failed generation consumes nothing", func() {
		t := s.T()
		s.Generator.SetFail(true)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, generateURL, builder.NewGenerateBuilder().BuildDTO(), device("fp-free-3"))
		httptest.AssertErrorResponse(t, w, http.StatusBadGateway, "")

		require.Equal(t, int32(0), dbtest.DeviceUsage(t, s.DB, "fp-free-3"))
		require.Equal(t, 0, dbtest.CountGenerations(t, s.DB, "fp-free-3"))
	})

	s.Run("Error case: invalid prompt is rejected before the balance check", func() {
		t := s.T()
		dto := builder.NewGenerateBuilder().With(func(b *builder.GenerateBuilder) {
			b.Prompt = "   "
		}).BuildDTO()

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, generateURL, dto, device("fp-free-4"))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

// =============================================================================
// TestTokens - redemption codes and token spending
// =============================================================================

func (s *LedgerSuite) TestTokens() {
	s.Run("Normal case: redeemed tokens are spent before the free tier", func() {
		t := s.T()
		fp := device("fp-token-1")
		code := dbtest.CreateActiveCode(t, s.DB, 2, nil)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, redeemURL, reqdto.RedeemRequest{Code: code.Code}, fp)
		var redeemed resdto.RedeemResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &redeemed)
		require.Equal(t, code.Code, redeemed.Code)
		require.Equal(t, int32(2), redeemed.RemainingTokens)
		require.Equal(t, int32(2), redeemed.Usage.TokenBalance)
		require.Equal(t, int32(0), redeemed.Usage.FreeRemaining, "free tier is suppressed while tokens are held")

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, generateURL, builder.NewGenerateBuilder().BuildDTO(), fp)
		var res resdto.GenerateResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, int32(1), res.Usage.TokenBalance)

		require.Equal(t, int32(1), dbtest.RemainingTokens(t, s.DB, code.Code))
		require.Equal(t, int32(0), dbtest.DeviceUsage(t, s.DB, "fp-token-1"))
	})

	s.Run("Normal case: a code held by the client works from another device", func() {
		t := s.T()
		code := dbtest.CreateActiveCode(t, s.DB, 1, nil)
		dbtest.SetDeviceUsage(t, s.DB, "fp-token-2", 3, time.Now())

		dto := builder.NewGenerateBuilder().WithCodes(code.Code).BuildDTO()
		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, generateURL, dto, device("fp-token-2"))
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		require.Equal(t, int32(0), dbtest.RemainingTokens(t, s.DB, code.Code))
	})

	s.Run("Error case: redeem failures", func() {
		t := s.T()
		exhausted := dbtest.CreateActiveCode(t, s.DB, 1, nil)
		_, err := s.DB.Exec(context.Background(), "UPDATE redemption_codes SET remaining_tokens = 0 WHERE id = $1", exhausted.ID)
		require.NoError(t, err)

		unknown, err := redemption.Generate()
		require.NoError(t, err)

		testCases := []struct {
			name           string
			code           string
			expectedStatus int
			expectedMsg    string
		}{
			{name: "malformed", code: "not-a-code", expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid code format"},
			{name: "unknown", code: unknown.String(), expectedStatus: http.StatusNotFound, expectedMsg: "Code not found"},
			{name: "exhausted", code: exhausted.Code, expectedStatus: http.StatusBadRequest, expectedMsg: "This code has no remaining tokens"},
		}

		for _, tc := range testCases {
			w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, redeemURL, reqdto.RedeemRequest{Code: tc.code}, device("fp-token-3"))
			httptest.AssertErrorResponse(t, w, tc.expectedStatus, tc.expectedMsg)
		}
	})
}
