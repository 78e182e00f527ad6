//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"coloring-api/internal/handler/api"
	reqdto "coloring-api/internal/handler/dto/request"
	resdto "coloring-api/internal/handler/dto/response"
	"coloring-api/internal/handler/middleware"
	"coloring-api/internal/pkg/errs"
	"coloring-api/internal/usecase"
	"coloring-api/tests/common/httptest"
	usecasemock "coloring-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UsageHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockLedger *usecasemock.MockLedgerUseCase
	mockRedeem *usecasemock.MockRedeemUseCase
	handler    *api.UsageHandler
}

func (s *UsageHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockLedger = usecasemock.NewMockLedgerUseCase(s.mockCtrl)
	s.mockRedeem = usecasemock.NewMockRedeemUseCase(s.mockCtrl)
	s.handler = api.NewUsageHandler(s.mockLedger, s.mockRedeem)

	s.router.Use(middleware.Fingerprint())
	s.router.POST("/api/usage", s.handler.GetBalance)
	s.router.GET("/api/usage", s.handler.GetFreeUsage)
	s.router.POST("/api/redeem", s.handler.Redeem)
}

func (s *UsageHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUsageHandlerSuite(t *testing.T) {
	suite.Run(t, new(UsageHandlerTestSuite))
}

func (s *UsageHandlerTestSuite) TestGetBalance() {
	s.Run("success: token holder sees suppressed free tier", func() {
		active := "COLOR-7K3M-9QXD"
		s.mockLedger.EXPECT().GetBalance(gomock.Any(), testFingerprint, []string{"COLOR-7K3M-9QXD", "junk"}).
			Return(&usecase.Balance{
				TokenBalance: 12,
				ActiveCode:   &active,
				ActiveCodes:  []usecase.CodeBalance{{Code: active, RemainingTokens: 12}},
			}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/api/usage",
			reqdto.UsageRequest{Codes: []string{"COLOR-7K3M-9QXD", "junk"}}, fingerprintHeader)

		var response resdto.UsageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		want := resdto.UsageResponse{
			TokenBalance: 12,
			ActiveCode:   &active,
			ActiveCodes:  []resdto.CodeBalanceResponse{{Code: active, RemainingTokens: 12}},
		}
		s.Empty(cmp.Diff(want, response))
		s.Contains(rec.Body.String(), `"weekResetDate":null`)
	})

	s.Run("success: empty body is a free-tier only lookup", func() {
		s.mockLedger.EXPECT().GetBalance(gomock.Any(), testFingerprint, gomock.Nil()).
			Return(&usecase.Balance{FreeRemaining: 3}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/api/usage", nil, fingerprintHeader)

		var response resdto.UsageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int32(3), response.FreeRemaining)
		s.Contains(rec.Body.String(), `"activeCodes":[]`)
	})

	s.Run("error: 500 on storage failure", func() {
		s.mockLedger.EXPECT().GetBalance(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errs.ErrDatabaseOperationFailed)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/api/usage", reqdto.UsageRequest{}, fingerprintHeader)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *UsageHandlerTestSuite) TestGetFreeUsage() {
	reset := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s.mockLedger.EXPECT().GetFreeUsage(gomock.Any(), testFingerprint).
		Return(&usecase.FreeUsage{FreeRemaining: 1, FreeLimit: 3, UsageCount: 2, WeekResetDate: reset}, nil)

	rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, "/api/usage", nil, fingerprintHeader)

	var response resdto.UsageResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(int32(1), response.FreeRemaining)
	s.Equal(int32(0), response.TokenBalance)
	s.Nil(response.ActiveCode)
	s.Require().NotNil(response.WeekResetDate)
	s.True(reset.Equal(*response.WeekResetDate))
}

func (s *UsageHandlerTestSuite) TestRedeem() {
	url := "/api/redeem"

	s.Run("success: returns remaining tokens and usage", func() {
		s.mockRedeem.EXPECT().Redeem(gomock.Any(), "color 7k3m 9qxd", testFingerprint).
			Return(&usecase.RedeemResult{
				Code:            "COLOR-7K3M-9QXD",
				RemainingTokens: 50,
				Usage:           &usecase.Balance{TokenBalance: 50},
			}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url,
			reqdto.RedeemRequest{Code: "color 7k3m 9qxd"}, fingerprintHeader)

		var response resdto.RedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal("COLOR-7K3M-9QXD", response.Code)
		s.Equal(int32(50), response.RemainingTokens)
		s.Equal(int32(50), response.Usage.TokenBalance)
	})

	s.Run("success: body fingerprint overrides the header", func() {
		s.mockRedeem.EXPECT().Redeem(gomock.Any(), "COLOR-7K3M-9QXD", "fp-from-body").
			Return(&usecase.RedeemResult{Code: "COLOR-7K3M-9QXD", RemainingTokens: 1, Usage: &usecase.Balance{}}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url,
			reqdto.RedeemRequest{Code: "COLOR-7K3M-9QXD", Fingerprint: "fp-from-body"}, fingerprintHeader)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on missing code", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, map[string]any{}, fingerprintHeader)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing code")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "malformed", usecaseError: errs.Mark(errs.New("bad checksum"), errs.ErrInvalidCode), expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid code format"},
			{name: "unknown or pending", usecaseError: errs.ErrCodeNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Code not found"},
			{name: "exhausted", usecaseError: errs.ErrCodeExhausted, expectedStatus: http.StatusBadRequest, expectedMsg: "no remaining tokens"},
			{name: "internal", usecaseError: errs.New("boom"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockRedeem.EXPECT().Redeem(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url,
					reqdto.RedeemRequest{Code: "COLOR-7K3M-9QXD"}, fingerprintHeader)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
