//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"coloring-api/internal/handler/httperr"
	"coloring-api/internal/handler/middleware"
	"coloring-api/internal/pkg/errs"
	"coloring-api/tests/common/httptest"
	usecasemock "coloring-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	errBoom := errs.New("boom")

	newRouter := func(reporter *usecasemock.MockErrorReporter) *gin.Engine {
		r := gin.New()
		r.Use(middleware.CustomRecovery(), middleware.ErrorHandler(reporter))
		r.GET("/server", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusBadGateway, errBoom, "Could not create your coloring page", nil)
		})
		r.GET("/client", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.New("bad"), "Please enter a description!", nil)
		})
		r.GET("/unwritten", func(c *gin.Context) {
			_ = c.Error(gin.Error{Err: errBoom, Type: gin.ErrorTypePublic, Meta: httperr.New(http.StatusConflict, "conflict")})
		})
		r.GET("/private", func(c *gin.Context) {
			_ = c.Error(errBoom)
		})
		r.GET("/panic", func(c *gin.Context) {
			panic("kaboom")
		})
		return r
	}

	t.Run("server errors are reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := usecasemock.NewMockErrorReporter(ctrl)
		reporter.EXPECT().CaptureException(gomock.Any(), errBoom).Times(1)

		rec := httptest.PerformRequest(t, newRouter(reporter), http.MethodGet, "/server", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadGateway, "Could not create your coloring page")
	})

	t.Run("client errors are not reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := usecasemock.NewMockErrorReporter(ctrl)

		rec := httptest.PerformRequest(t, newRouter(reporter), http.MethodGet, "/client", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Please enter a description!")
	})

	t.Run("unwritten public error is rendered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := usecasemock.NewMockErrorReporter(ctrl)

		rec := httptest.PerformRequest(t, newRouter(reporter), http.MethodGet, "/unwritten", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "conflict")
	})

	t.Run("private error becomes a generic 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := usecasemock.NewMockErrorReporter(ctrl)

		rec := httptest.PerformRequest(t, newRouter(reporter), http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("panic is recovered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := usecasemock.NewMockErrorReporter(ctrl)

		rec := httptest.PerformRequest(t, newRouter(reporter), http.MethodGet, "/panic", nil, "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
