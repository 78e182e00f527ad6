package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	sentrygin "github.com/getsentry/sentry-go/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"coloring-api/internal/handler/api"
	"coloring-api/internal/handler/middleware"
	"coloring-api/internal/pkg/config"
	"coloring-api/internal/usecase"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine            *gin.Engine
	Config            config.Config
	Logger            *middleware.Logger
	Reporter          usecase.ErrorReporter
	Limiter           middleware.RateLimiter
	AuthMiddleware    *middleware.AuthMiddleware
	GenerationHandler *api.GenerationHandler
	UsageHandler      *api.UsageHandler
	PaymentHandler    *api.PaymentHandler
	AdminHandler      *api.AdminHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p)
	setupRoutes(p)
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	p.Engine.Use(p.Logger.LoggingMiddleware())
	p.Engine.Use(middleware.ErrorHandler(p.Reporter))
}

func setupRoutes(p RouterParams) {
	p.Engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		p.Engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := p.Engine.Group("/api")
	apiGroup.Use(middleware.RateLimit(p.Limiter, p.Config.RateLimit.Window, middleware.RateLimitRules(p.Config.RateLimit)))
	{
		device := apiGroup.Group("")
		device.Use(middleware.Fingerprint())
		addRoutes(device, []route{
			{Method: http.MethodPost, Path: "/generate", Handler: p.GenerationHandler.Generate},
			{Method: http.MethodPost, Path: "/redeem", Handler: p.UsageHandler.Redeem},
			{Method: http.MethodPost, Path: "/usage", Handler: p.UsageHandler.GetBalance},
			{Method: http.MethodGet, Path: "/usage", Handler: p.UsageHandler.GetFreeUsage},
			{Method: http.MethodPost, Path: "/checkout", Handler: p.PaymentHandler.Checkout},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/purchases/:sessionId", Handler: p.PaymentHandler.GetPurchase},
			{Method: http.MethodPost, Path: "/webhooks/payment", Handler: p.PaymentHandler.Webhook},
		})

		requireAdmin := []gin.HandlerFunc{p.AuthMiddleware.RequireAdmin()}
		addRoutes(apiGroup.Group("/admin"), []route{
			{Method: http.MethodPost, Path: "/codes", Handler: p.AdminHandler.IssueCode, Mw: requireAdmin},
			{Method: http.MethodGet, Path: "/codes/:code", Handler: p.AdminHandler.LookupCode, Mw: requireAdmin},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
