package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"coloring-api/internal/handler/httperr"
	"coloring-api/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const ctxAdminSubjectKey = "admin_subject"

type AdminValidator interface {
	ValidateAdminToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	validator AdminValidator
}

func NewAuthMiddleware(validator AdminValidator) *AuthMiddleware {
	return &AuthMiddleware{
		validator: validator,
	}
}

// RequireAdmin accepts only bearer tokens carrying the admin role.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required", nil)
			return
		}
		token := strings.TrimSpace(authHeader[len("Bearer "):])

		claims, err := m.validator.ValidateAdminToken(token)
		if err != nil {
			slog.Warn("admin token rejected", "error", err.Error(), "client_ip", c.ClientIP())
			if errors.Is(err, jwt.ErrNotAdmin) {
				httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
				return
			}
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxAdminSubjectKey, claims.Subject)
		c.Next()
	}
}

func GetAdminSubject(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxAdminSubjectKey)
	if !exists {
		return "", false
	}
	subject, ok := v.(string)
	return subject, ok
}
