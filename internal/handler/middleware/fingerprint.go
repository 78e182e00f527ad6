package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	FingerprintHeader    = "X-Device-Fingerprint"
	ctxFingerprintKey    = "device_fingerprint"
	maxFingerprintLength = 128
)

// Fingerprint resolves the device identity once per request: the client header
// when present, otherwise a hash of client IP and user agent.
func Fingerprint() gin.HandlerFunc {
	return func(c *gin.Context) {
		fp := strings.TrimSpace(c.GetHeader(FingerprintHeader))
		if fp == "" || len(fp) > maxFingerprintLength {
			fp = ServerFingerprint(c.ClientIP(), c.Request.UserAgent())
		}
		c.Set(ctxFingerprintKey, fp)
		c.Next()
	}
}

func ServerFingerprint(ip, userAgent string) string {
	ua := strings.TrimSpace(userAgent)
	if ua == "" {
		ua = "unknown"
	}
	sum := sha256.Sum256([]byte(normalizeIP(ip) + ":" + ua))
	return "srv_" + hex.EncodeToString(sum[:])[:32]
}

func normalizeIP(ip string) string {
	ip = strings.TrimSpace(ip)
	if ip == "::1" || ip == "::ffff:127.0.0.1" {
		return "127.0.0.1"
	}
	return ip
}

// GetFingerprint returns the resolved fingerprint, or override when the caller supplied one in the body.
func GetFingerprint(c *gin.Context, override string) string {
	if o := strings.TrimSpace(override); o != "" && len(o) <= maxFingerprintLength {
		return o
	}
	if v, ok := c.Get(ctxFingerprintKey); ok {
		if fp, ok := v.(string); ok {
			return fp
		}
	}
	return ServerFingerprint(c.ClientIP(), c.Request.UserAgent())
}
