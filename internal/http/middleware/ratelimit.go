package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"feedback_dashboard/internal/http/dto"
	"feedback_dashboard/internal/http/resp"
	"feedback_dashboard/internal/ratelimit"
)

// RateLimit keys buckets by client IP.
func RateLimit(limiter *ratelimit.Limiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if limiter.Allow(ip) {
			c.Next()
			return
		}
		logger.Warn("rate limit exceeded", zap.String("client_ip", ip), zap.String("path", c.Request.URL.Path))
		c.Header("Retry-After", "1")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{Code: resp.CodeRateLimited, Message: "rate limit exceeded"})
	}
}
