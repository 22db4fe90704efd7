package middleware

import (
	"net/http"

	"employee-facade/internal/infrastructure/ratelimit"
	"employee-facade/internal/shared/response"
	"employee-facade/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RateLimit throttles callers by client IP before they reach the upstream's shared budget.
// A limiter error lets the request through.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := GetClientIP(c)

		allowed, err := limiter.Allow(c.Request.Context(), ip)
		if err != nil {
			logger.FromContext(c.Request.Context()).Warn().
				Err(err).
				Str("ip", ip).
				Msg("Rate limiter unavailable, allowing request")
		}

		if !allowed {
			c.Header("Retry-After", "60")
			response.AbortWithError(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
			return
		}

		c.Next()
	}
}
