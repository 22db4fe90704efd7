package middleware

import (
	"employee-facade/internal/shared/utils"
	"employee-facade/pkg/logger"

	"github.com/gin-gonic/gin"
)

const ClientIPKey = "client_ip"

// ClientIPMiddleware resolves the caller address once per request.
// Register it before Logger and RateLimit, which both read it.
func ClientIPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := utils.ExtractClientIP(c)

		c.Set(ClientIPKey, clientIP)
		c.Request = c.Request.WithContext(
			logger.WithContext(c.Request.Context(), map[string]interface{}{ClientIPKey: clientIP}),
		)

		c.Next()
	}
}

// GetClientIP returns the address stored by ClientIPMiddleware, resolving it if the middleware did not run.
func GetClientIP(c *gin.Context) string {
	if ip := c.GetString(ClientIPKey); ip != "" {
		return ip
	}
	return utils.ExtractClientIP(c)
}
