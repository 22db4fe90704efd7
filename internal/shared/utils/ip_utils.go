package utils

import (
	"github.com/gin-gonic/gin"
)

// ExtractClientIP returns the caller address used for logs and the inbound throttle key.
//
// Forwarding headers (X-Forwarded-For, X-Real-IP) are honoured only when the
// socket peer is one of the engine's trusted proxies; otherwise the peer is the client.
func ExtractClientIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "127.0.0.1"
}
