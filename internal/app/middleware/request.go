// internal/app/middleware/request.go
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"calculator-service/internal/common/logger"
)

// RequestIDKey is the gin context key for the per-request id.
const RequestIDKey = "requestId"

const requestIDHeader = "X-Request-Id"

// RequestDetails assigns a request id (honoring one supplied by the
// gateway) and logs request completion with timing.
func RequestDetails(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)

		start := time.Now()
		c.Next()

		log.Info("request completed", map[string]interface{}{
			"requestId":  requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"durationMs": time.Since(start).Milliseconds(),
			"clientIp":   c.ClientIP(),
		})
	}
}
