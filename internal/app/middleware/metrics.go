// internal/app/middleware/metrics.go
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"calculator-service/internal/common/observability"
)

// RequestMetrics records per-request counters and latency through the
// otel meter. Route is the matched template, not the raw path, so
// cardinality stays bounded.
func RequestMetrics(obs *observability.Observability) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		ctx := c.Request.Context()
		obs.RecordRequest(ctx, route, c.Request.Method, c.Writer.Status())
		obs.RecordRequestDuration(ctx, route, time.Since(start))
	}
}
