// internal/app/handlers/health_handler.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"calculator-service/internal/common/database"
)

// HealthHandler reports process liveness and backing-store readiness.
type HealthHandler struct {
	version  string
	postgres *database.PostgresClient
	redis    *database.RedisClient
}

func NewHealthHandler(version string, postgres *database.PostgresClient, redis *database.RedisClient) *HealthHandler {
	return &HealthHandler{version: version, postgres: postgres, redis: redis}
}

// Health handles GET /health. Degraded dependencies turn the overall
// status to 503 so orchestrators stop routing traffic here.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	components := gin.H{}
	healthy := true

	if h.postgres != nil {
		if err := h.postgres.Ping(ctx); err != nil {
			components["postgres"] = "down"
			healthy = false
		} else {
			components["postgres"] = "up"
		}
	}
	if h.redis != nil {
		if err := h.redis.Ping(ctx); err != nil {
			components["redis"] = "down"
			healthy = false
		} else {
			components["redis"] = "up"
		}
	}

	status := http.StatusOK
	overall := "up"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "down"
	}

	c.JSON(status, gin.H{
		"status":     overall,
		"version":    h.version,
		"components": components,
	})
}
