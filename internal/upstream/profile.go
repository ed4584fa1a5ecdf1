// internal/upstream/profile.go
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"calculator-service/internal/common/config"
	"calculator-service/internal/common/database"
	"calculator-service/internal/common/logger"
	"calculator-service/internal/common/metrics"
	"calculator-service/internal/models"
)

// ProfileClient reads financial profiles from the asset service, with a
// Redis read-through cache in front. Cache failures never fail a
// lookup; they fall back to a direct fetch.
type ProfileClient struct {
	baseClient
	cache    *database.RedisClient
	cacheTTL time.Duration
}

func NewProfileClient(cfg config.ServiceConfig, cacheCfg config.CacheConfig, cache *database.RedisClient, log logger.Logger) *ProfileClient {
	return &ProfileClient{
		baseClient: newBaseClient("asset-service", cfg, log),
		cache:      cache,
		cacheTTL:   time.Duration(cacheCfg.ProfileTTL) * time.Second,
	}
}

func profileCacheKey(userID string) string {
	return fmt.Sprintf("profile:%s", userID)
}

// GetFinancialProfile returns the user's registered financial profile.
// A user who never registered one yields NotFound; only hits are
// cached, so a later registration becomes visible immediately.
func (c *ProfileClient) GetFinancialProfile(ctx context.Context, userID string) (*models.FinancialProfile, error) {
	if profile, ok := c.fromCache(ctx, userID); ok {
		return profile, nil
	}

	var profile models.FinancialProfile
	path := fmt.Sprintf("/users/%s/financial-profile", userID)
	if err := c.getJSON(ctx, path, "financial profile", userID, &profile); err != nil {
		return nil, err
	}

	c.toCache(ctx, userID, &profile)
	return &profile, nil
}

func (c *ProfileClient) fromCache(ctx context.Context, userID string) (*models.FinancialProfile, bool) {
	if c.cache == nil {
		return nil, false
	}

	raw, err := c.cache.Get(ctx, profileCacheKey(userID))
	if err != nil {
		if err != redis.Nil {
			metrics.ProfileCacheHits.WithLabelValues("error").Inc()
			c.logger.Warn("profile cache read failed", map[string]interface{}{
				"userId": userID,
				"error":  err.Error(),
			})
		} else {
			metrics.ProfileCacheHits.WithLabelValues("miss").Inc()
		}
		return nil, false
	}

	var profile models.FinancialProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		metrics.ProfileCacheHits.WithLabelValues("error").Inc()
		c.logger.Warn("profile cache entry corrupt, refetching", map[string]interface{}{
			"userId": userID,
		})
		return nil, false
	}

	metrics.ProfileCacheHits.WithLabelValues("hit").Inc()
	return &profile, true
}

func (c *ProfileClient) toCache(ctx context.Context, userID string, profile *models.FinancialProfile) {
	if c.cache == nil {
		return
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, profileCacheKey(userID), data, c.cacheTTL); err != nil {
		c.logger.Warn("profile cache write failed", map[string]interface{}{
			"userId": userID,
			"error":  err.Error(),
		})
	}
}
