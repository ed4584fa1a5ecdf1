// internal/upstream/housing.go
package upstream

import (
	"context"
	"fmt"

	"calculator-service/internal/common/config"
	"calculator-service/internal/common/logger"
	"calculator-service/internal/models"
)

// HousingClient reads housing listings from the housing service.
// Listings are scoped to their owner, so a foreign housingId looks like
// NotFound rather than leaking another user's listing.
type HousingClient struct {
	baseClient
}

func NewHousingClient(cfg config.ServiceConfig, log logger.Logger) *HousingClient {
	return &HousingClient{baseClient: newBaseClient("housing-service", cfg, log)}
}

func (c *HousingClient) GetHousing(ctx context.Context, userID, housingID string) (*models.HousingListing, error) {
	var listing models.HousingListing
	path := fmt.Sprintf("/users/%s/housings/%s", userID, housingID)
	if err := c.getJSON(ctx, path, "housing", housingID, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}
