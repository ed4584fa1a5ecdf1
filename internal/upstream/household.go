// internal/upstream/household.go
package upstream

import (
	"context"
	"fmt"

	"calculator-service/internal/common/config"
	"calculator-service/internal/common/logger"
	"calculator-service/internal/models"
)

// HouseholdClient reads household membership from the household
// service.
type HouseholdClient struct {
	baseClient
}

func NewHouseholdClient(cfg config.ServiceConfig, log logger.Logger) *HouseholdClient {
	return &HouseholdClient{baseClient: newBaseClient("household-service", cfg, log)}
}

// GetHouseholdMembers lists the members of the user's household,
// excluding the user themself. A user without a household yields an
// empty list, not an error.
func (c *HouseholdClient) GetHouseholdMembers(ctx context.Context, userID string) ([]models.HouseholdMember, error) {
	var payload struct {
		Members []models.HouseholdMember `json:"members"`
	}
	path := fmt.Sprintf("/users/%s/household/members", userID)
	err := c.getJSON(ctx, path, "household", userID, &payload)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return payload.Members, nil
}
