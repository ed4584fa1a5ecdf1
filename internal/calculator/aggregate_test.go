// internal/calculator/aggregate_test.go
package calculator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "calculator-service/internal/common/errors"
	"calculator-service/internal/common/logger"
	"calculator-service/internal/models"
)

// fakeProfileSource serves canned profiles keyed by user id. Users
// outside the map yield NotFound; forcedErr overrides everything.
type fakeProfileSource struct {
	profiles  map[string]*models.FinancialProfile
	forcedErr map[string]error
}

func (f *fakeProfileSource) GetFinancialProfile(_ context.Context, userID string) (*models.FinancialProfile, error) {
	if err, ok := f.forcedErr[userID]; ok {
		return nil, err
	}
	if p, ok := f.profiles[userID]; ok {
		return p, nil
	}
	return nil, apperrors.NewNotFoundError("financial profile", userID)
}

func profileWith(userID string, assets, income int64) *models.FinancialProfile {
	return &models.FinancialProfile{
		UserID:         userID,
		Assets:         []models.MoneyItem{{ID: "a1", Name: "savings", Amount: assets}},
		MonthlyIncomes: []models.MoneyItem{{ID: "i1", Name: "salary", Amount: income}},
	}
}

func TestAggregate_RequesterOnly(t *testing.T) {
	source := &fakeProfileSource{profiles: map[string]*models.FinancialProfile{
		"user-1": profileWith("user-1", 600_000_000, 4_000_000),
	}}
	agg := NewAggregator(source, logger.NewNoOpLogger())

	combined, err := agg.Aggregate(context.Background(), "user-1", nil)

	require.NoError(t, err)
	assert.Equal(t, int64(600_000_000), combined.TotalAssets)
	assert.Equal(t, int64(4_000_000), combined.TotalMonthlyIncome)
}

func TestAggregate_SumsMembers(t *testing.T) {
	source := &fakeProfileSource{profiles: map[string]*models.FinancialProfile{
		"user-1": profileWith("user-1", 600_000_000, 4_000_000),
		"user-2": profileWith("user-2", 200_000_000, 3_000_000),
		"user-3": {
			UserID: "user-3",
			Loans: []models.LoanItem{
				{MoneyItem: models.MoneyItem{ID: "l1", Amount: 50_000_000}, InterestRate: 4},
				{MoneyItem: models.MoneyItem{ID: "l2", Amount: 30_000_000}, IsExcludedFromCalculation: true},
			},
		},
	}}
	agg := NewAggregator(source, logger.NewNoOpLogger())

	combined, err := agg.Aggregate(context.Background(), "user-1", []string{"user-2", "user-3"})

	require.NoError(t, err)
	assert.Equal(t, int64(800_000_000), combined.TotalAssets)
	assert.Equal(t, int64(7_000_000), combined.TotalMonthlyIncome)
	// Both loans count toward net worth...
	assert.Equal(t, int64(80_000_000), combined.TotalLoans)
	assert.Equal(t, int64(720_000_000), combined.NetAssets())
	// ...but only the non-excluded one feeds the ratio engines.
	require.Len(t, combined.ExistingLoans, 1)
	assert.Equal(t, "l1", combined.ExistingLoans[0].ID)
}

func TestAggregate_MemberWithoutProfileContributesNothing(t *testing.T) {
	source := &fakeProfileSource{profiles: map[string]*models.FinancialProfile{
		"user-1": profileWith("user-1", 600_000_000, 4_000_000),
	}}
	agg := NewAggregator(source, logger.NewNoOpLogger())

	combined, err := agg.Aggregate(context.Background(), "user-1", []string{"member-without-profile"})

	require.NoError(t, err)
	assert.Equal(t, int64(600_000_000), combined.TotalAssets)
	assert.Equal(t, int64(4_000_000), combined.TotalMonthlyIncome)
}

func TestAggregate_RequesterWithoutProfileFails(t *testing.T) {
	source := &fakeProfileSource{}
	agg := NewAggregator(source, logger.NewNoOpLogger())

	_, err := agg.Aggregate(context.Background(), "user-1", nil)

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeProfileNotFound))
}

func TestAggregate_MemberUpstreamFailurePropagates(t *testing.T) {
	source := &fakeProfileSource{
		profiles: map[string]*models.FinancialProfile{
			"user-1": profileWith("user-1", 600_000_000, 4_000_000),
		},
		forcedErr: map[string]error{
			"user-2": apperrors.NewUpstreamUnavailableError("asset-service", assertErr{}),
		},
	}
	agg := NewAggregator(source, logger.NewNoOpLogger())

	_, err := agg.Aggregate(context.Background(), "user-1", []string{"user-2"})

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeUpstreamUnavailable))
}

type assertErr struct{}

func (assertErr) Error() string { return "connection refused" }
