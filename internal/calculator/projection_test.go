// internal/calculator/projection_test.go
package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject(t *testing.T) {
	profile := &CombinedProfile{
		TotalAssets:         600_000_000,
		TotalLoans:          50_000_000,
		TotalMonthlyIncome:  4_000_000,
		TotalMonthlyExpense: 1_500_000,
	}

	status, after := Project(profile, 850_000_000, 300_000_000, 1_185_363)

	assert.Equal(t, int64(600_000_000), status.CurrentAssets)
	assert.Equal(t, int64(600_000_000), status.EstimatedAssets)
	assert.Equal(t, int64(250_000_000), status.LoanRequired)

	// 550M cash goes into the purchase.
	assert.Equal(t, int64(50_000_000), after.Assets)
	assert.Equal(t, int64(4_000_000), after.MonthlyIncome)
	assert.Equal(t, int64(1_500_000+1_185_363), after.MonthlyExpenses)
	assert.Equal(t, int64(4_000_000-1_500_000-1_185_363), after.MonthlyAvailableFunds)
}

func TestProject_AssetsCoverThePurchase(t *testing.T) {
	// Assets above the housing price produce a negative LoanRequired
	// (surplus) rather than clamping to zero.
	profile := &CombinedProfile{TotalAssets: 900_000_000, TotalMonthlyIncome: 4_000_000}

	status, after := Project(profile, 850_000_000, 100_000_000, 400_000)

	assert.Equal(t, int64(-50_000_000), status.LoanRequired)
	assert.Equal(t, int64(150_000_000), after.Assets)
}

func TestProject_NegativeAvailableFunds(t *testing.T) {
	profile := &CombinedProfile{
		TotalAssets:         100_000_000,
		TotalMonthlyIncome:  2_000_000,
		TotalMonthlyExpense: 1_800_000,
	}

	_, after := Project(profile, 400_000_000, 300_000_000, 1_200_000)

	assert.Negative(t, after.MonthlyAvailableFunds)
}
