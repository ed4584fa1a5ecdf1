// internal/calculator/projection.go
package calculator

import "calculator-service/internal/models"

// Project computes the post-move-in balance sheet. Estimated assets are
// a pass-through of current assets (no growth model); existing-loan
// payments are already embedded in the profile's expense total, so only
// the new loan's payment is added.
func Project(profile *CombinedProfile, housingPrice, loanAmount, monthlyPayment int64) (models.FinancialStatus, models.AfterMoveIn) {
	estimatedAssets := profile.TotalAssets

	status := models.FinancialStatus{
		CurrentAssets:   profile.TotalAssets,
		EstimatedAssets: estimatedAssets,
		LoanRequired:    housingPrice - estimatedAssets,
	}

	cashApplied := housingPrice - loanAmount
	monthlyExpenses := profile.TotalMonthlyExpense + monthlyPayment

	after := models.AfterMoveIn{
		Assets:                profile.TotalAssets - cashApplied,
		MonthlyIncome:         profile.TotalMonthlyIncome,
		MonthlyExpenses:       monthlyExpenses,
		MonthlyAvailableFunds: profile.TotalMonthlyIncome - monthlyExpenses,
	}

	return status, after
}
