package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepaymentType_Valid(t *testing.T) {
	for _, rt := range []RepaymentType{
		RepaymentEqualPrincipal,
		RepaymentEqualPrincipalInterest,
		RepaymentMaturityLumpSum,
		RepaymentGraduatedPayment,
	} {
		assert.True(t, rt.Valid(), string(rt))
	}

	assert.False(t, RepaymentType("").Valid())
	assert.False(t, RepaymentType("BALLOON").Valid())
	assert.False(t, RepaymentType("equal_principal").Valid())
}

func TestFinancialProfile_Totals(t *testing.T) {
	profile := &FinancialProfile{
		UserID: "user-1",
		Assets: []MoneyItem{
			{ID: "a1", Name: "savings", Amount: 400_000_000},
			{ID: "a2", Name: "deposit", Amount: 200_000_000},
		},
		Loans: []LoanItem{
			{MoneyItem: MoneyItem{ID: "l1", Name: "mortgage", Amount: 80_000_000}, InterestRate: 4},
			{MoneyItem: MoneyItem{ID: "l2", Name: "car", Amount: 20_000_000}, IsExcludedFromCalculation: true},
		},
		MonthlyIncomes:  []MoneyItem{{ID: "i1", Name: "salary", Amount: 4_000_000}},
		MonthlyExpenses: []MoneyItem{{ID: "e1", Name: "living", Amount: 1_500_000}},
	}

	assert.Equal(t, int64(600_000_000), profile.TotalAssets())
	// Excluded loans still count toward net worth.
	assert.Equal(t, int64(100_000_000), profile.TotalLoans())
	assert.Equal(t, int64(500_000_000), profile.NetAssets())
	assert.Equal(t, int64(4_000_000), profile.TotalMonthlyIncome())
	assert.Equal(t, int64(1_500_000), profile.TotalMonthlyExpense())
}
