// internal/calculator/ratios.go
package calculator

import (
	"math"
	"time"

	"calculator-service/internal/models"
)

// ratioCap is reported for an applied DTI/DSR when the combined profile
// has zero income but non-zero debt service. It always violates any
// percent limit.
const ratioCap = 999.99

// Ratios holds the computed regulatory ratios next to the product limits
// they are compared against. An unapplied ratio is 0 with its limit
// passed through.
type Ratios struct {
	Ltv      float64
	Dti      float64
	Dsr      float64
	LtvLimit float64
	DtiLimit float64
	DsrLimit float64
}

// ComputeRatios evaluates LTV, DTI and DSR for the requested loan
// against the combined profile. Only ratios the product applies are
// computed; the rest stay zero. Intermediate values are never
// pre-rounded; the reported ratios round to two decimals at the end.
func ComputeRatios(profile *CombinedProfile, housingPrice, loanAmount int64, termMonths int, product *models.LoanProduct, now time.Time) Ratios {
	r := Ratios{
		LtvLimit: product.LtvLimit,
		DtiLimit: product.DtiLimit,
		DsrLimit: product.DsrLimit,
	}

	newLoanAnnualService := annuityPayment(float64(loanAmount), product.InterestRate, termMonths) * 12
	annualIncome := float64(profile.TotalMonthlyIncome) * 12

	if product.ApplyLtv && housingPrice > 0 {
		r.Ltv = round2(float64(loanAmount) / float64(housingPrice) * 100)
	}

	if product.ApplyDti {
		// DTI counts only the interest burden of existing loans.
		var existingAnnualInterest float64
		for _, loan := range profile.ExistingLoans {
			existingAnnualInterest += float64(loan.Amount) * loan.InterestRate / 100
		}
		r.Dti = incomeRatio(newLoanAnnualService+existingAnnualInterest, annualIncome)
	}

	if product.ApplyDsr {
		// DSR counts the full amortized burden of existing loans.
		var existingAnnualService float64
		for _, loan := range profile.ExistingLoans {
			existingAnnualService += existingLoanMonthlyBurden(loan, now) * 12
		}
		r.Dsr = incomeRatio(newLoanAnnualService+existingAnnualService, annualIncome)
	}

	return r
}

// incomeRatio is debt service over income as a percent. Zero income with
// outstanding debt service reports the ratioCap sentinel rather than
// dividing by zero; positive income always reports the true percentage.
func incomeRatio(annualDebtService, annualIncome float64) float64 {
	if annualIncome <= 0 {
		if annualDebtService > 0 {
			return ratioCap
		}
		return 0
	}
	return round2(annualDebtService / annualIncome * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
