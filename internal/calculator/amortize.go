// internal/calculator/amortize.go
package calculator

import (
	"math"
	"time"

	"calculator-service/internal/models"
)

// defaultExistingLoanTermMonths is assumed for existing loans that carry
// no expiration date.
const defaultExistingLoanTermMonths = 360

// minExistingLoanTermMonths floors the remaining term of a nearly
// expired loan so its amortized burden stays finite and plausible.
const minExistingLoanTermMonths = 12

// MonthlyPayment computes the annuity (equal principal and interest)
// monthly payment for the requested loan, rounded to the nearest whole
// currency unit. All intermediate math stays in floating point.
func MonthlyPayment(principal int64, annualRatePercent float64, termMonths int) int64 {
	return int64(math.Round(annuityPayment(float64(principal), annualRatePercent, termMonths)))
}

// annuityPayment is the unrounded annuity installment. A zero rate
// degenerates to straight principal division.
func annuityPayment(principal, annualRatePercent float64, termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}
	r := annualRatePercent / 100 / 12
	n := float64(termMonths)
	if r == 0 {
		return principal / n
	}
	pow := math.Pow(1+r, n)
	return principal * r * pow / (pow - 1)
}

// existingLoanMonthlyBurden is the unrounded monthly principal+interest
// burden of an existing loan, used by the DSR engine. The burden depends
// on the repayment type; a loan without one amortizes as equal principal
// and interest.
func existingLoanMonthlyBurden(loan models.LoanItem, now time.Time) float64 {
	principal := float64(loan.Amount)
	if principal <= 0 {
		return 0
	}

	termMonths := remainingTermMonths(loan.ExpirationDate, now)
	monthlyRate := loan.InterestRate / 100 / 12
	n := float64(termMonths)

	switch loan.RepaymentType {
	case models.RepaymentEqualPrincipal:
		// First installment: full interest on the outstanding balance.
		return principal/n + principal*monthlyRate
	case models.RepaymentMaturityLumpSum:
		// Interest-only service plus principal spread over the term.
		return principal*monthlyRate + principal/n
	default:
		// EQUAL_PRINCIPAL_INTEREST, GRADUATED_PAYMENT, or unspecified.
		return annuityPayment(principal, loan.InterestRate, termMonths)
	}
}

// remainingTermMonths derives an existing loan's remaining term from its
// YYYY-MM expiration date, floored at minExistingLoanTermMonths. Loans
// without a parseable expiration fall back to the default term.
func remainingTermMonths(expiration string, now time.Time) int {
	if expiration == "" {
		return defaultExistingLoanTermMonths
	}
	exp, err := time.Parse("2006-01", expiration)
	if err != nil {
		return defaultExistingLoanTermMonths
	}

	months := (exp.Year()-now.Year())*12 + int(exp.Month()) - int(now.Month())
	if months < minExistingLoanTermMonths {
		return minExistingLoanTermMonths
	}
	return months
}
