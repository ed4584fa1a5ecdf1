// internal/calculator/decision.go
package calculator

import (
	"fmt"

	"calculator-service/internal/models"
)

// Decide produces the eligibility verdict. A product's applied ratio is
// eligible at exactly its limit (inclusive bound). Reasons keep the
// fixed order LTV, DTI, DSR, then loan limit, then housing price.
func Decide(ratios Ratios, product *models.LoanProduct, housingPrice, loanAmount int64) (models.ResultStatus, []string) {
	reasons := []string{}

	if product.ApplyLtv && ratios.Ltv > ratios.LtvLimit {
		reasons = append(reasons, ratioReason("LTV", ratios.Ltv, ratios.LtvLimit))
	}
	if product.ApplyDti && ratios.Dti > ratios.DtiLimit {
		reasons = append(reasons, ratioReason("DTI", ratios.Dti, ratios.DtiLimit))
	}
	if product.ApplyDsr && ratios.Dsr > ratios.DsrLimit {
		reasons = append(reasons, ratioReason("DSR", ratios.Dsr, ratios.DsrLimit))
	}

	// Request validation already rejects these; re-checked here so the
	// verdict can never silently pass a malformed input through.
	if loanAmount > product.LoanLimit {
		reasons = append(reasons, fmt.Sprintf(
			"requested loan amount %d exceeds product loan limit %d", loanAmount, product.LoanLimit))
	}
	if housingPrice <= 0 {
		reasons = append(reasons, fmt.Sprintf("housing price %d must be positive", housingPrice))
	}

	if len(reasons) > 0 {
		return models.StatusIneligible, reasons
	}
	return models.StatusEligible, reasons
}

func ratioReason(name string, value, limit float64) string {
	return fmt.Sprintf("%s %.2f%% exceeds limit %.2f%%", name, value, limit)
}
