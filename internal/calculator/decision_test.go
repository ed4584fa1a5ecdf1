// internal/calculator/decision_test.go
package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"calculator-service/internal/models"
)

func TestDecide(t *testing.T) {
	product := allRatiosProduct()

	tests := []struct {
		name        string
		ratios      Ratios
		price       int64
		loan        int64
		wantStatus  models.ResultStatus
		wantReasons []string
	}{
		{
			name:       "all ratios within limits",
			ratios:     Ratios{Ltv: 35.29, Dti: 29.63, Dsr: 29.63, LtvLimit: 70, DtiLimit: 60, DsrLimit: 40},
			price:      850_000_000,
			loan:       300_000_000,
			wantStatus: models.StatusEligible,
		},
		{
			name:       "ratio exactly at its limit passes",
			ratios:     Ratios{Ltv: 70, Dti: 60, Dsr: 40, LtvLimit: 70, DtiLimit: 60, DsrLimit: 40},
			price:      850_000_000,
			loan:       300_000_000,
			wantStatus: models.StatusEligible,
		},
		{
			name:       "single ratio breach",
			ratios:     Ratios{Ltv: 70.01, Dti: 10, Dsr: 10, LtvLimit: 70, DtiLimit: 60, DsrLimit: 40},
			price:      850_000_000,
			loan:       300_000_000,
			wantStatus: models.StatusIneligible,
			wantReasons: []string{
				"LTV 70.01% exceeds limit 70.00%",
			},
		},
		{
			name:       "multiple breaches keep fixed order",
			ratios:     Ratios{Ltv: 80, Dti: 65.5, Dsr: 45, LtvLimit: 70, DtiLimit: 60, DsrLimit: 40},
			price:      850_000_000,
			loan:       300_000_000,
			wantStatus: models.StatusIneligible,
			wantReasons: []string{
				"LTV 80.00% exceeds limit 70.00%",
				"DTI 65.50% exceeds limit 60.00%",
				"DSR 45.00% exceeds limit 40.00%",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, reasons := Decide(tt.ratios, product, tt.price, tt.loan)
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantStatus == models.StatusEligible {
				assert.Empty(t, reasons)
			} else {
				assert.Equal(t, tt.wantReasons, reasons)
			}
		})
	}
}

func TestDecide_UnappliedRatioNeverRejects(t *testing.T) {
	product := allRatiosProduct()
	product.ApplyLtv = false

	// LTV wildly over its limit is ignored when not applied.
	status, reasons := Decide(Ratios{Ltv: 0, Dti: 10, Dsr: 10, LtvLimit: 70, DtiLimit: 60, DsrLimit: 40},
		product, 850_000_000, 800_000_000)

	assert.Equal(t, models.StatusIneligible, status)
	// Only the loan-limit breach remains.
	assert.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "loan limit")
}

func TestDecide_LoanLimitBreach(t *testing.T) {
	product := allRatiosProduct()

	status, reasons := Decide(Ratios{LtvLimit: 70, DtiLimit: 60, DsrLimit: 40},
		product, 850_000_000, 650_000_000)

	assert.Equal(t, models.StatusIneligible, status)
	assert.Equal(t, []string{
		"requested loan amount 650000000 exceeds product loan limit 300000000",
	}, reasons)
}
