// internal/models/loanproduct.go
package models

// LoanProduct is a loan offering with regulatory ratio limits, as served
// by the loan service. A limit only matters when the matching Apply flag
// is set; an unapplied ratio never causes rejection.
type LoanProduct struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	LoanLimit    int64   `json:"loanLimit"`
	LtvLimit     float64 `json:"ltvLimit"` // percent, 0-100
	DtiLimit     float64 `json:"dtiLimit"`
	DsrLimit     float64 `json:"dsrLimit"`
	InterestRate float64 `json:"interestRate"` // percent, annual
	ApplyLtv     bool    `json:"isApplyLtv"`
	ApplyDti     bool    `json:"isApplyDti"`
	ApplyDsr     bool    `json:"isApplyDsr"`
	Active       bool    `json:"active"`
}
