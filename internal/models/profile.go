// internal/models/profile.go
package models

// RepaymentType identifies how an existing loan is repaid. Loans that
// carry no explicit type are treated as equal principal and interest.
type RepaymentType string

const (
	RepaymentEqualPrincipal         RepaymentType = "EQUAL_PRINCIPAL"
	RepaymentEqualPrincipalInterest RepaymentType = "EQUAL_PRINCIPAL_INTEREST"
	RepaymentMaturityLumpSum        RepaymentType = "MATURITY_LUMP_SUM"
	RepaymentGraduatedPayment       RepaymentType = "GRADUATED_PAYMENT"
)

// Valid reports whether the repayment type is one of the known values.
func (r RepaymentType) Valid() bool {
	switch r {
	case RepaymentEqualPrincipal, RepaymentEqualPrincipalInterest,
		RepaymentMaturityLumpSum, RepaymentGraduatedPayment:
		return true
	}
	return false
}

// MoneyItem is a single named amount in the smallest currency unit.
type MoneyItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

// LoanItem is an existing loan registered on a financial profile.
// Amounts always count toward net worth; the exclusion flag only removes
// the loan from debt-service ratio math.
type LoanItem struct {
	MoneyItem
	InterestRate              float64       `json:"interestRate,omitempty"` // percent, 0-100
	RepaymentType             RepaymentType `json:"repaymentType,omitempty"`
	ExpirationDate            string        `json:"expirationDate,omitempty"` // YYYY-MM
	IsExcludedFromCalculation bool          `json:"isExcludedFromCalculation,omitempty"`
}

// FinancialProfile is one household member's registered financial data,
// as served by the asset service.
type FinancialProfile struct {
	UserID          string      `json:"userId"`
	Assets          []MoneyItem `json:"assets"`
	Loans           []LoanItem  `json:"loans"`
	MonthlyIncomes  []MoneyItem `json:"monthlyIncomes"`
	MonthlyExpenses []MoneyItem `json:"monthlyExpenses"`
}

// TotalAssets sums all asset items.
func (p *FinancialProfile) TotalAssets() int64 {
	return sumMoneyItems(p.Assets)
}

// TotalLoans sums all loan balances, excluded ones included.
func (p *FinancialProfile) TotalLoans() int64 {
	var total int64
	for _, l := range p.Loans {
		total += l.Amount
	}
	return total
}

// TotalMonthlyIncome sums all monthly income items.
func (p *FinancialProfile) TotalMonthlyIncome() int64 {
	return sumMoneyItems(p.MonthlyIncomes)
}

// TotalMonthlyExpense sums all monthly expense items.
func (p *FinancialProfile) TotalMonthlyExpense() int64 {
	return sumMoneyItems(p.MonthlyExpenses)
}

// NetAssets may be negative.
func (p *FinancialProfile) NetAssets() int64 {
	return p.TotalAssets() - p.TotalLoans()
}

func sumMoneyItems(items []MoneyItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Amount
	}
	return total
}
