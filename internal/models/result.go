// internal/models/result.go
package models

import "time"

// ResultStatus is the eligibility verdict stored on a calculation result.
type ResultStatus string

const (
	StatusEligible   ResultStatus = "ELIGIBLE"
	StatusIneligible ResultStatus = "INELIGIBLE"
)

// CalculationRequest is the caller's input for one affordability
// calculation. The requesting user is implicit; HouseholdMemberIDs
// selects which other household members' profiles are aggregated in.
type CalculationRequest struct {
	HousingID          string   `json:"housingId"`
	LoanProductID      string   `json:"loanProductId"`
	LoanAmount         int64    `json:"loanAmount"`
	LoanTermMonths     int      `json:"loanTerm"`
	HouseholdMemberIDs []string `json:"householdMemberIds,omitempty"`
}

// FinancialStatus is the pre-purchase snapshot on a result.
type FinancialStatus struct {
	CurrentAssets   int64 `json:"currentAssets"`
	EstimatedAssets int64 `json:"estimatedAssets"`
	LoanRequired    int64 `json:"loanRequired"` // negative means surplus
}

// LoanAnalysis carries the regulatory ratio outcomes. An unapplied ratio
// is reported as 0 with its limit passed through and never contributes
// an ineligibility reason.
type LoanAnalysis struct {
	Ltv                  float64  `json:"ltv"`
	Dti                  float64  `json:"dti"`
	Dsr                  float64  `json:"dsr"`
	LtvLimit             float64  `json:"ltvLimit"`
	DtiLimit             float64  `json:"dtiLimit"`
	DsrLimit             float64  `json:"dsrLimit"`
	IsEligible           bool     `json:"isEligible"`
	IneligibilityReasons []string `json:"ineligibilityReasons"`
	MonthlyPayment       int64    `json:"monthlyPayment"`
}

// AfterMoveIn is the projected post-move-in balance sheet.
type AfterMoveIn struct {
	Assets                int64 `json:"assets"`
	MonthlyIncome         int64 `json:"monthlyIncome"`
	MonthlyExpenses       int64 `json:"monthlyExpenses"`
	MonthlyAvailableFunds int64 `json:"monthlyAvailableFunds"`
}

// CalculationResult is the immutable output of one calculation, owned by
// the requesting user. It is created once and only ever hard-deleted.
type CalculationResult struct {
	ID               string            `json:"id"`
	UserID           string            `json:"userId"`
	HousingID        string            `json:"housingId"`
	HousingName      string            `json:"housingName"`
	MoveInDate       string            `json:"moveInDate,omitempty"`
	LoanProductID    string            `json:"loanProductId"`
	LoanProductName  string            `json:"loanProductName"`
	LoanAmount       int64             `json:"loanAmount"`
	LoanTermMonths   int               `json:"loanTerm"`
	CalculatedAt     time.Time         `json:"calculatedAt"`
	FinancialStatus  FinancialStatus   `json:"financialStatus"`
	LoanAnalysis     LoanAnalysis      `json:"loanAnalysis"`
	AfterMoveIn      AfterMoveIn       `json:"afterMoveIn"`
	Status           ResultStatus      `json:"status"`
	HouseholdMembers []HouseholdMember `json:"householdMembers,omitempty"`
}

// CalculationResultListItem is the compact list projection of a result.
type CalculationResultListItem struct {
	ID                    string       `json:"id"`
	HousingName           string       `json:"housingName"`
	LoanProductName       string       `json:"loanProductName"`
	CalculatedAt          time.Time    `json:"calculatedAt"`
	Status                ResultStatus `json:"status"`
	MonthlyAvailableFunds int64        `json:"monthlyAvailableFunds"`
}

// CalculationResultList is one page of results.
type CalculationResultList struct {
	Results []CalculationResultListItem `json:"results"`
	Page    int                         `json:"page"`
	Size    int                         `json:"size"`
	Total   int64                       `json:"total"`
}

// ResultListQuery selects and orders a page of a user's results.
// Zero values fall back to page 0, size 20, calculatedAt descending.
type ResultListQuery struct {
	Page      int
	Size      int
	SortBy    string
	SortOrder string
	Status    ResultStatus
	HousingID string
}
