// internal/calculator/aggregate.go
package calculator

import (
	"context"
	"sync"

	apperrors "calculator-service/internal/common/errors"
	"calculator-service/internal/common/logger"
	"calculator-service/internal/models"
)

// ProfileSource resolves a household member's registered financial
// profile. Implemented by the asset-service client.
type ProfileSource interface {
	GetFinancialProfile(ctx context.Context, userID string) (*models.FinancialProfile, error)
}

// CombinedProfile is the net financial snapshot of the requester plus
// the selected household members.
type CombinedProfile struct {
	TotalAssets         int64
	TotalLoans          int64
	TotalMonthlyIncome  int64
	TotalMonthlyExpense int64

	// ExistingLoans holds the non-excluded loans of every included
	// member; this is the debt stock the DTI/DSR engines amortize.
	ExistingLoans []models.LoanItem
}

// NetAssets may be negative.
func (c *CombinedProfile) NetAssets() int64 {
	return c.TotalAssets - c.TotalLoans
}

// Aggregator builds a CombinedProfile from upstream profile lookups.
type Aggregator struct {
	profiles ProfileSource
	logger   logger.Logger
}

func NewAggregator(profiles ProfileSource, log logger.Logger) *Aggregator {
	return &Aggregator{
		profiles: profiles,
		logger:   log.WithFields(map[string]interface{}{"component": "aggregator"}),
	}
}

// Aggregate fetches the requester's profile and each selected member's
// profile, then sums them. The requester must have a registered profile;
// a member without one contributes a zero-valued profile instead of
// failing the request. Member lookups are independent reads and run
// concurrently.
func (a *Aggregator) Aggregate(ctx context.Context, requesterID string, memberIDs []string) (*CombinedProfile, error) {
	requesterProfile, err := a.profiles.GetFinancialProfile(ctx, requesterID)
	if err != nil {
		if apperrors.IsCode(err, apperrors.ErrCodeNotFound) {
			return nil, apperrors.NewProfileNotFoundError(requesterID)
		}
		return nil, err
	}

	memberProfiles := make([]*models.FinancialProfile, len(memberIDs))
	memberErrs := make([]error, len(memberIDs))

	var wg sync.WaitGroup
	for i, id := range memberIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			profile, err := a.profiles.GetFinancialProfile(ctx, id)
			if err != nil {
				if apperrors.IsCode(err, apperrors.ErrCodeNotFound) {
					// Members who never filled in data contribute nothing.
					a.logger.Debug("member has no profile, using zero profile", map[string]interface{}{
						"userId": id,
					})
					return
				}
				memberErrs[i] = err
				return
			}
			memberProfiles[i] = profile
		}(i, id)
	}
	wg.Wait()

	for _, err := range memberErrs {
		if err != nil {
			return nil, err
		}
	}

	combined := &CombinedProfile{}
	combined.add(requesterProfile)
	for _, profile := range memberProfiles {
		if profile != nil {
			combined.add(profile)
		}
	}
	return combined, nil
}

func (c *CombinedProfile) add(p *models.FinancialProfile) {
	c.TotalAssets += p.TotalAssets()
	c.TotalLoans += p.TotalLoans()
	c.TotalMonthlyIncome += p.TotalMonthlyIncome()
	c.TotalMonthlyExpense += p.TotalMonthlyExpense()

	for _, loan := range p.Loans {
		if !loan.IsExcludedFromCalculation {
			c.ExistingLoans = append(c.ExistingLoans, loan)
		}
	}
}
