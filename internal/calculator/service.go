// internal/calculator/service.go
package calculator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "calculator-service/internal/common/errors"
	"calculator-service/internal/common/logger"
	"calculator-service/internal/common/metrics"
	"calculator-service/internal/models"
)

// HousingSource resolves a user's housing listing from the housing
// service.
type HousingSource interface {
	GetHousing(ctx context.Context, userID, housingID string) (*models.HousingListing, error)
}

// LoanProductSource resolves a loan product from the loan service.
type LoanProductSource interface {
	GetLoanProduct(ctx context.Context, productID string) (*models.LoanProduct, error)
}

// HouseholdSource lists the members of the requester's household from
// the household service.
type HouseholdSource interface {
	GetHouseholdMembers(ctx context.Context, userID string) ([]models.HouseholdMember, error)
}

// ResultStore persists calculation results.
type ResultStore interface {
	Insert(ctx context.Context, result *models.CalculationResult) error
	GetByID(ctx context.Context, id string) (*models.CalculationResult, error)
	List(ctx context.Context, userID string, query models.ResultListQuery) (*models.CalculationResultList, error)
	Delete(ctx context.Context, id string) error
}

// Service orchestrates one affordability calculation end to end:
// gather inputs, run the engines, persist and return the result.
type Service struct {
	housing    HousingSource
	products   LoanProductSource
	households HouseholdSource
	aggregator *Aggregator
	store      ResultStore
	logger     logger.Logger

	// now is swapped in tests to pin amortization of dated loans.
	now func() time.Time
}

func NewService(
	housing HousingSource,
	products LoanProductSource,
	households HouseholdSource,
	aggregator *Aggregator,
	store ResultStore,
	log logger.Logger,
) *Service {
	return &Service{
		housing:    housing,
		products:   products,
		households: households,
		aggregator: aggregator,
		store:      store,
		logger:     log.WithFields(map[string]interface{}{"component": "calculator"}),
		now:        time.Now,
	}
}

// Calculate runs a full affordability calculation for userID and
// persists the result. Ineligibility is a successful calculation, not
// an error.
func (s *Service) Calculate(ctx context.Context, userID string, req *models.CalculationRequest) (*models.CalculationResult, error) {
	start := time.Now()

	result, err := s.calculate(ctx, userID, req)
	if err != nil {
		metrics.CalculationsFailed.WithLabelValues(errorCodeLabel(err)).Inc()
		metrics.CalculationDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, err
	}

	metrics.CalculationsCompleted.WithLabelValues(string(result.Status)).Inc()
	metrics.CalculationDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())

	s.logger.Info("calculation completed", map[string]interface{}{
		"resultId":   result.ID,
		"userId":     userID,
		"housingId":  req.HousingID,
		"status":     string(result.Status),
		"durationMs": time.Since(start).Milliseconds(),
	})
	return result, nil
}

func (s *Service) calculate(ctx context.Context, userID string, req *models.CalculationRequest) (*models.CalculationResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	housing, err := s.housing.GetHousing(ctx, userID, req.HousingID)
	if err != nil {
		return nil, err
	}

	product, err := s.products.GetLoanProduct(ctx, req.LoanProductID)
	if err != nil {
		return nil, err
	}
	if !product.Active {
		return nil, apperrors.NewNotFoundError("loan product", req.LoanProductID)
	}
	if req.LoanAmount > product.LoanLimit {
		return nil, apperrors.NewValidationError(fmt.Sprintf(
			"loanAmount %d exceeds product loan limit %d", req.LoanAmount, product.LoanLimit))
	}

	members, err := s.resolveMembers(ctx, userID, req.HouseholdMemberIDs)
	if err != nil {
		return nil, err
	}

	profile, err := s.aggregator.Aggregate(ctx, userID, req.HouseholdMemberIDs)
	if err != nil {
		return nil, err
	}

	now := s.now()
	ratios := ComputeRatios(profile, housing.Price, req.LoanAmount, req.LoanTermMonths, product, now)
	monthlyPayment := MonthlyPayment(req.LoanAmount, product.InterestRate, req.LoanTermMonths)
	status, reasons := Decide(ratios, product, housing.Price, req.LoanAmount)
	financialStatus, afterMoveIn := Project(profile, housing.Price, req.LoanAmount, monthlyPayment)

	result := &models.CalculationResult{
		ID:              uuid.New().String(),
		UserID:          userID,
		HousingID:       housing.ID,
		HousingName:     housing.Name,
		MoveInDate:      housing.MoveInDate,
		LoanProductID:   product.ID,
		LoanProductName: product.Name,
		LoanAmount:      req.LoanAmount,
		LoanTermMonths:  req.LoanTermMonths,
		CalculatedAt:    now.UTC(),
		FinancialStatus: financialStatus,
		LoanAnalysis: models.LoanAnalysis{
			Ltv:                  ratios.Ltv,
			Dti:                  ratios.Dti,
			Dsr:                  ratios.Dsr,
			LtvLimit:             ratios.LtvLimit,
			DtiLimit:             ratios.DtiLimit,
			DsrLimit:             ratios.DsrLimit,
			IsEligible:           status == models.StatusEligible,
			IneligibilityReasons: reasons,
			MonthlyPayment:       monthlyPayment,
		},
		AfterMoveIn:      afterMoveIn,
		Status:           status,
		HouseholdMembers: members,
	}

	if err := s.store.Insert(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// resolveMembers verifies every requested member id belongs to the
// requester's household and returns the matching member records. The
// household service is only consulted when member ids were requested.
func (s *Service) resolveMembers(ctx context.Context, userID string, memberIDs []string) ([]models.HouseholdMember, error) {
	if len(memberIDs) == 0 {
		return nil, nil
	}

	household, err := s.households.GetHouseholdMembers(ctx, userID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.HouseholdMember, len(household))
	for _, m := range household {
		byID[m.UserID] = m
	}

	members := make([]models.HouseholdMember, 0, len(memberIDs))
	for _, id := range memberIDs {
		if id == userID {
			return nil, apperrors.NewValidationError("householdMemberIds must not include the requester")
		}
		member, ok := byID[id]
		if !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf(
				"user %s is not a member of the requester's household", id))
		}
		members = append(members, member)
	}
	return members, nil
}

// GetResult returns a stored result, enforcing ownership.
func (s *Service) GetResult(ctx context.Context, userID, resultID string) (*models.CalculationResult, error) {
	result, err := s.store.GetByID(ctx, resultID)
	if err != nil {
		return nil, err
	}
	if result.UserID != userID {
		return nil, apperrors.NewForbiddenError(fmt.Sprintf("result %s belongs to another user", resultID))
	}
	return result, nil
}

// ListResults returns one page of the user's results. Only the caller's
// own results are visible; filters narrow within that set.
func (s *Service) ListResults(ctx context.Context, userID string, query models.ResultListQuery) (*models.CalculationResultList, error) {
	return s.store.List(ctx, userID, query)
}

// DeleteResult hard-deletes a stored result, enforcing ownership before
// the delete so a foreign result is never removed.
func (s *Service) DeleteResult(ctx context.Context, userID, resultID string) error {
	result, err := s.store.GetByID(ctx, resultID)
	if err != nil {
		return err
	}
	if result.UserID != userID {
		return apperrors.NewForbiddenError(fmt.Sprintf("result %s belongs to another user", resultID))
	}
	return s.store.Delete(ctx, resultID)
}

// validateRequest covers the semantic checks the JSON schema cannot
// express.
func validateRequest(req *models.CalculationRequest) error {
	if req == nil {
		return apperrors.NewValidationError("request body is required")
	}
	if req.HousingID == "" {
		return apperrors.NewValidationError("housingId is required")
	}
	if req.LoanProductID == "" {
		return apperrors.NewValidationError("loanProductId is required")
	}
	if req.LoanAmount <= 0 {
		return apperrors.NewValidationError("loanAmount must be positive")
	}
	if req.LoanTermMonths <= 0 || req.LoanTermMonths > 600 {
		return apperrors.NewValidationError("loanTerm must be between 1 and 600 months")
	}
	seen := make(map[string]struct{}, len(req.HouseholdMemberIDs))
	for _, id := range req.HouseholdMemberIDs {
		if id == "" {
			return apperrors.NewValidationError("householdMemberIds must not contain empty ids")
		}
		if _, dup := seen[id]; dup {
			return apperrors.NewValidationError("householdMemberIds must not contain duplicates")
		}
		seen[id] = struct{}{}
	}
	return nil
}

func errorCodeLabel(err error) string {
	for _, code := range []apperrors.ErrorCode{
		apperrors.ErrCodeValidation,
		apperrors.ErrCodeNotFound,
		apperrors.ErrCodeProfileNotFound,
		apperrors.ErrCodeForbidden,
		apperrors.ErrCodeUpstreamUnavailable,
		apperrors.ErrCodeDatabaseFailure,
	} {
		if apperrors.IsCode(err, code) {
			return string(code)
		}
	}
	return string(apperrors.ErrCodeInternal)
}
