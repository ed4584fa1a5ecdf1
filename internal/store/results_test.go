// internal/store/results_test.go
package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calculator-service/internal/common/database"
	apperrors "calculator-service/internal/common/errors"
	"calculator-service/internal/common/logger"
	"calculator-service/internal/models"
)

func newTestStore(t *testing.T) (*ResultStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewResultStore(&database.PostgresClient{DB: db}, logger.NewTestLogger(t)), mock
}

func sampleResult() *models.CalculationResult {
	return &models.CalculationResult{
		ID:              "8d7f3b1a-0000-4000-8000-000000000001",
		UserID:          "user-1",
		HousingID:       "housing-1",
		HousingName:     "Riverside Tower 101",
		LoanProductID:   "product-1",
		LoanProductName: "Standard Mortgage",
		LoanAmount:      300_000_000,
		LoanTermMonths:  360,
		CalculatedAt:    time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC),
		Status:          models.StatusEligible,
		AfterMoveIn:     models.AfterMoveIn{MonthlyAvailableFunds: 1_314_637},
	}
}

func TestResultStore_Insert(t *testing.T) {
	store, mock := newTestStore(t)
	result := sampleResult()

	mock.ExpectExec(`INSERT INTO calculation_results`).
		WithArgs(
			result.ID, result.UserID, result.HousingID, result.HousingName,
			result.LoanProductID, result.LoanProductName,
			result.LoanAmount, result.LoanTermMonths, string(result.Status),
			result.AfterMoveIn.MonthlyAvailableFunds, result.CalculatedAt,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Insert(context.Background(), result)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResultStore_GetByID(t *testing.T) {
	store, mock := newTestStore(t)
	result := sampleResult()
	payload, err := json.Marshal(result)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT payload FROM calculation_results WHERE id = \$1`).
		WithArgs(result.ID).
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(payload))

	got, err := store.GetByID(context.Background(), result.ID)

	require.NoError(t, err)
	assert.Equal(t, result.ID, got.ID)
	assert.Equal(t, result.UserID, got.UserID)
	assert.Equal(t, models.StatusEligible, got.Status)
}

func TestResultStore_GetByID_NotFound(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectQuery(`SELECT payload FROM calculation_results`).
		WithArgs("result-404").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	_, err := store.GetByID(context.Background(), "result-404")

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
}

func TestResultStore_List(t *testing.T) {
	store, mock := newTestStore(t)
	calculatedAt := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM calculation_results WHERE user_id = \$1`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	mock.ExpectQuery(`ORDER BY calculated_at DESC, id ASC`).
		WithArgs("user-1", 20, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "housing_name", "loan_product_name", "calculated_at", "status", "monthly_available_funds",
		}).
			AddRow("result-2", "Riverside Tower 101", "Standard Mortgage", calculatedAt, "ELIGIBLE", 1_314_637).
			AddRow("result-1", "Hillside Villa 3", "Standard Mortgage", calculatedAt.Add(-time.Hour), "INELIGIBLE", -200_000))

	list, err := store.List(context.Background(), "user-1", models.ResultListQuery{})

	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Total)
	assert.Equal(t, 0, list.Page)
	assert.Equal(t, 20, list.Size)
	require.Len(t, list.Results, 2)
	assert.Equal(t, "result-2", list.Results[0].ID)
	assert.Equal(t, models.StatusIneligible, list.Results[1].Status)
}

func TestResultStore_List_Filtered(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM calculation_results WHERE user_id = \$1 AND status = \$2 AND housing_id = \$3`).
		WithArgs("user-1", "ELIGIBLE", "housing-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(`ORDER BY monthly_available_funds ASC`).
		WithArgs("user-1", "ELIGIBLE", "housing-1", 10, 20).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "housing_name", "loan_product_name", "calculated_at", "status", "monthly_available_funds",
		}))

	list, err := store.List(context.Background(), "user-1", models.ResultListQuery{
		Page:      2,
		Size:      10,
		SortBy:    "monthlyAvailableFunds",
		SortOrder: "asc",
		Status:    models.StatusEligible,
		HousingID: "housing-1",
	})

	require.NoError(t, err)
	assert.Empty(t, list.Results)
	assert.Equal(t, 2, list.Page)
}

func TestResultStore_List_UnknownSortFallsBack(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	// A sort field outside the whitelist must never reach the SQL text.
	mock.ExpectQuery(`ORDER BY calculated_at DESC`).
		WithArgs("user-1", 20, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "housing_name", "loan_product_name", "calculated_at", "status", "monthly_available_funds",
		}))

	_, err := store.List(context.Background(), "user-1", models.ResultListQuery{
		SortBy: "payload; DROP TABLE calculation_results",
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResultStore_Delete(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectExec(`DELETE FROM calculation_results WHERE id = \$1`).
		WithArgs("result-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Delete(context.Background(), "result-1"))
}

func TestResultStore_Delete_NotFound(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectExec(`DELETE FROM calculation_results`).
		WithArgs("result-404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Delete(context.Background(), "result-404")

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
}

func TestResultStore_Bootstrap(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS calculation_results`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.Bootstrap(context.Background()))
}
