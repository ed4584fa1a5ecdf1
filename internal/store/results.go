// internal/store/results.go

// Package store persists calculation results in PostgreSQL. The table
// keeps the list-projection fields as scalar columns for sorting and
// filtering, and the full result document as a JSONB payload.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"calculator-service/internal/common/database"
	apperrors "calculator-service/internal/common/errors"
	"calculator-service/internal/common/logger"
	"calculator-service/internal/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// sortColumns whitelists what ORDER BY may reference. The map value is
// the column name; client input never reaches the SQL text directly.
var sortColumns = map[string]string{
	"calculatedAt":          "calculated_at",
	"housingName":           "housing_name",
	"status":                "status",
	"monthlyAvailableFunds": "monthly_available_funds",
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS calculation_results (
    id                      UUID PRIMARY KEY,
    user_id                 TEXT NOT NULL,
    housing_id              TEXT NOT NULL,
    housing_name            TEXT NOT NULL,
    loan_product_id         TEXT NOT NULL,
    loan_product_name       TEXT NOT NULL,
    loan_amount             BIGINT NOT NULL,
    loan_term_months        INTEGER NOT NULL,
    status                  TEXT NOT NULL,
    monthly_available_funds BIGINT NOT NULL,
    calculated_at           TIMESTAMPTZ NOT NULL,
    payload                 JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_calculation_results_user
    ON calculation_results (user_id, calculated_at DESC);
`

// ResultStore is the PostgreSQL repository for calculation results.
type ResultStore struct {
	db     *database.PostgresClient
	logger logger.Logger
}

func NewResultStore(db *database.PostgresClient, log logger.Logger) *ResultStore {
	return &ResultStore{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "result-store"}),
	}
}

// Bootstrap creates the results table if it does not exist. Safe to run
// on every start.
func (s *ResultStore) Bootstrap(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schemaDDL); err != nil {
		return apperrors.NewDatabaseFailureError("bootstrap schema", err)
	}
	return nil
}

// Insert stores a new result. Results are immutable; there is no update
// path.
func (s *ResultStore) Insert(ctx context.Context, result *models.CalculationResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	const query = `
		INSERT INTO calculation_results
			(id, user_id, housing_id, housing_name, loan_product_id, loan_product_name,
			 loan_amount, loan_term_months, status, monthly_available_funds, calculated_at, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err = s.db.Exec(ctx, query,
		result.ID,
		result.UserID,
		result.HousingID,
		result.HousingName,
		result.LoanProductID,
		result.LoanProductName,
		result.LoanAmount,
		result.LoanTermMonths,
		string(result.Status),
		result.AfterMoveIn.MonthlyAvailableFunds,
		result.CalculatedAt,
		payload,
	)
	if err != nil {
		return apperrors.NewDatabaseFailureError("insert result", err)
	}
	return nil
}

// GetByID loads a full result document by id.
func (s *ResultStore) GetByID(ctx context.Context, id string) (*models.CalculationResult, error) {
	const query = `SELECT payload FROM calculation_results WHERE id = $1`

	var payload []byte
	err := s.db.QueryRow(ctx, query, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("calculation result", id)
	}
	if err != nil {
		return nil, apperrors.NewDatabaseFailureError("get result", err)
	}

	var result models.CalculationResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("corrupt result payload %s: %w", id, err))
	}
	return &result, nil
}

// List returns one page of the user's results, filtered and ordered per
// the query. Sort fields outside the whitelist fall back to the default
// ordering.
func (s *ResultStore) List(ctx context.Context, userID string, query models.ResultListQuery) (*models.CalculationResultList, error) {
	page := query.Page
	if page < 0 {
		page = 0
	}
	size := query.Size
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	where := "WHERE user_id = $1"
	args := []interface{}{userID}
	if query.Status != "" {
		args = append(args, string(query.Status))
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if query.HousingID != "" {
		args = append(args, query.HousingID)
		where += fmt.Sprintf(" AND housing_id = $%d", len(args))
	}

	column, ok := sortColumns[query.SortBy]
	if !ok {
		column = "calculated_at"
	}
	direction := "DESC"
	if query.SortOrder == "asc" {
		direction = "ASC"
	}

	countQuery := "SELECT COUNT(*) FROM calculation_results " + where
	var total int64
	if err := s.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, apperrors.NewDatabaseFailureError("count results", err)
	}

	args = append(args, size, page*size)
	listQuery := fmt.Sprintf(`
		SELECT id, housing_name, loan_product_name, calculated_at, status, monthly_available_funds
		FROM calculation_results %s
		ORDER BY %s %s, id ASC
		LIMIT $%d OFFSET $%d`,
		where, column, direction, len(args)-1, len(args))

	rows, err := s.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, apperrors.NewDatabaseFailureError("list results", err)
	}
	defer rows.Close()

	items := []models.CalculationResultListItem{}
	for rows.Next() {
		var item models.CalculationResultListItem
		var status string
		var calculatedAt time.Time
		if err := rows.Scan(&item.ID, &item.HousingName, &item.LoanProductName,
			&calculatedAt, &status, &item.MonthlyAvailableFunds); err != nil {
			return nil, apperrors.NewDatabaseFailureError("scan result row", err)
		}
		item.CalculatedAt = calculatedAt
		item.Status = models.ResultStatus(status)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewDatabaseFailureError("iterate result rows", err)
	}

	return &models.CalculationResultList{
		Results: items,
		Page:    page,
		Size:    size,
		Total:   total,
	}, nil
}

// Delete hard-deletes a result by id. Ownership is checked by the
// service layer before calling.
func (s *ResultStore) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM calculation_results WHERE id = $1`

	res, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return apperrors.NewDatabaseFailureError("delete result", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.NewDatabaseFailureError("delete result", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError("calculation result", id)
	}
	return nil
}
