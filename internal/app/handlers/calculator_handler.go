// internal/app/handlers/calculator_handler.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"calculator-service/internal/app/middleware"
	apperrors "calculator-service/internal/common/errors"
	"calculator-service/internal/common/logger"
	"calculator-service/internal/common/validation"
	"calculator-service/internal/models"
)

// CalculatorService is the handler-side view of the calculation
// service.
type CalculatorService interface {
	Calculate(ctx context.Context, userID string, req *models.CalculationRequest) (*models.CalculationResult, error)
	GetResult(ctx context.Context, userID, resultID string) (*models.CalculationResult, error)
	ListResults(ctx context.Context, userID string, query models.ResultListQuery) (*models.CalculationResultList, error)
	DeleteResult(ctx context.Context, userID, resultID string) error
}

type CalculatorHandler struct {
	service CalculatorService
	logger  logger.Logger
}

func NewCalculatorHandler(service CalculatorService, log logger.Logger) *CalculatorHandler {
	return &CalculatorHandler{
		service: service,
		logger:  log.WithFields(map[string]interface{}{"component": "calculator-handler"}),
	}
}

// Calculate handles POST /calculator/housing-expenses. The body passes
// JSON schema validation before it is decoded and handed to the
// service.
func (h *CalculatorHandler) Calculate(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.writeError(c, apperrors.NewValidationError("unable to read request body"))
		return
	}

	result, err := validation.ValidateCalculationRequest(body)
	if err != nil {
		h.writeError(c, apperrors.NewValidationError("request body is not valid JSON"))
		return
	}
	if !result.Valid {
		h.writeError(c, apperrors.NewValidationError(strings.Join(result.ErrorMessages(), "; ")))
		return
	}

	var req models.CalculationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.writeError(c, apperrors.NewValidationError("malformed request body"))
		return
	}

	calcResult, err := h.service.Calculate(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, calcResult)
}

// GetResult handles GET /calculator/results/:id.
func (h *CalculatorHandler) GetResult(c *gin.Context) {
	result, err := h.service.GetResult(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListResults handles GET /calculator/results.
func (h *CalculatorHandler) ListResults(c *gin.Context) {
	query := models.ResultListQuery{
		Page:      intQuery(c, "page", 0),
		Size:      intQuery(c, "size", 0),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		HousingID: c.Query("housingId"),
	}

	if status := c.Query("status"); status != "" {
		s := models.ResultStatus(status)
		if s != models.StatusEligible && s != models.StatusIneligible {
			h.writeError(c, apperrors.NewValidationError("status must be ELIGIBLE or INELIGIBLE"))
			return
		}
		query.Status = s
	}

	list, err := h.service.ListResults(c.Request.Context(), middleware.UserID(c), query)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// DeleteResult handles DELETE /calculator/results/:id.
func (h *CalculatorHandler) DeleteResult(c *gin.Context) {
	if err := h.service.DeleteResult(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeError maps an application error to its HTTP status and writes
// the structured error body. Unexpected errors degrade to a generic
// internal error so internals never leak.
func (h *CalculatorHandler) writeError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.WithError(err).Error("request failed", map[string]interface{}{
			"path": c.Request.URL.Path,
		})
	}

	var stdErr *apperrors.StandardError
	if !errors.As(err, &stdErr) {
		stdErr = apperrors.NewInternalError(err)
	}
	c.JSON(status, stdErr)
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
