// internal/upstream/loanproduct.go
package upstream

import (
	"context"
	"fmt"

	"calculator-service/internal/common/config"
	"calculator-service/internal/common/logger"
	"calculator-service/internal/models"
)

// LoanProductClient reads loan products from the loan service.
type LoanProductClient struct {
	baseClient
}

func NewLoanProductClient(cfg config.ServiceConfig, log logger.Logger) *LoanProductClient {
	return &LoanProductClient{baseClient: newBaseClient("loan-service", cfg, log)}
}

func (c *LoanProductClient) GetLoanProduct(ctx context.Context, productID string) (*models.LoanProduct, error) {
	var product models.LoanProduct
	path := fmt.Sprintf("/loan-products/%s", productID)
	if err := c.getJSON(ctx, path, "loan product", productID, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
