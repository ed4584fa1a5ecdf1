// internal/upstream/client.go

// Package upstream holds REST clients for the collaborating services
// the calculator reads from: asset (financial profiles), housing,
// loan products and household membership.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"calculator-service/internal/common/config"
	apperrors "calculator-service/internal/common/errors"
	commonhttp "calculator-service/internal/common/http"
	"calculator-service/internal/common/logger"
	"calculator-service/internal/common/metrics"
)

// baseClient carries the plumbing shared by every upstream client.
type baseClient struct {
	service string
	baseURL string
	http    *commonhttp.Client
	logger  logger.Logger
}

func newBaseClient(service string, cfg config.ServiceConfig, log logger.Logger) baseClient {
	return baseClient{
		service: service,
		baseURL: cfg.BaseURL,
		http:    commonhttp.NewClient(time.Duration(cfg.Timeout) * time.Millisecond),
		logger:  log.WithFields(map[string]interface{}{"upstream": service}),
	}
}

// getJSON issues a GET against the service and decodes a 200 body into
// out. A 404 maps to NotFound for the named resource; any other failure
// maps to UpstreamUnavailable so the caller can surface a retryable 502.
func (c *baseClient) getJSON(ctx context.Context, path, resource, id string, out interface{}) error {
	url := c.baseURL + path

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.DoWithContext(ctx, req)
	metrics.UpstreamRequestDuration.WithLabelValues(c.service).Observe(time.Since(start).Seconds())
	if err != nil {
		c.logger.Warn("upstream request failed", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		return apperrors.NewUpstreamUnavailableError(c.service, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apperrors.NewUpstreamUnavailableError(c.service,
				fmt.Errorf("decoding %s response: %w", resource, err))
		}
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.NewNotFoundError(resource, id)
	default:
		c.logger.Warn("upstream returned unexpected status", map[string]interface{}{
			"url":    url,
			"status": resp.StatusCode,
		})
		return apperrors.NewUpstreamUnavailableError(c.service,
			fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url))
	}
}

func isNotFound(err error) bool {
	return apperrors.IsCode(err, apperrors.ErrCodeNotFound)
}
