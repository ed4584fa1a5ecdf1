// internal/common/http/client.go

// Package http wraps the standard HTTP client with the per-service
// timeout discipline the upstream clients rely on: each collaborating
// service gets its own Client carrying that service's configured
// timeout, so one slow upstream cannot stall a calculation forever.
package http

import (
	"context"
	"net/http"
	"time"
)

// Client is a timeout-scoped HTTP client shared by the upstream service
// clients.
type Client struct {
	httpClient *http.Client
}

// NewClient returns a client whose requests are bounded by timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Do executes the request under the client's timeout.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}

// DoWithContext executes the request under both the client's timeout
// and the caller's context, whichever ends first.
func (c *Client) DoWithContext(ctx context.Context, req *http.Request) (*http.Response, error) {
	req = req.WithContext(ctx)
	return c.httpClient.Do(req)
}
