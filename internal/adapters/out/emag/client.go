package emag

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"time"

	"fulfillment/internal/pkg/errs"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the production marketplace API root.
	DefaultBaseURL = "https://marketplace-api.emag.ro/api-3"

	defaultTimeout = 30 * time.Second

	// The marketplace throttles API consumers; stay under its documented
	// per-second allowance for non-bulk resources.
	requestsPerSecond = 3
	requestBurst      = 3
)

// Client talks to the marketplace API. It implements the OrderFeed,
// LabelIssuer, and LabelFetcher ports over the three endpoints the pipeline
// consumes, sharing one credential pair, HTTP client, and rate limiter.
//
// Every failure is converted to a typed error at this boundary: transport
// faults, rejected credentials, and upstream business rejections each map to
// their own kind.
type Client struct {
	baseURL    string
	authHeader string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a marketplace client for the given API root and
// credential pair. Credentials are sent as HTTP Basic auth, base64 of
// "username:password".
func NewClient(baseURL, username, password string, logger *slog.Logger) *Client {
	encoded := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))

	return &Client{
		baseURL:    baseURL,
		authHeader: "Basic " + encoded,
		httpClient: &http.Client{Timeout: defaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
		logger:     logger.With("component", "emag_client"),
	}
}

// do applies the rate limit and shared headers, then executes the request.
func (c *Client) do(ctx context.Context, op string, req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errs.NewTransportError(op, err)
	}

	req.Header.Set("Authorization", c.authHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewTransportError(op, err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		resp.Body.Close()
		return nil, errs.NewAuthError(op, resp.StatusCode)
	}

	return resp, nil
}
