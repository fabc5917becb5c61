package minutemail

import (
	"context"

	"github.com/minutemail/client-go/internal/api"
)

// Client is the MinuteMail API client. It holds immutable configuration and
// the shared transport; it is safe for concurrent use to the extent the
// transport is.
type Client struct {
	apiClient *api.Client
}

// New creates a new MinuteMail client with the given API key.
//
// Construction performs no network calls; the key is validated for presence
// only and first used on the first request.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{apiClient: apiClient}, nil
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	return api.NewClient(api.Config{
		BaseURL:       cfg.baseURL,
		APIKey:        apiKey,
		Timeout:       cfg.timeout,
		HTTPClient:    cfg.httpClient,
		UserAgent:     cfg.userAgent,
		ThrottleRPS:   cfg.throttleRPS,
		ThrottleBurst: cfg.throttleBurst,
	})
}

// BaseURL returns the configured gateway origin.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// Close releases idle connections held by the underlying transport. The
// client remains usable afterwards; Close exists so short-lived programs can
// shut the pool down cleanly.
func (c *Client) Close() error {
	c.apiClient.HTTPClient().CloseIdleConnections()
	return nil
}

// Status represents the gateway's health and readiness probe responses.
type Status = api.Status

// Health performs the gateway's liveness probe. The call is unauthenticated.
func (c *Client) Health(ctx context.Context) (*Status, error) {
	status, err := c.apiClient.Health(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return status, nil
}

// Ready performs the gateway's readiness probe. The call is unauthenticated.
func (c *Client) Ready(ctx context.Context) (*Status, error) {
	status, err := c.apiClient.Ready(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return status, nil
}
