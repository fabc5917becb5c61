package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/minutemail/client-go/internal/throttle"
)

// Defaults applied by NewClient when the corresponding Config field is zero.
const (
	// DefaultBaseURL is the MinuteMail gateway origin.
	DefaultBaseURL = "https://api.minutemail.co"
	// DefaultTimeout is the per-request timeout.
	DefaultTimeout = 10 * time.Second
)

// Config configures the API client.
type Config struct {
	// BaseURL is the gateway origin, without the /v1 prefix.
	BaseURL string
	// APIKey is the tenant-scoped bearer token. Required.
	APIKey string
	// Timeout is the per-request timeout. Applied to the owned HTTP client;
	// when HTTPClient is supplied its own timeout governs instead.
	Timeout time.Duration
	// HTTPClient is an optional pre-configured HTTP client. The client is
	// used for connection pooling; it is never mutated.
	HTTPClient *http.Client
	// UserAgent is sent as the User-Agent header when non-empty.
	UserAgent string
	// ThrottleRPS and ThrottleBurst enable client-side rate limiting of
	// outbound requests when both are positive.
	ThrottleRPS   int
	ThrottleBurst int
}

// Client is the HTTP API client. It is stateless across calls apart from the
// shared transport, and is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures the API client.
type Option func(*Config)

// WithBaseURL sets the gateway base URL.
func WithBaseURL(url string) Option {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithUserAgent sets the User-Agent header for every request.
func WithUserAgent(ua string) Option {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// WithThrottle enables client-side rate limiting.
func WithThrottle(rps, burst int) Option {
	return func(c *Config) {
		c.ThrottleRPS = rps
		c.ThrottleBurst = burst
	}
}

// New creates a new API client using functional options.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := Config{APIKey: apiKey}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewClient(cfg)
}

// NewClient creates a new API client from an explicit configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	httpClient, err := buildHTTPClient(cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL:    trimTrailingSlash(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// buildHTTPClient assembles the effective HTTP client. An injected client is
// shallow-copied before its transport is wrapped, so the caller's client is
// never mutated.
func buildHTTPClient(cfg Config) (*http.Client, error) {
	var client http.Client
	if cfg.HTTPClient != nil {
		client = *cfg.HTTPClient
	} else {
		client.Timeout = cfg.Timeout
	}

	transport := client.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if cfg.UserAgent != "" {
		transport = &userAgentTransport{value: cfg.UserAgent, base: transport}
	}
	if cfg.ThrottleRPS > 0 || cfg.ThrottleBurst > 0 {
		rt, err := throttle.NewRoundTripper(cfg.ThrottleRPS, cfg.ThrottleBurst, transport)
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		transport = rt
	}
	client.Transport = transport

	return &client, nil
}

// userAgentTransport stamps a User-Agent header on outbound requests.
type userAgentTransport struct {
	value string
	base  http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the caller's request.
	clone := r.Clone(r.Context())
	clone.Header.Set("User-Agent", t.value)
	return t.base.RoundTrip(clone)
}

func trimTrailingSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

// BaseURL returns the configured gateway origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HTTPClient returns the effective HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// SetHTTPClient replaces the HTTP client. Intended for tests.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// request describes a single gateway call. Every endpoint method reduces its
// arguments to one of these and hands it to do.
type request struct {
	method string
	path   string
	query  url.Values
	body   any
	result any
	noAuth bool
}

// do is the single choke point for every gateway call. It attaches
// authentication and content negotiation headers, dispatches the request,
// and classifies the outcome: a decoded success value, an *APIError, or a
// *TransportError. No other outcome is observable by callers.
func (c *Client) do(ctx context.Context, req request) error {
	var bodyReader io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-Id", uuid.NewString())
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if !req.noAuth {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &TransportError{Err: err, URL: u}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		// The connection dropped mid-body; no complete response exists.
		return &TransportError{Err: err, URL: u}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorResponse(resp.StatusCode, raw)
	}

	// 204 and other empty successes carry nothing to decode.
	if req.result == nil || len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, req.result); err != nil {
		return &APIError{
			StatusCode:  resp.StatusCode,
			ErrorCode:   InvalidResponseCode,
			Message:     "response body is not valid JSON",
			BodyPreview: bodyPreview(raw),
		}
	}

	return nil
}

// parseErrorResponse maps a non-2xx response to an *APIError, extracting the
// gateway's error and message fields when the body is JSON and substituting
// fallbacks otherwise.
func parseErrorResponse(statusCode int, raw []byte) error {
	apiErr := &APIError{
		StatusCode:  statusCode,
		ErrorCode:   FallbackErrorCode,
		BodyPreview: bodyPreview(raw),
	}

	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &errResp); err == nil {
		if errResp.Error != "" {
			apiErr.ErrorCode = errResp.Error
		}
		apiErr.Message = errResp.Message
	}

	if apiErr.Message == "" {
		if len(raw) > 0 {
			apiErr.Message = bodyPreview(raw)
		} else {
			apiErr.Message = http.StatusText(statusCode)
		}
	}

	return apiErr
}

// bodyPreview truncates a raw response body to BodyPreviewLimit bytes.
func bodyPreview(raw []byte) string {
	if len(raw) > BodyPreviewLimit {
		raw = raw[:BodyPreviewLimit]
	}
	return string(raw)
}
