package minutemail

import (
	"net/http"
	"time"

	"github.com/minutemail/client-go/internal/api"
)

// DefaultBaseURL is the MinuteMail gateway origin, without the /v1 prefix.
const DefaultBaseURL = api.DefaultBaseURL

// DefaultTimeout is the per-request timeout applied when none is configured.
const DefaultTimeout = api.DefaultTimeout

// clientConfig holds configuration for the client. Immutable after New.
type clientConfig struct {
	baseURL       string
	timeout       time.Duration
	httpClient    *http.Client
	userAgent     string
	throttleRPS   int
	throttleBurst int
}

// mailboxConfig holds configuration for mailbox creation.
type mailboxConfig struct {
	expiresIn   ExpiresIn
	recoverable *bool
	tag         string
}

// Option configures the client.
type Option func(*clientConfig)

// MailboxOption configures mailbox creation.
type MailboxOption func(*mailboxConfig)

// WithBaseURL sets the gateway base URL. Mainly useful for tests and
// self-hosted gateways.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithTimeout sets the per-request timeout. Default: 10 seconds. Ignored
// when a custom HTTP client is supplied; its own timeout governs.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client, reusing its connection pool.
// The supplied client is never mutated.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithThrottle rate-limits outbound requests to rps requests per second with
// the given burst size. Calls block until the limiter admits them or the
// context ends. Disabled by default.
func WithThrottle(rps, burst int) Option {
	return func(c *clientConfig) {
		c.throttleRPS = rps
		c.throttleBurst = burst
	}
}

// ExpiresIn is a mailbox lifetime. The gateway accepts either integer
// minutes or a duration string; the value is passed through in whichever
// form it was constructed with. The zero value means "gateway default" and
// is omitted from request bodies.
type ExpiresIn = api.ExpiresIn

// ExpiresInMinutes returns a mailbox lifetime encoded as integer minutes.
func ExpiresInMinutes(minutes int) ExpiresIn {
	return api.ExpiresInMinutes(minutes)
}

// ExpiresInText returns a mailbox lifetime encoded as a duration string,
// e.g. "20m" or "1h".
func ExpiresInText(text string) ExpiresIn {
	return api.ExpiresInText(text)
}

// WithExpiresIn sets the mailbox lifetime.
func WithExpiresIn(expiresIn ExpiresIn) MailboxOption {
	return func(c *mailboxConfig) {
		c.expiresIn = expiresIn
	}
}

// WithRecoverable marks the mailbox for archival on expiry instead of
// deletion, allowing later reactivation. The gateway requires a tag when
// recoverable is set; supply one with WithTag.
func WithRecoverable(recoverable bool) MailboxOption {
	return func(c *mailboxConfig) {
		c.recoverable = &recoverable
	}
}

// WithTag sets a tag for organizing archived mailboxes.
func WithTag(tag string) MailboxOption {
	return func(c *mailboxConfig) {
		c.tag = tag
	}
}
