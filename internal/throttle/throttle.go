// Package throttle provides an http.RoundTripper that rate-limits outbound
// requests with a token bucket, keeping SDK callers inside the gateway's
// request quotas.
package throttle

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

var (
	// ErrMustNotBeZero is returned when rps or burst is not positive.
	ErrMustNotBeZero = errors.New("must be greater than zero")
	// ErrWaitingFailed is returned when waiting on the limiter fails.
	ErrWaitingFailed = errors.New("limiter waiting failed")
)

// roundTripper restricts outbound calls using the time/rate token bucket
// limiter before delegating to the next transport.
type roundTripper struct {
	limiter *rate.Limiter
	next    http.RoundTripper
}

// NewRoundTripper returns an http.RoundTripper that throttles outbound
// requests to rps requests per second with the given burst size.
func NewRoundTripper(rps, burst int, next http.RoundTripper) (http.RoundTripper, error) {
	if rps <= 0 || burst <= 0 {
		return nil, fmt.Errorf("rps[%d] and burst[%d] %w", rps, burst, ErrMustNotBeZero)
	}

	return &roundTripper{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		next:    next,
	}, nil
}

func (t *roundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(r.Context()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWaitingFailed, err)
	}

	return t.next.RoundTrip(r)
}
