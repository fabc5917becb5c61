package minutemail

import (
	"errors"
	"fmt"

	"github.com/minutemail/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrInvalidArgument is returned when the gateway rejects the request
	// payload, such as an unknown domain or a missing required field.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMailboxNotFound is returned when a mailbox is not found.
	ErrMailboxNotFound = errors.New("mailbox not found")

	// ErrArchivedMailboxNotFound is returned when an archived mailbox is not found.
	ErrArchivedMailboxNotFound = errors.New("archived mailbox not found")

	// ErrMailNotFound is returned when a mail is not found.
	ErrMailNotFound = errors.New("mail not found")

	// ErrAttachmentNotFound is returned when an attachment is not found.
	ErrAttachmentNotFound = errors.New("attachment not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// MinuteMailError is implemented by all SDK errors.
type MinuteMailError interface {
	error
	MinuteMailError() // marker method
}

// APIError represents a non-2xx response from the MinuteMail gateway, or a
// 2xx response whose body could not be decoded as JSON.
//
// ErrorCode is taken from the body's "error" field, "unknown_error" when the
// body is not JSON, or "invalid_response" for an undecodable 2xx body.
// BodyPreview carries the raw response body truncated to 500 bytes for
// diagnostics.
type APIError struct {
	StatusCode  int
	ErrorCode   string
	Message     string
	BodyPreview string

	resourceType api.ResourceType
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d (%s): %s", e.StatusCode, e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("API error %d (%s)", e.StatusCode, e.ErrorCode)
}

// MinuteMailError implements the MinuteMailError interface.
func (e *APIError) MinuteMailError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 400:
		return target == ErrInvalidArgument
	case 401:
		return target == ErrUnauthorized
	case 404:
		switch e.resourceType {
		case api.ResourceMailbox:
			return target == ErrMailboxNotFound
		case api.ResourceArchivedMailbox:
			return target == ErrArchivedMailboxNotFound
		case api.ResourceMail:
			return target == ErrMailNotFound
		case api.ResourceAttachment:
			return target == ErrAttachmentNotFound
		default:
			return target == ErrMailboxNotFound || target == ErrMailNotFound
		}
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// TransportError represents a network-level failure: timeout, connection
// refusal, DNS failure, or a TLS fault. No HTTP response was obtained.
type TransportError struct {
	Err error
	URL string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// MinuteMailError implements the MinuteMailError interface.
func (e *TransportError) MinuteMailError() {}

// PreconditionError reports a programmer error detected locally: an empty or
// path-corrupting identifier, or an empty bulk id list. It is distinct from
// APIError because no request was attempted.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition failed: %s", e.Message)
}

// MinuteMailError implements the MinuteMailError interface.
func (e *PreconditionError) MinuteMailError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode:   apiErr.StatusCode,
			ErrorCode:    apiErr.ErrorCode,
			Message:      apiErr.Message,
			BodyPreview:  apiErr.BodyPreview,
			resourceType: apiErr.ResourceType,
		}
	}

	var transportErr *api.TransportError
	if errors.As(err, &transportErr) {
		return &TransportError{
			Err: transportErr.Err,
			URL: transportErr.URL,
		}
	}

	var preErr *api.PreconditionError
	if errors.As(err, &preErr) {
		return &PreconditionError{Message: preErr.Message}
	}

	return err
}
