package api

import (
	"errors"
	"fmt"
)

// Error codes substituted when the gateway's error body cannot be decoded.
const (
	// FallbackErrorCode is used when a non-2xx body is not valid JSON or
	// carries no "error" field.
	FallbackErrorCode = "unknown_error"
	// InvalidResponseCode is used when a 2xx body cannot be decoded as JSON.
	InvalidResponseCode = "invalid_response"
)

// BodyPreviewLimit caps APIError.BodyPreview to keep diagnostics bounded.
const BodyPreviewLimit = 500

// Common API errors that can be checked with errors.Is.
var (
	// ErrUnauthorized indicates the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")
	// ErrInvalidArgument indicates the gateway rejected the request payload.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMailboxNotFound indicates the requested mailbox does not exist.
	ErrMailboxNotFound = errors.New("mailbox not found")
	// ErrArchivedMailboxNotFound indicates the requested archived mailbox does not exist.
	ErrArchivedMailboxNotFound = errors.New("archived mailbox not found")
	// ErrMailNotFound indicates the requested mail does not exist.
	ErrMailNotFound = errors.New("mail not found")
	// ErrAttachmentNotFound indicates the requested attachment does not exist.
	ErrAttachmentNotFound = errors.New("attachment not found")
	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// ResourceType indicates which type of resource an error relates to.
type ResourceType string

const (
	// ResourceUnknown indicates the resource type is not specified.
	ResourceUnknown ResourceType = ""
	// ResourceMailbox indicates the error relates to a mailbox.
	ResourceMailbox ResourceType = "mailbox"
	// ResourceArchivedMailbox indicates the error relates to an archived mailbox.
	ResourceArchivedMailbox ResourceType = "archived-mailbox"
	// ResourceMail indicates the error relates to a mail.
	ResourceMail ResourceType = "mail"
	// ResourceAttachment indicates the error relates to an attachment.
	ResourceAttachment ResourceType = "attachment"
)

// APIError represents a non-2xx response from the MinuteMail gateway, or a
// 2xx response whose body could not be decoded.
type APIError struct {
	StatusCode   int
	ErrorCode    string
	Message      string
	BodyPreview  string
	ResourceType ResourceType
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
		switch e.ResourceType {
		case ResourceMailbox:
			return target == ErrMailboxNotFound
		case ResourceArchivedMailbox:
			return target == ErrArchivedMailboxNotFound
		case ResourceMail:
			return target == ErrMailNotFound
		case ResourceAttachment:
			return target == ErrAttachmentNotFound
		default:
			return target == ErrMailboxNotFound || target == ErrMailNotFound
		}
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// WithResourceType returns a copy of the error with the resource type set.
// If the error is not an *APIError, it is returned unchanged.
func WithResourceType(err error, rt ResourceType) error {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode:   apiErr.StatusCode,
			ErrorCode:    apiErr.ErrorCode,
			Message:      apiErr.Message,
			BodyPreview:  apiErr.BodyPreview,
			ResourceType: rt,
		}
	}
	return err
}

// PreconditionError reports a programmer error detected before any request
// was issued: an empty or path-corrupting identifier, or an empty bulk id
// list. No network call was attempted.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition failed: %s", e.Message)
}

// MinuteMailError implements the MinuteMailError interface.
func (e *PreconditionError) MinuteMailError() {}

// TransportError represents a network-level failure: the request never
// produced an HTTP response (connection refused, DNS failure, timeout, TLS).
type TransportError struct {
	Err error
	URL string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MinuteMailError implements the MinuteMailError interface.
func (e *TransportError) MinuteMailError() {}
