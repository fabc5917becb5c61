// Package api provides HTTP client functionality for communicating with the
// MinuteMail gateway. It handles authentication, request/response
// serialization, and normalization of failures into a fixed taxonomy.
//
// # Client Creation
//
// The package provides two ways to create a client:
//
//   - [NewClient]: Struct-based configuration for explicit, type-safe setup.
//   - [New]: Functional options pattern for flexible configuration.
//
// Both methods require an API key. The key is sent as a bearer token in the
// Authorization header on every authenticated request.
//
// # Outcome Classification
//
// Every call terminates in exactly one of three outcomes:
//
//   - a decoded success value for 2xx responses;
//   - [*APIError] for non-2xx responses, or 2xx responses whose body cannot
//     be decoded as JSON;
//   - [*TransportError] when no response was obtained at all.
//
// [*PreconditionError] is returned for programmer errors (empty identifiers,
// empty bulk id lists) detected before any request is issued.
//
// The client performs no retries: a failed call is surfaced immediately and
// the caller owns retry policy.
//
// # Error Handling
//
// The package defines sentinel errors for common API error conditions:
//
//   - [ErrInvalidArgument]: Rejected request payload (400).
//   - [ErrUnauthorized]: Invalid or expired API key (401).
//   - [ErrMailboxNotFound]: Mailbox does not exist (404).
//   - [ErrMailNotFound]: Mail does not exist (404).
//   - [ErrAttachmentNotFound]: Attachment does not exist (404).
//   - [ErrRateLimited]: Rate limit exceeded (429).
//
// Use errors.Is to check for specific error types:
//
//	if errors.Is(err, api.ErrMailboxNotFound) {
//	    // Handle missing mailbox
//	}
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously; concurrency limits are those of
// the underlying transport.
package api
