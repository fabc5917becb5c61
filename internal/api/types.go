package api

import (
	"encoding/json"
	"fmt"
	"time"
)

// Mailbox represents an active disposable mailbox.
type Mailbox struct {
	ID          string    `json:"id"`
	Address     string    `json:"address"`
	Domain      string    `json:"domain"`
	Recoverable bool      `json:"recoverable"`
	Tag         string    `json:"tag"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// ArchivedMailbox represents a mailbox retained after expiry because it was
// created with recoverable=true.
type ArchivedMailbox struct {
	ID         string    `json:"id"`
	Address    string    `json:"address"`
	Domain     string    `json:"domain"`
	Tag        string    `json:"tag"`
	CreatedAt  time.Time `json:"createdAt"`
	ArchivedAt time.Time `json:"archivedAt"`
}

// Mail represents a received mail with body content and attachment summaries.
type Mail struct {
	ID          string            `json:"id"`
	MailboxID   string            `json:"mailboxId"`
	From        string            `json:"from"`
	To          []string          `json:"to"`
	Subject     string            `json:"subject"`
	Text        string            `json:"text"`
	HTML        string            `json:"html"`
	ReceivedAt  time.Time         `json:"receivedAt"`
	Attachments []Attachment      `json:"attachments"`
	Headers     map[string]string `json:"headers"`
}

// Attachment represents a mail attachment. Data is populated only by the
// single-attachment endpoint; list responses carry metadata alone. The
// gateway transmits Data base64-encoded and encoding/json decodes it.
type Attachment struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	SizeBytes   int    `json:"sizeBytes"`
	Data        []byte `json:"data,omitempty"`
}

// ExpiresIn is a mailbox lifetime that the gateway accepts in either of two
// encodings: integer minutes or a duration string such as "20m". The value is
// passed through unmodified in whichever form the caller chose. The zero
// value is omitted from request bodies.
type ExpiresIn struct {
	minutes int
	text    string
	set     bool
}

// ExpiresInMinutes returns an ExpiresIn encoded as integer minutes.
func ExpiresInMinutes(minutes int) ExpiresIn {
	return ExpiresIn{minutes: minutes, set: true}
}

// ExpiresInText returns an ExpiresIn encoded as a duration string,
// e.g. "20m" or "1h".
func ExpiresInText(text string) ExpiresIn {
	return ExpiresIn{text: text, set: true}
}

// IsZero reports whether the value is unset, letting omitzero drop it.
func (e ExpiresIn) IsZero() bool {
	return !e.set
}

// MarshalJSON emits the form the caller chose.
func (e ExpiresIn) MarshalJSON() ([]byte, error) {
	if e.text != "" {
		return json.Marshal(e.text)
	}
	return json.Marshal(e.minutes)
}

// String implements fmt.Stringer for diagnostics.
func (e ExpiresIn) String() string {
	if !e.set {
		return ""
	}
	if e.text != "" {
		return e.text
	}
	return fmt.Sprintf("%dm", e.minutes)
}

// CreateMailboxRequest represents the POST /v1/mailboxes request body.
// Optional fields are omitted entirely when unset, never sent as null.
type CreateMailboxRequest struct {
	Domain      string    `json:"domain"`
	ExpiresIn   ExpiresIn `json:"expires_in,omitzero"`
	Recoverable *bool     `json:"recoverable,omitempty"`
	Tag         string    `json:"tag,omitempty"`
}

// ReactivateRequest represents the archived-mailbox reactivation body.
type ReactivateRequest struct {
	ExpiresIn ExpiresIn `json:"expires_in,omitzero"`
}

// AttachmentUpload represents the attachment-creation request body. Data is
// the base64 encoding of the raw content; SizeBytes is the raw byte length
// unless the caller overrides it.
type AttachmentUpload struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type,omitempty"`
	Data        string `json:"data"`
	SizeBytes   int    `json:"size_bytes"`
}

// bulkDeleteRequest carries the identifiers of a bulk delete.
type bulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// Envelope types for list endpoints. The gateway wraps every collection in
// an items array; order is as delivered.

type mailboxListResponse struct {
	Items []Mailbox `json:"items"`
}

type archivedMailboxListResponse struct {
	Items []ArchivedMailbox `json:"items"`
}

type mailListResponse struct {
	Items []Mail `json:"items"`
}

type attachmentListResponse struct {
	Items []Attachment `json:"items"`
}

// Status represents the /health and /ready probe responses.
type Status struct {
	Status string `json:"status"`
}
