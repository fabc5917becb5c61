package minutemail

import (
	"context"
	"encoding/base64"

	"github.com/minutemail/client-go/internal/api"
)

// Attachment represents a mail attachment. Data is populated only by
// GetAttachment; list responses carry metadata alone.
type Attachment = api.Attachment

// AttachmentUpload is the payload for CreateAttachment. Build one with
// NewAttachmentUpload.
type AttachmentUpload = api.AttachmentUpload

// UploadOption configures an attachment upload.
type UploadOption func(*AttachmentUpload)

// WithSizeBytes overrides the reported size of the attachment. Use this when
// the uploaded content is a partial representation and the true size is
// known to the caller. Without it the size defaults to the raw byte length
// of the content.
func WithSizeBytes(size int) UploadOption {
	return func(u *AttachmentUpload) {
		u.SizeBytes = size
	}
}

// NewAttachmentUpload builds an attachment-creation payload. The raw content
// is base64-encoded for transport. For string content, convert with
// []byte(s); the bytes are its UTF-8 encoding.
func NewAttachmentUpload(filename, contentType string, content []byte, opts ...UploadOption) AttachmentUpload {
	upload := AttachmentUpload{
		Filename:    filename,
		ContentType: contentType,
		Data:        base64.StdEncoding.EncodeToString(content),
		SizeBytes:   len(content),
	}
	for _, opt := range opts {
		opt(&upload)
	}
	return upload
}

// ListAttachments lists the attachments of a mail.
func (c *Client) ListAttachments(ctx context.Context, mailboxID, mailID string) ([]Attachment, error) {
	attachments, err := c.apiClient.ListAttachments(ctx, mailboxID, mailID)
	if err != nil {
		return nil, wrapError(err)
	}
	return attachments, nil
}

// GetAttachment fetches an attachment, including its content. The gateway
// transports the content base64-encoded; Data holds the decoded bytes.
func (c *Client) GetAttachment(ctx context.Context, mailboxID, mailID, attachmentID string) (*Attachment, error) {
	attachment, err := c.apiClient.GetAttachment(ctx, mailboxID, mailID, attachmentID)
	if err != nil {
		return nil, wrapError(err)
	}
	return attachment, nil
}

// CreateAttachment adds an attachment to a mail.
func (c *Client) CreateAttachment(ctx context.Context, mailboxID, mailID string, upload AttachmentUpload) (*Attachment, error) {
	attachment, err := c.apiClient.CreateAttachment(ctx, mailboxID, mailID, upload)
	if err != nil {
		return nil, wrapError(err)
	}
	return attachment, nil
}

// DeleteAttachment deletes a single attachment.
func (c *Client) DeleteAttachment(ctx context.Context, mailboxID, mailID, attachmentID string) error {
	return wrapError(c.apiClient.DeleteAttachment(ctx, mailboxID, mailID, attachmentID))
}

// DeleteAttachments deletes multiple attachments from a mail in a single
// request. The gateway silently skips ids that no longer exist. An empty id
// list is rejected locally without a network call.
func (c *Client) DeleteAttachments(ctx context.Context, mailboxID, mailID string, ids []string) error {
	return wrapError(c.apiClient.DeleteAttachments(ctx, mailboxID, mailID, ids))
}
