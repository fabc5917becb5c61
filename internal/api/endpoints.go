package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// pathParam validates and escapes a path parameter. An empty value or one
// containing a path separator would silently corrupt the request path, so
// both fail fast without issuing a request.
func pathParam(name, value string) (string, error) {
	if value == "" {
		return "", &PreconditionError{Message: name + " must not be empty"}
	}
	if strings.ContainsAny(value, "/\\") {
		return "", &PreconditionError{Message: name + " must not contain path separators"}
	}
	return url.PathEscape(value), nil
}

// requireIDs validates a bulk-operation identifier list.
func requireIDs(ids []string) error {
	if len(ids) == 0 {
		return &PreconditionError{Message: "ids must not be empty"}
	}
	for _, id := range ids {
		if id == "" {
			return &PreconditionError{Message: "ids must not contain empty values"}
		}
	}
	return nil
}

// --- Mailboxes ---

// ListMailboxes lists active mailboxes, optionally filtered by exact address.
func (c *Client) ListMailboxes(ctx context.Context, address string) ([]Mailbox, error) {
	query := url.Values{}
	if address != "" {
		query.Set("address", address)
	}
	var result mailboxListResponse
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/v1/mailboxes",
		query:  query,
		result: &result,
	})
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

// CreateMailbox creates a mailbox. Conditional field requirements, such as
// tag being required with recoverable, are enforced by the gateway.
func (c *Client) CreateMailbox(ctx context.Context, req CreateMailboxRequest) (*Mailbox, error) {
	var result Mailbox
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/v1/mailboxes",
		body:   req,
		result: &result,
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMailbox fetches a mailbox by id.
func (c *Client) GetMailbox(ctx context.Context, mailboxID string) (*Mailbox, error) {
	id, err := pathParam("mailbox id", mailboxID)
	if err != nil {
		return nil, err
	}
	var result Mailbox
	err = c.do(ctx, request{
		method: http.MethodGet,
		path:   "/v1/mailboxes/" + id,
		result: &result,
	})
	if err != nil {
		return nil, WithResourceType(err, ResourceMailbox)
	}
	return &result, nil
}

// DeleteMailbox deletes a single mailbox.
func (c *Client) DeleteMailbox(ctx context.Context, mailboxID string) error {
	id, err := pathParam("mailbox id", mailboxID)
	if err != nil {
		return err
	}
	err = c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/v1/mailboxes/" + id,
	})
	return WithResourceType(err, ResourceMailbox)
}

// DeleteMailboxes deletes multiple mailboxes in one request. Recoverable
// mailboxes are archived by the gateway; the rest are deleted permanently.
func (c *Client) DeleteMailboxes(ctx context.Context, ids []string) error {
	if err := requireIDs(ids); err != nil {
		return err
	}
	err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/v1/mailboxes",
		body:   bulkDeleteRequest{IDs: ids},
	})
	return WithResourceType(err, ResourceMailbox)
}

// --- Archived mailboxes ---

// ListArchivedMailboxes lists archived mailboxes.
func (c *Client) ListArchivedMailboxes(ctx context.Context) ([]ArchivedMailbox, error) {
	var result archivedMailboxListResponse
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/v1/archived-mailboxes",
		result: &result,
	})
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

// GetArchivedMailbox fetches an archived mailbox by id.
func (c *Client) GetArchivedMailbox(ctx context.Context, archivedID string) (*ArchivedMailbox, error) {
	id, err := pathParam("archived mailbox id", archivedID)
	if err != nil {
		return nil, err
	}
	var result ArchivedMailbox
	err = c.do(ctx, request{
		method: http.MethodGet,
		path:   "/v1/archived-mailboxes/" + id,
		result: &result,
	})
	if err != nil {
		return nil, WithResourceType(err, ResourceArchivedMailbox)
	}
	return &result, nil
}

// ReactivateArchivedMailbox turns an archived mailbox back into an active
// one. req may be nil, in which case no body is sent.
func (c *Client) ReactivateArchivedMailbox(ctx context.Context, archivedID string, req *ReactivateRequest) (*Mailbox, error) {
	id, err := pathParam("archived mailbox id", archivedID)
	if err != nil {
		return nil, err
	}
	var body any
	if req != nil && !req.ExpiresIn.IsZero() {
		body = req
	}
	var result Mailbox
	err = c.do(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/v1/archived-mailboxes/%s/reactivate", id),
		body:   body,
		result: &result,
	})
	if err != nil {
		return nil, WithResourceType(err, ResourceArchivedMailbox)
	}
	return &result, nil
}

// DeleteArchivedMailbox permanently deletes a single archived mailbox.
func (c *Client) DeleteArchivedMailbox(ctx context.Context, archivedID string) error {
	id, err := pathParam("archived mailbox id", archivedID)
	if err != nil {
		return err
	}
	err = c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/v1/archived-mailboxes/" + id,
	})
	return WithResourceType(err, ResourceArchivedMailbox)
}

// DeleteArchivedMailboxes permanently deletes multiple archived mailboxes in
// one request. This cannot be undone.
func (c *Client) DeleteArchivedMailboxes(ctx context.Context, ids []string) error {
	if err := requireIDs(ids); err != nil {
		return err
	}
	err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/v1/archived-mailboxes",
		body:   bulkDeleteRequest{IDs: ids},
	})
	return WithResourceType(err, ResourceArchivedMailbox)
}

// --- Mails ---

// ListMails lists the mails of a mailbox, newest first as delivered by the
// gateway.
func (c *Client) ListMails(ctx context.Context, mailboxID string) ([]Mail, error) {
	mbID, err := pathParam("mailbox id", mailboxID)
	if err != nil {
		return nil, err
	}
	var result mailListResponse
	err = c.do(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/v1/mailboxes/%s/mails", mbID),
		result: &result,
	})
	if err != nil {
		return nil, WithResourceType(err, ResourceMailbox)
	}
	return result.Items, nil
}

// GetMail fetches a mail with body content and attachment summaries.
func (c *Client) GetMail(ctx context.Context, mailboxID, mailID string) (*Mail, error) {
	mbID, err := pathParam("mailbox id", mailboxID)
	if err != nil {
		return nil, err
	}
	mID, err := pathParam("mail id", mailID)
	if err != nil {
		return nil, err
	}
	var result Mail
	err = c.do(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/v1/mailboxes/%s/mails/%s", mbID, mID),
		result: &result,
	})
	if err != nil {
		return nil, WithResourceType(err, ResourceMail)
	}
	return &result, nil
}

// DeleteMail deletes a single mail.
func (c *Client) DeleteMail(ctx context.Context, mailboxID, mailID string) error {
	mbID, err := pathParam("mailbox id", mailboxID)
	if err != nil {
		return err
	}
	mID, err := pathParam("mail id", mailID)
	if err != nil {
		return err
	}
	err = c.do(ctx, request{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/v1/mailboxes/%s/mails/%s", mbID, mID),
	})
	return WithResourceType(err, ResourceMail)
}

// DeleteMails deletes multiple mails from a mailbox in one request. The
// gateway also deletes the attachments of the deleted mails.
func (c *Client) DeleteMails(ctx context.Context, mailboxID string, ids []string) error {
	mbID, err := pathParam("mailbox id", mailboxID)
	if err != nil {
		return err
	}
	if err := requireIDs(ids); err != nil {
		return err
	}
	err = c.do(ctx, request{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/v1/mailboxes/%s/mails", mbID),
		body:   bulkDeleteRequest{IDs: ids},
	})
	return WithResourceType(err, ResourceMail)
}

// --- Attachments ---

// ListAttachments lists the attachments of a mail.
func (c *Client) ListAttachments(ctx context.Context, mailboxID, mailID string) ([]Attachment, error) {
	mbID, err := pathParam("mailbox id", mailboxID)
	if err != nil {
		return nil, err
	}
	mID, err := pathParam("mail id", mailID)
	if err != nil {
		return nil, err
	}
	var result attachmentListResponse
	err = c.do(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/v1/mailboxes/%s/mails/%s/attachments", mbID, mID),
		result: &result,
	})
	if err != nil {
		return nil, WithResourceType(err, ResourceMail)
	}
	return result.Items, nil
}

// GetAttachment fetches an attachment with its base64-transported content
// decoded into Data.
func (c *Client) GetAttachment(ctx context.Context, mailboxID, mailID, attachmentID string) (*Attachment, error) {
	mbID, err := pathParam("mailbox id", mailboxID)
	if err != nil {
		return nil, err
	}
	mID, err := pathParam("mail id", mailID)
	if err != nil {
		return nil, err
	}
	aID, err := pathParam("attachment id", attachmentID)
	if err != nil {
		return nil, err
	}
	var result Attachment
	err = c.do(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/v1/mailboxes/%s/mails/%s/attachments/%s", mbID, mID, aID),
		result: &result,
	})
	if err != nil {
		return nil, WithResourceType(err, ResourceAttachment)
	}
	return &result, nil
}

// CreateAttachment adds an attachment to a mail.
func (c *Client) CreateAttachment(ctx context.Context, mailboxID, mailID string, upload AttachmentUpload) (*Attachment, error) {
	mbID, err := pathParam("mailbox id", mailboxID)
	if err != nil {
		return nil, err
	}
	mID, err := pathParam("mail id", mailID)
	if err != nil {
		return nil, err
	}
	var result Attachment
	err = c.do(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/v1/mailboxes/%s/mails/%s/attachments", mbID, mID),
		body:   upload,
		result: &result,
	})
	if err != nil {
		return nil, WithResourceType(err, ResourceMail)
	}
	return &result, nil
}

// DeleteAttachment deletes a single attachment.
func (c *Client) DeleteAttachment(ctx context.Context, mailboxID, mailID, attachmentID string) error {
	mbID, err := pathParam("mailbox id", mailboxID)
	if err != nil {
		return err
	}
	mID, err := pathParam("mail id", mailID)
	if err != nil {
		return err
	}
	aID, err := pathParam("attachment id", attachmentID)
	if err != nil {
		return err
	}
	err = c.do(ctx, request{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/v1/mailboxes/%s/mails/%s/attachments/%s", mbID, mID, aID),
	})
	return WithResourceType(err, ResourceAttachment)
}

// DeleteAttachments deletes multiple attachments from a mail in one request.
// The gateway silently skips ids that no longer exist.
func (c *Client) DeleteAttachments(ctx context.Context, mailboxID, mailID string, ids []string) error {
	mbID, err := pathParam("mailbox id", mailboxID)
	if err != nil {
		return err
	}
	mID, err := pathParam("mail id", mailID)
	if err != nil {
		return err
	}
	if err := requireIDs(ids); err != nil {
		return err
	}
	err = c.do(ctx, request{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/v1/mailboxes/%s/mails/%s/attachments", mbID, mID),
		body:   bulkDeleteRequest{IDs: ids},
	})
	return WithResourceType(err, ResourceMail)
}

// --- Health ---

// Health performs the unauthenticated liveness probe.
func (c *Client) Health(ctx context.Context) (*Status, error) {
	var result Status
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/health",
		result: &result,
		noAuth: true,
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Ready performs the unauthenticated readiness probe.
func (c *Client) Ready(ctx context.Context) (*Status, error) {
	var result Status
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/ready",
		result: &result,
		noAuth: true,
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
