package minutemail

import (
	"context"

	"github.com/minutemail/client-go/internal/api"
)

// Mailbox represents an active disposable mailbox.
type Mailbox = api.Mailbox

// ArchivedMailbox represents a mailbox retained after expiry because it was
// created with recoverable=true.
type ArchivedMailbox = api.ArchivedMailbox

// listConfig holds configuration for mailbox listing.
type listConfig struct {
	address string
}

// ListOption configures mailbox listing.
type ListOption func(*listConfig)

// WithAddress filters the mailbox list by exact email address.
func WithAddress(address string) ListOption {
	return func(c *listConfig) {
		c.address = address
	}
}

// ListMailboxes lists active mailboxes, sorted by creation time descending
// as delivered by the gateway.
func (c *Client) ListMailboxes(ctx context.Context, opts ...ListOption) ([]Mailbox, error) {
	cfg := &listConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	mailboxes, err := c.apiClient.ListMailboxes(ctx, cfg.address)
	if err != nil {
		return nil, wrapError(err)
	}
	return mailboxes, nil
}

// CreateMailbox creates a disposable mailbox on the given domain.
//
// Optional fields left unset are omitted from the request body. Conditional
// requirements, such as a tag being required for recoverable mailboxes, are
// enforced by the gateway, not the client.
func (c *Client) CreateMailbox(ctx context.Context, domain string, opts ...MailboxOption) (*Mailbox, error) {
	cfg := &mailboxConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	mailbox, err := c.apiClient.CreateMailbox(ctx, api.CreateMailboxRequest{
		Domain:      domain,
		ExpiresIn:   cfg.expiresIn,
		Recoverable: cfg.recoverable,
		Tag:         cfg.tag,
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return mailbox, nil
}

// GetMailbox fetches a mailbox by id.
func (c *Client) GetMailbox(ctx context.Context, mailboxID string) (*Mailbox, error) {
	mailbox, err := c.apiClient.GetMailbox(ctx, mailboxID)
	if err != nil {
		return nil, wrapError(err)
	}
	return mailbox, nil
}

// DeleteMailbox deletes a single mailbox. A recoverable mailbox is archived
// by the gateway instead of being removed permanently.
func (c *Client) DeleteMailbox(ctx context.Context, mailboxID string) error {
	return wrapError(c.apiClient.DeleteMailbox(ctx, mailboxID))
}

// DeleteMailboxes deletes multiple mailboxes in a single request. The
// gateway validates all ids before deleting any of them; the client does not
// retry partial failures. An empty id list is rejected locally without a
// network call.
func (c *Client) DeleteMailboxes(ctx context.Context, ids []string) error {
	return wrapError(c.apiClient.DeleteMailboxes(ctx, ids))
}

// ListArchivedMailboxes lists archived mailboxes.
func (c *Client) ListArchivedMailboxes(ctx context.Context) ([]ArchivedMailbox, error) {
	mailboxes, err := c.apiClient.ListArchivedMailboxes(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return mailboxes, nil
}

// GetArchivedMailbox fetches an archived mailbox by id.
func (c *Client) GetArchivedMailbox(ctx context.Context, archivedID string) (*ArchivedMailbox, error) {
	mailbox, err := c.apiClient.GetArchivedMailbox(ctx, archivedID)
	if err != nil {
		return nil, wrapError(err)
	}
	return mailbox, nil
}

// ReactivateArchivedMailbox turns an archived mailbox back into an active
// one. Pass the zero ExpiresIn to use the gateway's default lifetime.
func (c *Client) ReactivateArchivedMailbox(ctx context.Context, archivedID string, expiresIn ExpiresIn) (*Mailbox, error) {
	var req *api.ReactivateRequest
	if !expiresIn.IsZero() {
		req = &api.ReactivateRequest{ExpiresIn: expiresIn}
	}

	mailbox, err := c.apiClient.ReactivateArchivedMailbox(ctx, archivedID, req)
	if err != nil {
		return nil, wrapError(err)
	}
	return mailbox, nil
}

// DeleteArchivedMailbox permanently deletes a single archived mailbox.
// This cannot be undone.
func (c *Client) DeleteArchivedMailbox(ctx context.Context, archivedID string) error {
	return wrapError(c.apiClient.DeleteArchivedMailbox(ctx, archivedID))
}

// DeleteArchivedMailboxes permanently deletes multiple archived mailboxes in
// a single request. This cannot be undone. An empty id list is rejected
// locally without a network call.
func (c *Client) DeleteArchivedMailboxes(ctx context.Context, ids []string) error {
	return wrapError(c.apiClient.DeleteArchivedMailboxes(ctx, ids))
}
