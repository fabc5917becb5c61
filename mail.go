package minutemail

import (
	"context"

	"github.com/minutemail/client-go/internal/api"
)

// Mail represents a received mail with body content and attachment
// summaries.
type Mail = api.Mail

// ListMails lists the mails of a mailbox, in the order delivered by the
// gateway.
func (c *Client) ListMails(ctx context.Context, mailboxID string) ([]Mail, error) {
	mails, err := c.apiClient.ListMails(ctx, mailboxID)
	if err != nil {
		return nil, wrapError(err)
	}
	return mails, nil
}

// GetMail fetches a mail with body content and attachment summaries.
func (c *Client) GetMail(ctx context.Context, mailboxID, mailID string) (*Mail, error) {
	mail, err := c.apiClient.GetMail(ctx, mailboxID, mailID)
	if err != nil {
		return nil, wrapError(err)
	}
	return mail, nil
}

// DeleteMail deletes a single mail.
func (c *Client) DeleteMail(ctx context.Context, mailboxID, mailID string) error {
	return wrapError(c.apiClient.DeleteMail(ctx, mailboxID, mailID))
}

// DeleteMails deletes multiple mails from a mailbox in a single request.
// The gateway also removes the attachments of the deleted mails. An empty id
// list is rejected locally without a network call.
func (c *Client) DeleteMails(ctx context.Context, mailboxID string, ids []string) error {
	return wrapError(c.apiClient.DeleteMails(ctx, mailboxID, ids))
}
