package mail

import (
	"context"
	"errors"
	"fmt"

	"crm-server/internal/observability"

	"github.com/resendlabs/resend-go"
)

// ErrNotConfigured is returned when no Resend API key is configured
var ErrNotConfigured = errors.New("resend client not configured")

// ResendClient sends system mail from the application's default sender
type ResendClient struct {
	client *resend.Client
	from   string
	logger *observability.Logger
}

// NewResendClient returns nil when apiKey is empty; a nil client reports ErrNotConfigured.
func NewResendClient(apiKey, defaultSender string, logger *observability.Logger) *ResendClient {
	if apiKey == "" {
		return nil
	}
	return &ResendClient{
		client: resend.NewClient(apiKey),
		from:   defaultSender,
		logger: logger,
	}
}

// Enabled reports whether the client can send
func (c *ResendClient) Enabled() bool {
	return c != nil && c.client != nil && c.from != ""
}

// From returns the default sender address
func (c *ResendClient) From() string {
	if c == nil {
		return ""
	}
	return c.from
}

// SendEmail sends an HTML email from the default sender and returns the Resend message id
func (c *ResendClient) SendEmail(ctx context.Context, to []string, subject, htmlContent string) (string, error) {
	if !c.Enabled() {
		return "", ErrNotConfigured
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
	)

	res, err := c.client.Emails.Send(&resend.SendEmailRequest{
		From:    c.from,
		To:      to,
		Subject: subject,
		Html:    htmlContent,
	})
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Info(ctx, "email sent successfully")
	return res.Id, nil
}
