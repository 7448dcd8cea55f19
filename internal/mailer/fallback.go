package mailer

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
)

var ErrFallbackDisabled = errors.New("default mailer not configured")

// SystemMailClient sends from the application's own sender address
type SystemMailClient interface {
	Enabled() bool
	From() string
	SendEmail(ctx context.Context, to []string, subject, htmlContent string) (string, error)
}

// DefaultMailer sends on behalf of users whose own mail account cannot be used.
// Attachments and Cc/Bcc are not carried over.
type DefaultMailer struct {
	client SystemMailClient
}

func NewDefaultMailer(client SystemMailClient) *DefaultMailer {
	return &DefaultMailer{client: client}
}

// Enabled reports whether fallback sends are possible
func (d *DefaultMailer) Enabled() bool {
	return d != nil && d.client != nil && d.client.Enabled()
}

// Send sends msg from the default sender. Failures are reported as ErrProviderUnavailable.
func (d *DefaultMailer) Send(ctx context.Context, msg Message) (Result, error) {
	if !d.Enabled() {
		return Result{}, ErrFallbackDisabled
	}
	if err := msg.validate(); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrProviderRejected, err)
	}

	body := msg.Body
	if !msg.IsHTML {
		body = strings.ReplaceAll(html.EscapeString(body), "\n", "<br>")
	}
	id, err := d.client.SendEmail(ctx, msg.To, msg.Subject, body)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}
	return Result{MessageID: id}, nil
}
