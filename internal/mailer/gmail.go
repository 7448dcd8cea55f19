package mailer

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"crm-server/internal/observability"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

var (
	// ErrProviderRejected is a client error such as an invalid recipient. Not retryable.
	ErrProviderRejected = errors.New("mail provider rejected the message")
	// ErrProviderUnavailable covers rate limits, 5xx responses and transport failures.
	ErrProviderUnavailable = errors.New("mail provider unavailable")
	// ErrAuthExpired means the access token was refused; refresh and retry once.
	ErrAuthExpired = errors.New("mail provider authorization expired")
)

// GmailSender sends through the Gmail API as the authenticated user
type GmailSender struct {
	endpoint  string
	transport http.RoundTripper
	logger    *observability.Logger
}

type GmailOption func(*GmailSender)

// WithGmailEndpoint overrides the API base URL
func WithGmailEndpoint(endpoint string) GmailOption {
	return func(s *GmailSender) { s.endpoint = endpoint }
}

// WithGmailTransport sets the base transport under the OAuth transport
func WithGmailTransport(rt http.RoundTripper) GmailOption {
	return func(s *GmailSender) { s.transport = rt }
}

func NewGmailSender(logger *observability.Logger, opts ...GmailOption) *GmailSender {
	s := &GmailSender{logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send performs exactly one send attempt
func (s *GmailSender) Send(ctx context.Context, ts oauth2.TokenSource, msg Message) (Result, error) {
	raw, err := BuildMIME(msg)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrProviderRejected, err)
	}

	httpClient := &http.Client{Transport: &oauth2.Transport{Source: ts, Base: s.transport}}
	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if s.endpoint != "" {
		opts = append(opts, option.WithEndpoint(s.endpoint))
	}
	svc, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("%w: failed to create gmail service: %w", ErrProviderUnavailable, err)
	}

	sent, err := svc.Users.Messages.Send("me", &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString(raw),
	}).Context(ctx).Do()
	if err != nil {
		err = classifySendError(err)
		s.logger.InfoWithError(ctx, "gmail send failed", err)
		return Result{}, err
	}
	return Result{MessageID: sent.Id}, nil
}

func classifySendError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusUnauthorized:
			return fmt.Errorf("%w: %w", ErrAuthExpired, err)
		case apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= 500:
			return fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
		case apiErr.Code >= 400:
			return fmt.Errorf("%w: %w", ErrProviderRejected, err)
		}
	}
	return fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
}
