package googleoauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"crm-server/internal/observability"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
)

const (
	defaultUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"
	defaultRevokeURL   = "https://oauth2.googleapis.com/revoke"
)

// ErrInvalidGrant is returned when Google rejects a refresh token as expired or revoked.
var ErrInvalidGrant = errors.New("invalid_grant")

// UserInfo is the subset of the OpenID userinfo document we store
type UserInfo struct {
	ID        string `json:"sub"`
	Email     string `json:"email"`
	FirstName string `json:"given_name"`
	LastName  string `json:"family_name"`
}

type Client struct {
	config      *oauth2.Config
	userInfoURL string
	revokeURL   string
	httpClient  *http.Client
	logger      *observability.Logger
}

// Option customizes the client, mostly for pointing it at a fake server in tests
type Option func(*Client)

func WithEndpoint(endpoint oauth2.Endpoint) Option {
	return func(c *Client) { c.config.Endpoint = endpoint }
}

func WithUserInfoURL(u string) Option {
	return func(c *Client) { c.userInfoURL = u }
}

func WithRevokeURL(u string) Option {
	return func(c *Client) { c.revokeURL = u }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(clientID, clientSecret, redirectURL string, logger *observability.Logger, opts ...Option) *Client {
	c := &Client{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"openid", "email", "profile", gmail.GmailSendScope},
		},
		userInfoURL: defaultUserInfoURL,
		revokeURL:   defaultRevokeURL,
		httpClient:  &http.Client{},
		logger:      logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) oauthContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

// AuthCodeURL builds the consent URL. Offline access with forced consent makes Google issue a refresh token.
func (c *Client) AuthCodeURL(state string) string {
	return c.config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Exchange trades an authorization code for tokens
func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := c.config.Exchange(c.oauthContext(ctx), code)
	if err != nil {
		c.logger.Error(ctx, "failed to exchange authorization code", err)
		return nil, fmt.Errorf("failed to exchange authorization code: %w", classify(err))
	}
	return token, nil
}

// RefreshToken obtains a new access token. The returned token carries the old
// refresh token unless Google rotated it.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	ts := c.config.TokenSource(c.oauthContext(ctx), &oauth2.Token{RefreshToken: refreshToken})
	token, err := ts.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", classify(err))
	}
	return token, nil
}

func classify(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.ErrorCode == "invalid_grant" {
		return fmt.Errorf("%w: %s", ErrInvalidGrant, retrieveErr.ErrorDescription)
	}
	return err
}

func (c *Client) GetUserInfo(ctx context.Context, accessToken string) (UserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userInfoURL, nil)
	if err != nil {
		return UserInfo{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "failed to fetch google user info", err)
		return UserInfo{}, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return UserInfo{}, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return UserInfo{}, fmt.Errorf("failed to get user info: status %d", resp.StatusCode)
	}

	var userInfo UserInfo
	if err := json.Unmarshal(body, &userInfo); err != nil {
		return UserInfo{}, fmt.Errorf("failed to unmarshal response body: %w", err)
	}
	return userInfo, nil
}

// RevokeToken asks Google to invalidate a token. Already invalid tokens are not an error.
func (c *Client) RevokeToken(ctx context.Context, token string) error {
	form := url.Values{"token": {token}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.revokeURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusBadRequest:
		return nil
	default:
		return fmt.Errorf("failed to revoke token: status %d", resp.StatusCode)
	}
}
