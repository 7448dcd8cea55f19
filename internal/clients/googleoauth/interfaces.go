package googleoauth

import (
	"context"

	"golang.org/x/oauth2"
)

// GoogleOAuthClient defines the interface for Google OAuth operations
type GoogleOAuthClient interface {
	// AuthCodeURL returns the consent screen URL for the given state
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for access and refresh tokens
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)

	// RefreshToken exchanges a refresh token for a new access token
	RefreshToken(ctx context.Context, refreshToken string) (*oauth2.Token, error)

	// GetUserInfo retrieves user information from Google using an access token
	GetUserInfo(ctx context.Context, accessToken string) (UserInfo, error)

	// RevokeToken invalidates a token at Google
	RevokeToken(ctx context.Context, token string) error
}

var _ GoogleOAuthClient = (*Client)(nil)
