package tokenbroker

import (
	"time"

	"crm-server/internal/store"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// Session is an authenticated handle for one user's mail account.
// When Err is set the account cannot be used and Err says why.
type Session struct {
	UserID      uuid.UUID
	SenderEmail string
	AccessToken string
	Expiry      time.Time
	Err         error
}

func newSession(cred store.MailCredential) Session {
	s := Session{
		UserID:      cred.UserID,
		AccessToken: cred.AccessToken,
	}
	if cred.ProviderEmail != nil {
		s.SenderEmail = *cred.ProviderEmail
	}
	if cred.TokenExpiresAt != nil {
		s.Expiry = *cred.TokenExpiresAt
	}
	return s
}

// Available reports whether the session can be used to send
func (s Session) Available() bool {
	return s.Err == nil && s.AccessToken != ""
}

// TokenSource returns a fixed token source for the session's access token
func (s Session) TokenSource() oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: s.AccessToken,
		TokenType:   "Bearer",
		Expiry:      s.Expiry,
	})
}
