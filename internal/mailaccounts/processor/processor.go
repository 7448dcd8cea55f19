package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crm-server/internal/clients/googleoauth"
	"crm-server/internal/mailer"
	"crm-server/internal/observability"
	"crm-server/internal/store"
	"crm-server/internal/tokenbroker"

	"github.com/badoux/checkmail"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

var (
	ErrInvalidState     = errors.New("invalid or expired connect state")
	ErrConnectFailed    = errors.New("failed to connect mail account")
	ErrAccountNotLinked = errors.New("no mail account connected")
	ErrNoRefreshToken   = errors.New("google did not return a refresh token, remove the app's access and connect again")
	ErrInvalidRecipient = errors.New("invalid recipient address")
)

const (
	stateAudience = "mail-account-connect"
	stateTTL      = 10 * time.Minute
)

type MailCredentialStore interface {
	GetMailCredentialByUserID(ctx context.Context, userID uuid.UUID, provider string) (store.MailCredential, error)
	UpsertMailCredential(ctx context.Context, params store.UpsertMailCredentialParams) (store.MailCredential, error)
	DeleteMailCredential(ctx context.Context, userID uuid.UUID, provider string) error
	CreateEmailLog(ctx context.Context, params store.CreateEmailLogParams) (store.EmailLog, error)
}

type OAuthClient interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	GetUserInfo(ctx context.Context, accessToken string) (googleoauth.UserInfo, error)
	RevokeToken(ctx context.Context, token string) error
}

type TokenBroker interface {
	EnsureFreshToken(ctx context.Context, userID uuid.UUID) (store.MailCredential, error)
	ForceRefresh(ctx context.Context, userID uuid.UUID) (tokenbroker.Session, error)
	GetAuthenticatedSession(ctx context.Context, userID uuid.UUID) tokenbroker.Session
}

type Sender interface {
	Send(ctx context.Context, ts oauth2.TokenSource, msg mailer.Message) (mailer.Result, error)
}

type MailAccountProcessor struct {
	store     MailCredentialStore
	oauth     OAuthClient
	broker    TokenBroker
	sender    Sender
	jwtSecret string
	logger    *observability.Logger
	now       func() time.Time
}

func New(store MailCredentialStore, oauth OAuthClient, broker TokenBroker, sender Sender, jwtSecret string, logger *observability.Logger) MailAccountProcessor {
	return MailAccountProcessor{
		store:     store,
		oauth:     oauth,
		broker:    broker,
		sender:    sender,
		jwtSecret: jwtSecret,
		logger:    logger,
		now:       time.Now,
	}
}

// Status is what the client sees about a user's linked mail account
type Status struct {
	Connected     bool       `json:"connected"`
	ProviderEmail string     `json:"provider_email,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	Message       string     `json:"message,omitempty"`
}

// ConnectURL returns the Google consent URL for the user. The state carries the user
// so the callback can run without a session.
func (p *MailAccountProcessor) ConnectURL(ctx context.Context, userID uuid.UUID) (string, error) {
	now := p.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Audience:  jwt.ClaimStrings{stateAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(stateTTL)),
	}
	state, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(p.jwtSecret))
	if err != nil {
		p.logger.Error(ctx, "failed to sign connect state", err)
		return "", ErrConnectFailed
	}
	return p.oauth.AuthCodeURL(state), nil
}

func (p *MailAccountProcessor) userFromState(state string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(state, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(p.jwtSecret), nil
	}, jwt.WithAudience(stateAudience), jwt.WithTimeFunc(p.now))
	if err != nil {
		return uuid.Nil, ErrInvalidState
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidState
	}
	return userID, nil
}

// Connect completes the OAuth flow: exchanges the code, reads the Google profile and
// stores the credential as connected
func (p *MailAccountProcessor) Connect(ctx context.Context, state, code string) (Status, error) {
	userID, err := p.userFromState(state)
	if err != nil {
		return Status{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})

	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		p.logger.Error(ctx, "failed to exchange google code", err)
		return Status{}, ErrConnectFailed
	}

	info, err := p.oauth.GetUserInfo(ctx, token.AccessToken)
	if err != nil {
		p.logger.Error(ctx, "failed to get google user info", err)
		return Status{}, ErrConnectFailed
	}

	if token.RefreshToken == "" {
		existing, err := p.store.GetMailCredentialByUserID(ctx, userID, store.MailProviderGoogle)
		if err != nil || existing.RefreshToken == "" {
			p.logger.Warn(ctx, "google connect returned no refresh token")
			return Status{}, ErrNoRefreshToken
		}
	}

	params := store.UpsertMailCredentialParams{
		UserID:         userID,
		Provider:       store.MailProviderGoogle,
		ProviderUserID: info.ID,
		ProviderEmail:  info.Email,
		AccessToken:    token.AccessToken,
		RefreshToken:   token.RefreshToken,
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		params.TokenExpiresAt = &expiry
	}
	cred, err := p.store.UpsertMailCredential(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to store mail credential", err)
		return Status{}, ErrConnectFailed
	}

	p.logger.Info(ctx, "mail account connected")
	return statusOf(cred), nil
}

func statusOf(cred store.MailCredential) Status {
	s := Status{Connected: cred.Connected, ExpiresAt: cred.TokenExpiresAt}
	if cred.ProviderEmail != nil {
		s.ProviderEmail = *cred.ProviderEmail
	}
	return s
}

// Status reports whether the account is usable, refreshing the token when it is close to expiry
func (p *MailAccountProcessor) Status(ctx context.Context, userID uuid.UUID) (Status, error) {
	cred, err := p.broker.EnsureFreshToken(ctx, userID)
	if err != nil {
		if tokenbroker.IsReconnectRequired(err) {
			return Status{Connected: false, Message: err.Error()}, nil
		}
		if errors.Is(err, tokenbroker.ErrTransientRefresh) {
			return Status{Connected: true, Message: "token refresh is temporarily failing"}, nil
		}
		p.logger.Error(ctx, "failed to get mail account status", err)
		return Status{}, err
	}
	return statusOf(cred), nil
}

// Refresh forces a token refresh
func (p *MailAccountProcessor) Refresh(ctx context.Context, userID uuid.UUID) (Status, error) {
	session, err := p.broker.ForceRefresh(ctx, userID)
	if err != nil {
		if errors.Is(err, tokenbroker.ErrNoProviderLinked) {
			return Status{}, ErrAccountNotLinked
		}
		return Status{}, err
	}
	expiry := session.Expiry
	return Status{Connected: true, ProviderEmail: session.SenderEmail, ExpiresAt: &expiry}, nil
}

// Disconnect revokes the refresh token at Google when possible and removes the credential
func (p *MailAccountProcessor) Disconnect(ctx context.Context, userID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})

	cred, err := p.store.GetMailCredentialByUserID(ctx, userID, store.MailProviderGoogle)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotLinked
		}
		p.logger.Error(ctx, "failed to get mail credential", err)
		return err
	}

	token := cred.RefreshToken
	if token == "" {
		token = cred.AccessToken
	}
	if token != "" {
		if err := p.oauth.RevokeToken(ctx, token); err != nil {
			p.logger.Warn(ctx, fmt.Sprintf("failed to revoke google token: %v", err))
		}
	}

	if err := p.store.DeleteMailCredential(ctx, userID, store.MailProviderGoogle); err != nil && !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to delete mail credential", err)
		return err
	}
	p.logger.Info(ctx, "mail account disconnected")
	return nil
}

const (
	testEmailSubject = "Test email from your CRM"
	testEmailBody    = "<p>Your mail account is connected. Emails you schedule will be sent from this address.</p>"
)

// SendTestEmail sends a fixed message through the user's own account and logs it
func (p *MailAccountProcessor) SendTestEmail(ctx context.Context, userID, orgID uuid.UUID, to string) (mailer.Result, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})

	if err := checkmail.ValidateFormat(to); err != nil {
		return mailer.Result{}, ErrInvalidRecipient
	}

	session := p.broker.GetAuthenticatedSession(ctx, userID)
	if !session.Available() {
		if session.Err != nil && tokenbroker.IsReconnectRequired(session.Err) {
			return mailer.Result{}, session.Err
		}
		return mailer.Result{}, fmt.Errorf("%w: %w", mailer.ErrProviderUnavailable, session.Err)
	}

	msg := mailer.Message{
		From:    session.SenderEmail,
		To:      []string{to},
		Subject: testEmailSubject,
		Body:    testEmailBody,
		IsHTML:  true,
	}
	res, sendErr := p.sender.Send(ctx, session.TokenSource(), msg)

	now := p.now()
	logParams := store.CreateEmailLogParams{
		UserID:         userID,
		OrganisationID: orgID,
		ToEmail:        to,
		Subject:        testEmailSubject,
		Body:           testEmailBody,
		Status:         store.EmailLogStatusSent,
		SentAt:         &now,
	}
	if sendErr != nil {
		reason := sendErr.Error()
		logParams.Status = store.EmailLogStatusFailed
		logParams.ErrorMessage = &reason
		logParams.SentAt = nil
	} else {
		logParams.MessageID = &res.MessageID
	}
	if _, err := p.store.CreateEmailLog(context.WithoutCancel(ctx), logParams); err != nil {
		p.logger.Error(ctx, "failed to log test email", err)
	}

	if sendErr != nil {
		p.logger.Error(ctx, "failed to send test email", sendErr)
		return mailer.Result{}, sendErr
	}
	return res, nil
}
