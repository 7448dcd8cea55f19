package tokenbroker

//go:generate go run go.uber.org/mock/mockgen@latest -source=broker.go -destination=mocks_test.go -package=tokenbroker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crm-server/internal/clients/googleoauth"
	"crm-server/internal/observability"
	"crm-server/internal/store"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// RefreshWindow is how close to expiry a token may get before it is refreshed.
const RefreshWindow = 5 * time.Minute

const (
	lockTTL         = 30 * time.Second
	defaultLockWait = 2 * time.Second
)

var (
	ErrNoProviderLinked = errors.New("no mail provider linked")
	ErrNoRefreshToken   = errors.New("mail account has no refresh token")
	ErrGrantRevoked     = errors.New("mail account access was revoked, reconnect the account")
	ErrTransientRefresh = errors.New("mail token refresh failed")
)

type Store interface {
	GetMailCredentialByUserID(ctx context.Context, userID uuid.UUID, provider string) (store.MailCredential, error)
	UpdateMailCredentialTokens(ctx context.Context, params store.UpdateMailCredentialTokensParams) (store.MailCredential, error)
	MarkMailCredentialRevoked(ctx context.Context, credentialID uuid.UUID) error
}

type OAuthClient interface {
	RefreshToken(ctx context.Context, refreshToken string) (*oauth2.Token, error)
}

// Locker is an advisory lock used to avoid redundant refresh calls.
type Locker interface {
	AcquireLock(ctx context.Context, key, token string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, token string) error
}

// Broker keeps each user's Google access token valid.
type Broker struct {
	store    Store
	oauth    OAuthClient
	locker   Locker
	logger   *observability.Logger
	now      func() time.Time
	lockWait time.Duration
}

// New creates a broker. locker may be nil.
func New(store Store, oauth OAuthClient, locker Locker, logger *observability.Logger) *Broker {
	return &Broker{
		store:    store,
		oauth:    oauth,
		locker:   locker,
		logger:   logger,
		now:      time.Now,
		lockWait: defaultLockWait,
	}
}

// IsReconnectRequired reports whether err means the user must link their account again.
func IsReconnectRequired(err error) bool {
	return errors.Is(err, ErrNoProviderLinked) || errors.Is(err, ErrNoRefreshToken) || errors.Is(err, ErrGrantRevoked)
}

// EnsureFreshToken returns the user's credential with an access token valid for at least RefreshWindow.
func (b *Broker) EnsureFreshToken(ctx context.Context, userID uuid.UUID) (store.MailCredential, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})

	cred, err := b.load(ctx, userID)
	if err != nil {
		return store.MailCredential{}, err
	}
	if !cred.NeedsRefresh(b.now(), RefreshWindow) {
		return cred, nil
	}
	return b.refresh(ctx, cred)
}

// ForceRefresh refreshes regardless of the stored expiry, for use after the provider rejected a token.
func (b *Broker) ForceRefresh(ctx context.Context, userID uuid.UUID) (Session, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})

	cred, err := b.load(ctx, userID)
	if err != nil {
		return Session{UserID: userID, Err: err}, err
	}
	cred, err = b.refreshNow(ctx, cred)
	if err != nil {
		return Session{UserID: userID, Err: err}, err
	}
	return newSession(cred), nil
}

// GetAuthenticatedSession never fails: an unusable account yields a session whose Err is set.
func (b *Broker) GetAuthenticatedSession(ctx context.Context, userID uuid.UUID) Session {
	cred, err := b.EnsureFreshToken(ctx, userID)
	if err != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})
		b.logger.InfoWithError(ctx, "mail session unavailable", err)
		return Session{UserID: userID, Err: err}
	}
	return newSession(cred)
}

func (b *Broker) load(ctx context.Context, userID uuid.UUID) (store.MailCredential, error) {
	cred, err := b.store.GetMailCredentialByUserID(ctx, userID, store.MailProviderGoogle)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.MailCredential{}, ErrNoProviderLinked
		}
		b.logger.Error(ctx, "failed to load mail credential", err)
		return store.MailCredential{}, fmt.Errorf("%w: %w", ErrTransientRefresh, err)
	}
	if cred.RefreshToken == "" {
		return store.MailCredential{}, ErrNoRefreshToken
	}
	if !cred.Connected {
		return store.MailCredential{}, ErrGrantRevoked
	}
	return cred, nil
}

// refresh takes the advisory lock when available. A worker that loses the race
// waits and re-reads; if the token is still stale it refreshes anyway.
func (b *Broker) refresh(ctx context.Context, cred store.MailCredential) (store.MailCredential, error) {
	if b.locker == nil {
		return b.refreshNow(ctx, cred)
	}

	key := "mail-token-refresh:" + cred.UserID.String()
	token := uuid.New().String()
	acquired, err := b.locker.AcquireLock(ctx, key, token, lockTTL)
	if err != nil {
		b.logger.InfoWithError(ctx, "refresh lock unavailable, refreshing without it", err)
		return b.refreshNow(ctx, cred)
	}
	if acquired {
		defer func() {
			if err := b.locker.ReleaseLock(context.WithoutCancel(ctx), key, token); err != nil {
				b.logger.InfoWithError(ctx, "failed to release refresh lock", err)
			}
		}()
		return b.refreshNow(ctx, cred)
	}

	select {
	case <-ctx.Done():
		return store.MailCredential{}, fmt.Errorf("%w: %w", ErrTransientRefresh, ctx.Err())
	case <-time.After(b.lockWait):
	}

	reread, err := b.load(ctx, cred.UserID)
	if err != nil {
		return store.MailCredential{}, err
	}
	if !reread.NeedsRefresh(b.now(), RefreshWindow) {
		return reread, nil
	}
	return b.refreshNow(ctx, reread)
}

func (b *Broker) refreshNow(ctx context.Context, cred store.MailCredential) (store.MailCredential, error) {
	token, err := b.oauth.RefreshToken(ctx, cred.RefreshToken)
	if err != nil {
		if errors.Is(err, googleoauth.ErrInvalidGrant) {
			b.logger.InfoWithError(ctx, "mail grant revoked by provider", err)
			if markErr := b.store.MarkMailCredentialRevoked(ctx, cred.ID); markErr != nil {
				b.logger.Error(ctx, "failed to mark mail credential revoked", markErr)
			}
			return store.MailCredential{}, fmt.Errorf("%w: %w", ErrGrantRevoked, err)
		}
		b.logger.Error(ctx, "failed to refresh mail token", err)
		return store.MailCredential{}, fmt.Errorf("%w: %w", ErrTransientRefresh, err)
	}

	params := store.UpdateMailCredentialTokensParams{
		CredentialID: cred.ID,
		AccessToken:  token.AccessToken,
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		params.TokenExpiresAt = &expiry
	}
	if token.RefreshToken != "" && token.RefreshToken != cred.RefreshToken {
		rotated := token.RefreshToken
		params.RefreshToken = &rotated
	}

	updated, err := b.store.UpdateMailCredentialTokens(ctx, params)
	if err != nil {
		b.logger.Error(ctx, "failed to persist refreshed mail token", err)
		return store.MailCredential{}, fmt.Errorf("%w: %w", ErrTransientRefresh, err)
	}
	b.logger.Info(ctx, "refreshed mail access token")
	return updated, nil
}
