package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const mailCredentialColumns = `id, user_id, provider, provider_user_id, provider_email, access_token, refresh_token, token_expires_at, connected, revoked_at, last_refreshed_at, created_at, updated_at`

const sqlGetMailCredentialByUserID = `
SELECT ` + mailCredentialColumns + `
FROM mail_credentials
WHERE user_id = $1 AND provider = $2
`

// GetMailCredentialByUserID retrieves the credential a user linked for a provider
func (s *Store) GetMailCredentialByUserID(ctx context.Context, userID uuid.UUID, provider string) (MailCredential, error) {
	var cred MailCredential
	err := s.db.GetContext(ctx, &cred, sqlGetMailCredentialByUserID, userID, provider)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MailCredential{}, ErrNotFound
		}
		return MailCredential{}, fmt.Errorf("failed to get mail credential: %w", err)
	}
	return cred, nil
}

// UpsertMailCredentialParams represents a freshly completed OAuth connection
type UpsertMailCredentialParams struct {
	UserID         uuid.UUID
	Provider       string
	ProviderUserID string
	ProviderEmail  string
	AccessToken    string
	RefreshToken   string
	TokenExpiresAt *time.Time
}

// A reconnect without a new refresh token keeps the stored one.
const sqlUpsertMailCredential = `
INSERT INTO mail_credentials (user_id, provider, provider_user_id, provider_email, access_token, refresh_token, token_expires_at, connected, last_refreshed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE, CURRENT_TIMESTAMP)
ON CONFLICT (user_id, provider) DO UPDATE
SET provider_user_id = EXCLUDED.provider_user_id,
    provider_email = EXCLUDED.provider_email,
    access_token = EXCLUDED.access_token,
    refresh_token = CASE WHEN EXCLUDED.refresh_token = '' THEN mail_credentials.refresh_token ELSE EXCLUDED.refresh_token END,
    token_expires_at = EXCLUDED.token_expires_at,
    connected = TRUE,
    revoked_at = NULL,
    last_refreshed_at = CURRENT_TIMESTAMP,
    updated_at = CURRENT_TIMESTAMP
RETURNING ` + mailCredentialColumns

// UpsertMailCredential stores a connected credential, replacing any previous one
func (s *Store) UpsertMailCredential(ctx context.Context, params UpsertMailCredentialParams) (MailCredential, error) {
	var cred MailCredential
	err := s.db.GetContext(ctx, &cred, sqlUpsertMailCredential,
		params.UserID,
		params.Provider,
		params.ProviderUserID,
		params.ProviderEmail,
		params.AccessToken,
		params.RefreshToken,
		params.TokenExpiresAt)
	if err != nil {
		return MailCredential{}, fmt.Errorf("failed to upsert mail credential: %w", err)
	}
	return cred, nil
}

// UpdateMailCredentialTokensParams represents the result of a refresh exchange
type UpdateMailCredentialTokensParams struct {
	CredentialID   uuid.UUID
	AccessToken    string
	TokenExpiresAt *time.Time
	// RefreshToken is only written when the provider rotated it
	RefreshToken *string
}

// Last writer wins: concurrent refreshers each persist a valid token.
const sqlUpdateMailCredentialTokens = `
UPDATE mail_credentials
SET access_token = $2,
    token_expires_at = $3,
    refresh_token = COALESCE($4, refresh_token),
    connected = TRUE,
    revoked_at = NULL,
    last_refreshed_at = CURRENT_TIMESTAMP,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + mailCredentialColumns

// UpdateMailCredentialTokens persists refreshed tokens and marks the credential connected
func (s *Store) UpdateMailCredentialTokens(ctx context.Context, params UpdateMailCredentialTokensParams) (MailCredential, error) {
	var cred MailCredential
	err := s.db.GetContext(ctx, &cred, sqlUpdateMailCredentialTokens,
		params.CredentialID,
		params.AccessToken,
		params.TokenExpiresAt,
		params.RefreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MailCredential{}, ErrNotFound
		}
		return MailCredential{}, fmt.Errorf("failed to update mail credential tokens: %w", err)
	}
	return cred, nil
}

const sqlMarkMailCredentialRevoked = `
UPDATE mail_credentials
SET connected = FALSE,
    revoked_at = CURRENT_TIMESTAMP,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// MarkMailCredentialRevoked flips connected off after the provider reported an invalid grant
func (s *Store) MarkMailCredentialRevoked(ctx context.Context, credentialID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlMarkMailCredentialRevoked, credentialID)
	if err != nil {
		return fmt.Errorf("failed to mark mail credential revoked: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlDeleteMailCredential = `
DELETE FROM mail_credentials
WHERE user_id = $1 AND provider = $2
`

// DeleteMailCredential removes a user's credential for a provider
func (s *Store) DeleteMailCredential(ctx context.Context, userID uuid.UUID, provider string) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteMailCredential, userID, provider)
	if err != nil {
		return fmt.Errorf("failed to delete mail credential: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
