package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const scheduledEmailColumns = `id, campaign_id, user_id, organisation_id, to_email, subject, body, status, scheduled_for, sent_at, attempts, error_message, next_retry_at, processing_started_at, metadata, created_at, updated_at`

// CreateScheduledEmailParams represents parameters for creating a scheduled email
type CreateScheduledEmailParams struct {
	CampaignID     *uuid.UUID
	UserID         uuid.UUID
	OrganisationID uuid.UUID
	ToEmail        string
	Subject        string
	Body           string
	Status         ScheduledEmailStatus
	ScheduledFor   *time.Time
	Metadata       JSONB
}

const sqlCreateScheduledEmail = `
INSERT INTO scheduled_emails (campaign_id, user_id, organisation_id, to_email, subject, body, status, scheduled_for, metadata)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + scheduledEmailColumns

// A campaign child is only inserted while its campaign is not cancelled. The share lock
// orders the insert against MarkCampaignCancelled.
const sqlCreateCampaignScheduledEmail = `
WITH parent AS (
    SELECT id FROM email_campaigns
    WHERE id = $1 AND status <> 'cancelled'
    FOR SHARE
)
INSERT INTO scheduled_emails (campaign_id, user_id, organisation_id, to_email, subject, body, status, scheduled_for, metadata)
SELECT parent.id, $2::uuid, $3::uuid, $4::text, $5::text, $6::text, $7::text, $8::timestamptz, $9::jsonb
FROM parent
RETURNING ` + scheduledEmailColumns

// ErrCampaignCancelled is returned when a child is created for a cancelled or missing campaign
var ErrCampaignCancelled = errors.New("campaign cancelled")

// CreateScheduledEmail creates a new scheduled email
func (s *Store) CreateScheduledEmail(ctx context.Context, params CreateScheduledEmailParams) (ScheduledEmail, error) {
	status := params.Status
	if status == "" {
		status = ScheduledEmailStatusPending
		if params.ScheduledFor != nil {
			status = ScheduledEmailStatusScheduled
		}
	}
	query := sqlCreateScheduledEmail
	if params.CampaignID != nil {
		query = sqlCreateCampaignScheduledEmail
	}
	var email ScheduledEmail
	err := s.db.GetContext(ctx, &email, query,
		params.CampaignID,
		params.UserID,
		params.OrganisationID,
		params.ToEmail,
		params.Subject,
		params.Body,
		status,
		params.ScheduledFor,
		params.Metadata)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ScheduledEmail{}, ErrCampaignCancelled
		}
		return ScheduledEmail{}, fmt.Errorf("failed to create scheduled email: %w", err)
	}
	return email, nil
}

const sqlGetScheduledEmailByID = `
SELECT ` + scheduledEmailColumns + `
FROM scheduled_emails
WHERE id = $1
`

// GetScheduledEmailByID retrieves a scheduled email by ID
func (s *Store) GetScheduledEmailByID(ctx context.Context, emailID uuid.UUID) (ScheduledEmail, error) {
	var email ScheduledEmail
	err := s.db.GetContext(ctx, &email, sqlGetScheduledEmailByID, emailID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ScheduledEmail{}, ErrNotFound
		}
		return ScheduledEmail{}, fmt.Errorf("failed to get scheduled email: %w", err)
	}
	return email, nil
}

// ListScheduledEmailsParams represents filters for listing scheduled emails
type ListScheduledEmailsParams struct {
	UserID         uuid.UUID
	OrganisationID uuid.UUID
	Status         *string
	CampaignID     *uuid.UUID
	FromDate       *time.Time
	ToDate         *time.Time
	Limit          int
	Offset         int
}

// ListScheduledEmailsResult represents a page of scheduled emails
type ListScheduledEmailsResult struct {
	Emails     []ScheduledEmail
	TotalCount int
}

// ListScheduledEmails retrieves scheduled emails visible to a user, newest send time first
func (s *Store) ListScheduledEmails(ctx context.Context, params ListScheduledEmailsParams) (ListScheduledEmailsResult, error) {
	where := ` WHERE (user_id = $1 OR organisation_id = $2)`
	args := []interface{}{params.UserID, params.OrganisationID}
	argCount := 2

	if params.Status != nil {
		argCount++
		where += fmt.Sprintf(" AND status = $%d", argCount)
		args = append(args, *params.Status)
	}
	if params.CampaignID != nil {
		argCount++
		where += fmt.Sprintf(" AND campaign_id = $%d", argCount)
		args = append(args, *params.CampaignID)
	}
	if params.FromDate != nil {
		argCount++
		where += fmt.Sprintf(" AND scheduled_for >= $%d", argCount)
		args = append(args, *params.FromDate)
	}
	if params.ToDate != nil {
		argCount++
		where += fmt.Sprintf(" AND scheduled_for <= $%d", argCount)
		args = append(args, *params.ToDate)
	}

	var totalCount int
	if err := s.db.GetContext(ctx, &totalCount, `SELECT COUNT(*) FROM scheduled_emails`+where, args...); err != nil {
		return ListScheduledEmailsResult{}, fmt.Errorf("failed to count scheduled emails: %w", err)
	}

	query := `SELECT ` + scheduledEmailColumns + ` FROM scheduled_emails` + where +
		fmt.Sprintf(" ORDER BY scheduled_for DESC NULLS LAST, created_at DESC LIMIT $%d OFFSET $%d", argCount+1, argCount+2)
	args = append(args, params.Limit, params.Offset)

	emails := []ScheduledEmail{}
	if err := s.db.SelectContext(ctx, &emails, query, args...); err != nil {
		return ListScheduledEmailsResult{}, fmt.Errorf("failed to list scheduled emails: %w", err)
	}
	return ListScheduledEmailsResult{Emails: emails, TotalCount: totalCount}, nil
}

// UpdateScheduledEmailParams represents editable scheduled email fields
type UpdateScheduledEmailParams struct {
	Subject      *string
	Body         *string
	ScheduledFor *time.Time
	Metadata     JSONB
}

const sqlUpdateScheduledEmail = `
UPDATE scheduled_emails
SET subject = COALESCE($2, subject),
    body = COALESCE($3, body),
    scheduled_for = COALESCE($4, scheduled_for),
    status = CASE WHEN $4::timestamptz IS NOT NULL THEN 'scheduled' ELSE status END,
    metadata = CASE WHEN $5::jsonb IS NOT NULL THEN metadata || $5::jsonb ELSE metadata END,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status IN ('pending', 'scheduled')
RETURNING ` + scheduledEmailColumns

// UpdateScheduledEmail edits an email that has not been picked up yet; ErrNotFound otherwise
func (s *Store) UpdateScheduledEmail(ctx context.Context, emailID uuid.UUID, params UpdateScheduledEmailParams) (ScheduledEmail, error) {
	var metadata interface{}
	if params.Metadata != nil {
		metadata = params.Metadata
	}
	var email ScheduledEmail
	err := s.db.GetContext(ctx, &email, sqlUpdateScheduledEmail,
		emailID,
		params.Subject,
		params.Body,
		params.ScheduledFor,
		metadata)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ScheduledEmail{}, ErrNotFound
		}
		return ScheduledEmail{}, fmt.Errorf("failed to update scheduled email: %w", err)
	}
	return email, nil
}

const sqlCancelScheduledEmail = `
UPDATE scheduled_emails
SET status = 'cancelled',
    next_retry_at = NULL,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status IN ('pending', 'scheduled')
`

// CancelScheduledEmail cancels a pending or scheduled email; false when the guard did not match
func (s *Store) CancelScheduledEmail(ctx context.Context, emailID uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlCancelScheduledEmail, emailID)
	if err != nil {
		return false, fmt.Errorf("failed to cancel scheduled email: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

const sqlCancelPendingCampaignEmails = `
UPDATE scheduled_emails
SET status = 'cancelled',
    next_retry_at = NULL,
    updated_at = CURRENT_TIMESTAMP
WHERE campaign_id = $1 AND status IN ('pending', 'scheduled')
`

// CancelPendingCampaignEmails cancels every not yet claimed child of a campaign
func (s *Store) CancelPendingCampaignEmails(ctx context.Context, campaignID uuid.UUID) (int, error) {
	res, err := s.db.ExecContext(ctx, sqlCancelPendingCampaignEmails, campaignID)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel campaign emails: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return int(rows), nil
}

// The claim guard admits fresh rows, failed rows whose retry is due, and
// processing rows whose lease expired. Attempts are capped in the same statement.
const sqlClaimScheduledEmail = `
UPDATE scheduled_emails
SET status = 'processing',
    attempts = attempts + 1,
    processing_started_at = CURRENT_TIMESTAMP,
    next_retry_at = NULL,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
  AND attempts < $2
  AND (
    status IN ('pending', 'scheduled')
    OR (status = 'failed' AND next_retry_at IS NOT NULL AND next_retry_at <= $3)
    OR (status = 'processing' AND processing_started_at < $4)
  )
RETURNING ` + scheduledEmailColumns

// ClaimScheduledEmail moves an email into processing and increments its attempt counter.
// ErrNotFound means another worker owns the row or it is no longer sendable.
func (s *Store) ClaimScheduledEmail(ctx context.Context, emailID uuid.UUID, now, leaseExpiredBefore time.Time) (ScheduledEmail, error) {
	var email ScheduledEmail
	err := s.db.GetContext(ctx, &email, sqlClaimScheduledEmail, emailID, MaxSendAttempts, now, leaseExpiredBefore)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ScheduledEmail{}, ErrNotFound
		}
		return ScheduledEmail{}, fmt.Errorf("failed to claim scheduled email: %w", err)
	}
	return email, nil
}

const sqlMarkScheduledEmailSent = `
UPDATE scheduled_emails
SET status = 'sent',
    sent_at = CURRENT_TIMESTAMP,
    error_message = NULL,
    next_retry_at = NULL,
    metadata = metadata || jsonb_build_object('message_id', $2::text),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'processing'
RETURNING ` + scheduledEmailColumns

// MarkScheduledEmailSent records a successful send with the provider message id
func (s *Store) MarkScheduledEmailSent(ctx context.Context, emailID uuid.UUID, messageID string) (ScheduledEmail, error) {
	var email ScheduledEmail
	err := s.db.GetContext(ctx, &email, sqlMarkScheduledEmailSent, emailID, messageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ScheduledEmail{}, ErrNotFound
		}
		return ScheduledEmail{}, fmt.Errorf("failed to mark scheduled email sent: %w", err)
	}
	return email, nil
}

const sqlMarkScheduledEmailFailed = `
UPDATE scheduled_emails
SET status = 'failed',
    error_message = $2,
    next_retry_at = $3,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'processing'
RETURNING ` + scheduledEmailColumns

// MarkScheduledEmailFailed records a failed attempt. A nil nextRetryAt makes the failure permanent.
func (s *Store) MarkScheduledEmailFailed(ctx context.Context, emailID uuid.UUID, errorMessage string, nextRetryAt *time.Time) (ScheduledEmail, error) {
	var email ScheduledEmail
	err := s.db.GetContext(ctx, &email, sqlMarkScheduledEmailFailed, emailID, errorMessage, nextRetryAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ScheduledEmail{}, ErrNotFound
		}
		return ScheduledEmail{}, fmt.Errorf("failed to mark scheduled email failed: %w", err)
	}
	return email, nil
}

const sqlGetDueScheduledEmails = `
SELECT ` + scheduledEmailColumns + `
FROM scheduled_emails
WHERE attempts < $3 AND (
    (status IN ('pending', 'scheduled') AND (scheduled_for IS NULL OR scheduled_for <= $1))
    OR (status = 'failed' AND next_retry_at IS NOT NULL AND next_retry_at <= $1)
    OR (status = 'processing' AND processing_started_at < $2)
)
ORDER BY scheduled_for ASC NULLS FIRST
LIMIT $4
`

// GetDueScheduledEmails lists emails whose delivery task should already have run.
// dueBefore bounds send and retry times; leaseExpiredBefore selects abandoned claims.
func (s *Store) GetDueScheduledEmails(ctx context.Context, dueBefore, leaseExpiredBefore time.Time, limit int) ([]ScheduledEmail, error) {
	emails := []ScheduledEmail{}
	err := s.db.SelectContext(ctx, &emails, sqlGetDueScheduledEmails, dueBefore, leaseExpiredBefore, MaxSendAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get due scheduled emails: %w", err)
	}
	return emails, nil
}

const sqlCountCampaignEmails = `
SELECT
    COUNT(*)::int AS total,
    COUNT(*) FILTER (WHERE status = 'pending')::int AS pending,
    COUNT(*) FILTER (WHERE status = 'scheduled')::int AS scheduled,
    COUNT(*) FILTER (WHERE status = 'processing')::int AS processing,
    COUNT(*) FILTER (WHERE status = 'sent')::int AS sent,
    COUNT(*) FILTER (WHERE status = 'failed')::int AS failed,
    COUNT(*) FILTER (WHERE status = 'failed' AND next_retry_at IS NOT NULL)::int AS retry_pending,
    COUNT(*) FILTER (WHERE status = 'cancelled')::int AS cancelled
FROM scheduled_emails
WHERE campaign_id = $1
`

// CountCampaignEmails groups a campaign's children by status
func (s *Store) CountCampaignEmails(ctx context.Context, campaignID uuid.UUID) (CampaignEmailCounts, error) {
	var counts CampaignEmailCounts
	if err := s.db.GetContext(ctx, &counts, sqlCountCampaignEmails, campaignID); err != nil {
		return CampaignEmailCounts{}, fmt.Errorf("failed to count campaign emails: %w", err)
	}
	return counts, nil
}

const sqlFailAbandonedScheduledEmails = `
UPDATE scheduled_emails
SET status = 'failed',
    error_message = $3,
    next_retry_at = NULL,
    updated_at = CURRENT_TIMESTAMP
WHERE status = 'processing' AND attempts >= $2 AND processing_started_at < $1
RETURNING ` + scheduledEmailColumns

// FailAbandonedScheduledEmails permanently fails claims that expired on their last allowed attempt.
// Such rows can never be reclaimed and would otherwise stay in processing.
func (s *Store) FailAbandonedScheduledEmails(ctx context.Context, leaseExpiredBefore time.Time, errorMessage string) ([]ScheduledEmail, error) {
	emails := []ScheduledEmail{}
	err := s.db.SelectContext(ctx, &emails, sqlFailAbandonedScheduledEmails, leaseExpiredBefore, MaxSendAttempts, errorMessage)
	if err != nil {
		return nil, fmt.Errorf("failed to fail abandoned scheduled emails: %w", err)
	}
	return emails, nil
}
