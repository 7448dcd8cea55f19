package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const emailLogColumns = `id, scheduled_email_id, lead_id, user_id, organisation_id, to_email, subject, body, message_id, status, error_message, sent_at, scheduled_for, created_at`

// CreateEmailLogParams represents one send attempt outcome
type CreateEmailLogParams struct {
	ScheduledEmailID *uuid.UUID
	LeadID           *uuid.UUID
	UserID           uuid.UUID
	OrganisationID   uuid.UUID
	ToEmail          string
	Subject          string
	Body             string
	MessageID        *string
	Status           string
	ErrorMessage     *string
	SentAt           *time.Time
	ScheduledFor     *time.Time
}

const sqlCreateEmailLog = `
INSERT INTO email_logs (scheduled_email_id, lead_id, user_id, organisation_id, to_email, subject, body, message_id, status, error_message, sent_at, scheduled_for)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + emailLogColumns

// CreateEmailLog appends an audit record
func (s *Store) CreateEmailLog(ctx context.Context, params CreateEmailLogParams) (EmailLog, error) {
	var log EmailLog
	err := s.db.GetContext(ctx, &log, sqlCreateEmailLog,
		params.ScheduledEmailID,
		params.LeadID,
		params.UserID,
		params.OrganisationID,
		params.ToEmail,
		params.Subject,
		params.Body,
		params.MessageID,
		params.Status,
		params.ErrorMessage,
		params.SentAt,
		params.ScheduledFor)
	if err != nil {
		return EmailLog{}, fmt.Errorf("failed to create email log: %w", err)
	}
	return log, nil
}

const sqlGetEmailLogsByLead = `
SELECT ` + emailLogColumns + `
FROM email_logs
WHERE lead_id = $1 AND (user_id = $2 OR organisation_id = $3)
ORDER BY created_at DESC
LIMIT $4 OFFSET $5
`

// GetEmailLogsByLead returns the send history for a lead, newest first
func (s *Store) GetEmailLogsByLead(ctx context.Context, leadID, userID, organisationID uuid.UUID, limit, offset int) ([]EmailLog, error) {
	logs := []EmailLog{}
	err := s.db.SelectContext(ctx, &logs, sqlGetEmailLogsByLead, leadID, userID, organisationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get email logs: %w", err)
	}
	return logs, nil
}

// LeadEmailSummary aggregates a lead's send history
type LeadEmailSummary struct {
	Total    int        `db:"total"`
	LastSent *time.Time `db:"last_sent"`
}

const sqlGetLeadEmailSummary = `
SELECT COUNT(*)::int AS total,
       MAX(sent_at) FILTER (WHERE status = 'sent') AS last_sent
FROM email_logs
WHERE lead_id = $1 AND (user_id = $2 OR organisation_id = $3)
`

// GetLeadEmailSummary counts a lead's logged sends and finds the latest successful one
func (s *Store) GetLeadEmailSummary(ctx context.Context, leadID, userID, organisationID uuid.UUID) (LeadEmailSummary, error) {
	var summary LeadEmailSummary
	if err := s.db.GetContext(ctx, &summary, sqlGetLeadEmailSummary, leadID, userID, organisationID); err != nil {
		return LeadEmailSummary{}, fmt.Errorf("failed to get lead email summary: %w", err)
	}
	return summary, nil
}
