package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

// JSONB is a custom type for JSONB object fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = JSONB{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*j = JSONB{}
		return nil
	}

	result := make(JSONB)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

// Merge returns a copy of j with the keys of other applied on top.
func (j JSONB) Merge(other map[string]interface{}) JSONB {
	merged := make(JSONB, len(j)+len(other))
	for k, v := range j {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// String returns the string value stored under key, if any.
func (j JSONB) String(key string) string {
	if v, ok := j[key].(string); ok {
		return v
	}
	return ""
}

// MailCredential is a user's OAuth credential for a mail provider
type MailCredential struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	UserID          uuid.UUID  `db:"user_id" json:"user_id"`
	Provider        string     `db:"provider" json:"provider"`
	ProviderUserID  *string    `db:"provider_user_id" json:"provider_user_id,omitempty"`
	ProviderEmail   *string    `db:"provider_email" json:"provider_email,omitempty"`
	AccessToken     string     `db:"access_token" json:"-"`
	RefreshToken    string     `db:"refresh_token" json:"-"`
	TokenExpiresAt  *time.Time `db:"token_expires_at" json:"token_expires_at,omitempty"`
	Connected       bool       `db:"connected" json:"connected"`
	RevokedAt       *time.Time `db:"revoked_at" json:"revoked_at,omitempty"`
	LastRefreshedAt *time.Time `db:"last_refreshed_at" json:"last_refreshed_at,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// NeedsRefresh reports whether the access token is missing an expiry, expired, or inside the safety window.
func (c MailCredential) NeedsRefresh(now time.Time, window time.Duration) bool {
	if c.AccessToken == "" || c.TokenExpiresAt == nil {
		return true
	}
	return !c.TokenExpiresAt.After(now.Add(window))
}

// Campaign is a named batch send-out built from one template
type Campaign struct {
	ID              uuid.UUID      `db:"id" json:"id"`
	SenderID        uuid.UUID      `db:"sender_id" json:"sender_id"`
	OrganisationID  uuid.UUID      `db:"organisation_id" json:"organisation_id"`
	Name            string         `db:"name" json:"name"`
	Subject         string         `db:"subject" json:"subject"`
	Audience        types.JSONText `db:"audience" json:"audience"`
	Content         string         `db:"content" json:"content"`
	Schedule        string         `db:"schedule" json:"schedule"`
	Status          CampaignStatus `db:"status" json:"status"`
	ScheduleTime    *time.Time     `db:"schedule_time" json:"schedule_time,omitempty"`
	SentCount       int            `db:"sent_count" json:"sent_count"`
	FailedCount     int            `db:"failed_count" json:"failed_count"`
	TotalCount      int            `db:"total_count" json:"total_count"`
	ErrorMessage    *string        `db:"error_message" json:"error_message,omitempty"`
	StartedAt       *time.Time     `db:"started_at" json:"started_at,omitempty"`
	CompletedAt     *time.Time     `db:"completed_at" json:"completed_at,omitempty"`
	CancelledAt     *time.Time     `db:"cancelled_at" json:"cancelled_at,omitempty"`
	LastProcessedAt *time.Time     `db:"last_processed_at" json:"last_processed_at,omitempty"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

// CanBeCancelled reports whether the campaign may still be cancelled
func (c Campaign) CanBeCancelled() bool {
	switch c.Status {
	case CampaignStatusDraft, CampaignStatusScheduled, CampaignStatusSending, CampaignStatusProcessing:
		return true
	}
	return false
}

// CanBeUpdated reports whether the campaign is neither in flight nor terminal
func (c Campaign) CanBeUpdated() bool {
	return c.Status == CampaignStatusDraft || c.Status == CampaignStatusScheduled
}

// IsSending reports whether the campaign is rolling up child results
func (c Campaign) IsSending() bool {
	return c.Status == CampaignStatusSending || c.Status == CampaignStatusProcessing
}

// AccessibleBy reports whether the user or organisation may see the campaign
func (c Campaign) AccessibleBy(userID, organisationID uuid.UUID) bool {
	return c.SenderID == userID || (organisationID != uuid.Nil && c.OrganisationID == organisationID)
}

// ScheduledEmail is one concrete, individually tracked outbound message
type ScheduledEmail struct {
	ID                  uuid.UUID            `db:"id" json:"id"`
	CampaignID          *uuid.UUID           `db:"campaign_id" json:"campaign_id,omitempty"`
	UserID              uuid.UUID            `db:"user_id" json:"user_id"`
	OrganisationID      uuid.UUID            `db:"organisation_id" json:"organisation_id"`
	ToEmail             string               `db:"to_email" json:"to_email"`
	Subject             string               `db:"subject" json:"subject"`
	Body                string               `db:"body" json:"body"`
	Status              ScheduledEmailStatus `db:"status" json:"status"`
	ScheduledFor        *time.Time           `db:"scheduled_for" json:"scheduled_for,omitempty"`
	SentAt              *time.Time           `db:"sent_at" json:"sent_at,omitempty"`
	Attempts            int                  `db:"attempts" json:"attempts"`
	ErrorMessage        *string              `db:"error_message" json:"error_message,omitempty"`
	NextRetryAt         *time.Time           `db:"next_retry_at" json:"next_retry_at,omitempty"`
	ProcessingStartedAt *time.Time           `db:"processing_started_at" json:"-"`
	Metadata            JSONB                `db:"metadata" json:"metadata"`
	CreatedAt           time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time            `db:"updated_at" json:"updated_at"`
}

// CanBeSentNow is true iff the email is pending or scheduled and its send time has arrived
func (e ScheduledEmail) CanBeSentNow(now time.Time) bool {
	if e.Status != ScheduledEmailStatusPending && e.Status != ScheduledEmailStatusScheduled {
		return false
	}
	return e.ScheduledFor == nil || !e.ScheduledFor.After(now)
}

// AwaitingRetry reports whether a failed attempt has a retry pending
func (e ScheduledEmail) AwaitingRetry() bool {
	return e.Status == ScheduledEmailStatusFailed && e.NextRetryAt != nil && e.IsRetryable()
}

// RetryDue reports whether a pending retry may run at now
func (e ScheduledEmail) RetryDue(now time.Time) bool {
	return e.AwaitingRetry() && !e.NextRetryAt.After(now)
}

// IsRetryable reports whether another processing attempt is allowed under the attempt cap
func (e ScheduledEmail) IsRetryable() bool {
	return e.Attempts < MaxSendAttempts
}

// IsTerminal reports whether the email can never transition again
func (e ScheduledEmail) IsTerminal() bool {
	return e.Status == ScheduledEmailStatusSent || e.Status == ScheduledEmailStatusCancelled
}

// IsEditable reports whether content or timing may still be changed
func (e ScheduledEmail) IsEditable() bool {
	return e.Status == ScheduledEmailStatusPending || e.Status == ScheduledEmailStatusScheduled
}

// AccessibleBy reports whether the user or organisation may see the email
func (e ScheduledEmail) AccessibleBy(userID, organisationID uuid.UUID) bool {
	return e.UserID == userID || (organisationID != uuid.Nil && e.OrganisationID == organisationID)
}

// LeadID returns the originating lead recorded in metadata, if any
func (e ScheduledEmail) LeadID() *uuid.UUID {
	raw := e.Metadata.String("lead_id")
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// CampaignEmailCounts holds child scheduled email counts grouped by status
type CampaignEmailCounts struct {
	Total        int `db:"total"`
	Pending      int `db:"pending"`
	Scheduled    int `db:"scheduled"`
	Processing   int `db:"processing"`
	Sent         int `db:"sent"`
	Failed       int `db:"failed"`
	RetryPending int `db:"retry_pending"`
	Cancelled    int `db:"cancelled"`
}

// InFlight is the number of children that may still change state
func (c CampaignEmailCounts) InFlight() int {
	return c.Pending + c.Scheduled + c.Processing + c.RetryPending
}

// EmailLog is a write-once audit record of one send attempt
type EmailLog struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	ScheduledEmailID *uuid.UUID `db:"scheduled_email_id" json:"scheduled_email_id,omitempty"`
	LeadID           *uuid.UUID `db:"lead_id" json:"lead_id,omitempty"`
	UserID           uuid.UUID  `db:"user_id" json:"user_id"`
	OrganisationID   uuid.UUID  `db:"organisation_id" json:"organisation_id"`
	ToEmail          string     `db:"to_email" json:"to_email"`
	Subject          string     `db:"subject" json:"subject"`
	Body             string     `db:"body" json:"body"`
	MessageID        *string    `db:"message_id" json:"message_id,omitempty"`
	Status           string     `db:"status" json:"status"`
	ErrorMessage     *string    `db:"error_message" json:"error_message,omitempty"`
	SentAt           *time.Time `db:"sent_at" json:"sent_at,omitempty"`
	ScheduledFor     *time.Time `db:"scheduled_for" json:"scheduled_for,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
}

// Task is a CRM to-do item that can be assigned to a user
type Task struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	OrganisationID uuid.UUID  `db:"organisation_id" json:"organisation_id"`
	Title          string     `db:"title" json:"title"`
	Description    *string    `db:"description" json:"description,omitempty"`
	DueDate        *time.Time `db:"due_date" json:"due_date,omitempty"`
	Status         string     `db:"status" json:"status"`
	AssigneeID     *uuid.UUID `db:"assignee_id" json:"assignee_id,omitempty"`
	CreatedBy      uuid.UUID  `db:"created_by" json:"created_by"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// Notification is an in-app message for a user
type Notification struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	UserID    uuid.UUID  `db:"user_id" json:"user_id"`
	Title     string     `db:"title" json:"title"`
	Message   string     `db:"message" json:"message"`
	Type      string     `db:"type" json:"type"`
	Category  string     `db:"category" json:"category"`
	RelatedID *uuid.UUID `db:"related_id" json:"related_id,omitempty"`
	ReadAt    *time.Time `db:"read_at" json:"read_at,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}
