package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"crm-server/internal/audience"
	campaignprocessor "crm-server/internal/campaigns/processor"
	"crm-server/internal/mailer"
	"crm-server/internal/observability"
	"crm-server/internal/store"
	"crm-server/internal/tokenbroker"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// ScheduledEmailStore defines the database operations required by ScheduledEmailProcessor
type ScheduledEmailStore interface {
	CreateScheduledEmail(ctx context.Context, params store.CreateScheduledEmailParams) (store.ScheduledEmail, error)
	GetScheduledEmailByID(ctx context.Context, emailID uuid.UUID) (store.ScheduledEmail, error)
	ListScheduledEmails(ctx context.Context, params store.ListScheduledEmailsParams) (store.ListScheduledEmailsResult, error)
	UpdateScheduledEmail(ctx context.Context, emailID uuid.UUID, params store.UpdateScheduledEmailParams) (store.ScheduledEmail, error)
	CancelScheduledEmail(ctx context.Context, emailID uuid.UUID) (bool, error)
	ClaimScheduledEmail(ctx context.Context, emailID uuid.UUID, now, leaseExpiredBefore time.Time) (store.ScheduledEmail, error)
	MarkScheduledEmailSent(ctx context.Context, emailID uuid.UUID, messageID string) (store.ScheduledEmail, error)
	MarkScheduledEmailFailed(ctx context.Context, emailID uuid.UUID, errorMessage string, nextRetryAt *time.Time) (store.ScheduledEmail, error)

	CreateEmailLog(ctx context.Context, params store.CreateEmailLogParams) (store.EmailLog, error)
	GetEmailLogsByLead(ctx context.Context, leadID, userID, organisationID uuid.UUID, limit, offset int) ([]store.EmailLog, error)
	GetLeadEmailSummary(ctx context.Context, leadID, userID, organisationID uuid.UUID) (store.LeadEmailSummary, error)
}

// CampaignService creates campaigns for bulk sends and rolls child results up into them
type CampaignService interface {
	CreateCampaign(ctx context.Context, userID, organisationID uuid.UUID, params campaignprocessor.CreateCampaignParams) (store.Campaign, error)
	UpdateStats(ctx context.Context, campaignID uuid.UUID) error
}

// SessionProvider hands out authenticated mail sessions
type SessionProvider interface {
	GetAuthenticatedSession(ctx context.Context, userID uuid.UUID) tokenbroker.Session
	ForceRefresh(ctx context.Context, userID uuid.UUID) (tokenbroker.Session, error)
}

// Sender makes one send attempt through the user's mail provider
type Sender interface {
	Send(ctx context.Context, ts oauth2.TokenSource, msg mailer.Message) (mailer.Result, error)
}

// FallbackSender sends from the application's default address
type FallbackSender interface {
	Enabled() bool
	Send(ctx context.Context, msg mailer.Message) (mailer.Result, error)
}

// TaskEnqueuer schedules delivery tasks
type TaskEnqueuer interface {
	EnqueueScheduledEmail(ctx context.Context, emailID uuid.UUID, scheduledFor time.Time, attempts int) error
}

// EventPublisher announces delivery outcomes
type EventPublisher interface {
	PublishEmailSent(ctx context.Context, email store.ScheduledEmail, messageID string) error
	PublishEmailFailed(ctx context.Context, email store.ScheduledEmail, reason string) error
}

var (
	ErrScheduledEmailNotFound = errors.New("scheduled email not found")
	ErrUnauthorized           = errors.New("unauthorized access to scheduled email")
	ErrInvalidRecipient       = errors.New("invalid recipient email address")
	ErrNoRecipients           = errors.New("at least one recipient is required")
	ErrInvalidBatchSize       = errors.New("batch size must be between 1 and 50")
	ErrSendAtInPast           = errors.New("send time must be in the future")
	ErrNotEditable            = errors.New("only pending or scheduled emails can be changed")
	// ErrPermanentFailure marks a delivery that must not be retried
	ErrPermanentFailure = errors.New("scheduled email failed permanently")
)

// Bulk batching limits
const (
	MaxBatchSize = 50
)

type ScheduledEmailProcessor struct {
	store     ScheduledEmailStore
	campaigns CampaignService
	sessions  SessionProvider
	sender    Sender
	fallback  FallbackSender
	enqueuer  TaskEnqueuer
	events    EventPublisher
	logger    *observability.Logger
	now       func() time.Time
}

func New(
	store ScheduledEmailStore,
	campaigns CampaignService,
	sessions SessionProvider,
	sender Sender,
	fallback FallbackSender,
	enqueuer TaskEnqueuer,
	events EventPublisher,
	logger *observability.Logger,
) ScheduledEmailProcessor {
	return ScheduledEmailProcessor{
		store:     store,
		campaigns: campaigns,
		sessions:  sessions,
		sender:    sender,
		fallback:  fallback,
		enqueuer:  enqueuer,
		events:    events,
		logger:    logger,
		now:       time.Now,
	}
}

// ScheduleSingleEmailParams represents one email to send later
type ScheduleSingleEmailParams struct {
	To       string
	Subject  string
	Body     string
	SendAt   time.Time
	LeadID   *uuid.UUID
	Metadata map[string]interface{}
}

// ScheduleBulkEmailsParams represents one message sent to many recipients
type ScheduleBulkEmailsParams struct {
	Recipients     []audience.Recipient
	Subject        string
	Body           string
	SendAt         time.Time
	BatchSize      int
	Personalize    bool
	CreateCampaign bool
	CampaignName   string
}

// BulkScheduleResult holds either the created campaign or the individually scheduled emails
type BulkScheduleResult struct {
	Campaign *store.Campaign        `json:"campaign,omitempty"`
	Emails   []store.ScheduledEmail `json:"emails,omitempty"`
	Skipped  int                    `json:"skipped"`
}

// UpdateScheduledEmailParams represents the editable fields of a scheduled email
type UpdateScheduledEmailParams struct {
	Subject  *string
	Body     *string
	SendAt   *time.Time
	Metadata map[string]interface{}
}

// ListScheduledEmailsParams filters a scheduled email listing
type ListScheduledEmailsParams struct {
	Status     *string
	CampaignID *uuid.UUID
	FromDate   *time.Time
	ToDate     *time.Time
	Limit      int
	Offset     int
}

// LeadEmailHistory is the logged send history of one lead
type LeadEmailHistory struct {
	Emails   []store.EmailLog `json:"emails"`
	Total    int              `json:"total"`
	LastSent *time.Time       `json:"last_sent,omitempty"`
}

// ScheduleSingleEmail stores one email for delivery at SendAt
func (p *ScheduledEmailProcessor) ScheduleSingleEmail(ctx context.Context, userID, organisationID uuid.UUID, params ScheduleSingleEmailParams) (store.ScheduledEmail, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	to := strings.TrimSpace(params.To)
	if err := checkmail.ValidateFormat(to); err != nil {
		return store.ScheduledEmail{}, ErrInvalidRecipient
	}
	if !params.SendAt.After(p.now()) {
		return store.ScheduledEmail{}, ErrSendAtInPast
	}

	metadata := store.JSONB{}.Merge(params.Metadata)
	metadata["is_single_email"] = true
	if params.LeadID != nil {
		metadata["lead_id"] = params.LeadID.String()
	}

	sendAt := params.SendAt
	email, err := p.store.CreateScheduledEmail(ctx, store.CreateScheduledEmailParams{
		UserID:         userID,
		OrganisationID: organisationID,
		ToEmail:        to,
		Subject:        params.Subject,
		Body:           params.Body,
		Status:         store.ScheduledEmailStatusScheduled,
		ScheduledFor:   &sendAt,
		Metadata:       metadata,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create scheduled email", err)
		return store.ScheduledEmail{}, err
	}

	p.enqueue(ctx, email)
	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "scheduled_email_id", Value: email.ID.String()}), "email scheduled")
	return email, nil
}

// ScheduleBulkEmails schedules one message for many recipients. With CreateCampaign the
// recipients become a campaign expanded at SendAt; otherwise rows are created right away,
// BatchSize recipients per minute.
func (p *ScheduledEmailProcessor) ScheduleBulkEmails(ctx context.Context, userID, organisationID uuid.UUID, params ScheduleBulkEmailsParams) (BulkScheduleResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "recipients", Value: len(params.Recipients)},
	)

	if len(params.Recipients) == 0 {
		return BulkScheduleResult{}, ErrNoRecipients
	}
	if params.BatchSize == 0 {
		params.BatchSize = audience.DefaultBatchSize
	}
	if params.BatchSize < 1 || params.BatchSize > MaxBatchSize {
		return BulkScheduleResult{}, ErrInvalidBatchSize
	}
	now := p.now()
	if !params.SendAt.After(now) {
		return BulkScheduleResult{}, ErrSendAtInPast
	}

	if params.CreateCampaign {
		name := params.CampaignName
		if name == "" {
			name = "Bulk email " + params.SendAt.Format("2006-01-02 15:04")
		}
		sendAt := params.SendAt
		campaign, err := p.campaigns.CreateCampaign(ctx, userID, organisationID, campaignprocessor.CreateCampaignParams{
			Name:         name,
			Subject:      params.Subject,
			Content:      params.Body,
			Recipients:   params.Recipients,
			Schedule:     store.CampaignScheduleLater,
			ScheduleTime: &sendAt,
		})
		if err != nil {
			return BulkScheduleResult{}, err
		}
		return BulkScheduleResult{Campaign: &campaign}, nil
	}

	result := BulkScheduleResult{Emails: make([]store.ScheduledEmail, 0, len(params.Recipients))}
	for i, recipient := range params.Recipients {
		address, ok := recipient.Address()
		if !ok {
			result.Skipped++
			continue
		}

		var vars map[string]string
		if params.Personalize {
			vars = recipient.Variables()
		}
		scheduledFor := audience.StaggeredSendTime(now, &params.SendAt, i, params.BatchSize)
		metadata := store.JSONB{
			"is_bulk_email":  true,
			"personalized":   vars != nil,
			"recipient_data": recipient,
		}
		if recipient.LeadID != "" {
			metadata["lead_id"] = recipient.LeadID
		}

		email, err := p.store.CreateScheduledEmail(ctx, store.CreateScheduledEmailParams{
			UserID:         userID,
			OrganisationID: organisationID,
			ToEmail:        address,
			Subject:        audience.Personalize(params.Subject, vars),
			Body:           audience.Personalize(params.Body, vars),
			Status:         store.ScheduledEmailStatusScheduled,
			ScheduledFor:   &scheduledFor,
			Metadata:       metadata,
		})
		if err != nil {
			p.logger.Error(ctx, "failed to create bulk scheduled email", err)
			return result, err
		}
		p.enqueue(ctx, email)
		result.Emails = append(result.Emails, email)
	}

	p.logger.Info(ctx, fmt.Sprintf("scheduled %d bulk emails, skipped %d", len(result.Emails), result.Skipped))
	return result, nil
}

// GetScheduledEmail returns one scheduled email
func (p *ScheduledEmailProcessor) GetScheduledEmail(ctx context.Context, userID, organisationID, emailID uuid.UUID) (store.ScheduledEmail, error) {
	return p.getAccessible(ctx, userID, organisationID, emailID)
}

// ListScheduledEmails lists scheduled emails the user or their organisation owns
func (p *ScheduledEmailProcessor) ListScheduledEmails(ctx context.Context, userID, organisationID uuid.UUID, params ListScheduledEmailsParams) (store.ListScheduledEmailsResult, error) {
	result, err := p.store.ListScheduledEmails(ctx, store.ListScheduledEmailsParams{
		UserID:         userID,
		OrganisationID: organisationID,
		Status:         params.Status,
		CampaignID:     params.CampaignID,
		FromDate:       params.FromDate,
		ToDate:         params.ToDate,
		Limit:          params.Limit,
		Offset:         params.Offset,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list scheduled emails", err)
		return store.ListScheduledEmailsResult{}, err
	}
	return result, nil
}

// UpdateScheduledEmail edits a pending or scheduled email. A new send time re-enqueues delivery.
func (p *ScheduledEmailProcessor) UpdateScheduledEmail(ctx context.Context, userID, organisationID, emailID uuid.UUID, params UpdateScheduledEmailParams) (store.ScheduledEmail, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "scheduled_email_id", Value: emailID.String()})

	email, err := p.getAccessible(ctx, userID, organisationID, emailID)
	if err != nil {
		return store.ScheduledEmail{}, err
	}
	if !email.IsEditable() {
		return store.ScheduledEmail{}, ErrNotEditable
	}
	if params.SendAt != nil && !params.SendAt.After(p.now()) {
		return store.ScheduledEmail{}, ErrSendAtInPast
	}

	var metadata store.JSONB
	if len(params.Metadata) > 0 {
		metadata = store.JSONB(params.Metadata)
	}
	updated, err := p.store.UpdateScheduledEmail(ctx, emailID, store.UpdateScheduledEmailParams{
		Subject:      params.Subject,
		Body:         params.Body,
		ScheduledFor: params.SendAt,
		Metadata:     metadata,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ScheduledEmail{}, ErrNotEditable
		}
		p.logger.Error(ctx, "failed to update scheduled email", err)
		return store.ScheduledEmail{}, err
	}

	if params.SendAt != nil {
		p.enqueue(ctx, updated)
	}
	p.logger.Info(ctx, "scheduled email updated")
	return updated, nil
}

// CancelScheduledEmail cancels a pending or scheduled email. It reports false, without
// an error, when the email already left those states.
func (p *ScheduledEmailProcessor) CancelScheduledEmail(ctx context.Context, userID, organisationID, emailID uuid.UUID) (bool, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "scheduled_email_id", Value: emailID.String()})

	email, err := p.getAccessible(ctx, userID, organisationID, emailID)
	if err != nil {
		return false, err
	}

	cancelled, err := p.store.CancelScheduledEmail(ctx, emailID)
	if err != nil {
		p.logger.Error(ctx, "failed to cancel scheduled email", err)
		return false, err
	}
	if !cancelled {
		p.logger.Info(ctx, fmt.Sprintf("scheduled email in status %s not cancelled", email.Status))
		return false, nil
	}

	p.rollUp(ctx, email)
	p.logger.Info(ctx, "scheduled email cancelled")
	return true, nil
}

// GetLeadEmailHistory returns the logged sends for a lead, newest first
func (p *ScheduledEmailProcessor) GetLeadEmailHistory(ctx context.Context, userID, organisationID, leadID uuid.UUID, limit, offset int) (LeadEmailHistory, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "lead_id", Value: leadID.String()})

	logs, err := p.store.GetEmailLogsByLead(ctx, leadID, userID, organisationID, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to get lead email logs", err)
		return LeadEmailHistory{}, err
	}
	summary, err := p.store.GetLeadEmailSummary(ctx, leadID, userID, organisationID)
	if err != nil {
		p.logger.Error(ctx, "failed to get lead email summary", err)
		return LeadEmailHistory{}, err
	}
	return LeadEmailHistory{Emails: logs, Total: summary.Total, LastSent: summary.LastSent}, nil
}

func (p *ScheduledEmailProcessor) getAccessible(ctx context.Context, userID, organisationID, emailID uuid.UUID) (store.ScheduledEmail, error) {
	email, err := p.store.GetScheduledEmailByID(ctx, emailID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ScheduledEmail{}, ErrScheduledEmailNotFound
		}
		p.logger.Error(ctx, "failed to get scheduled email", err)
		return store.ScheduledEmail{}, err
	}
	if !email.AccessibleBy(userID, organisationID) {
		return store.ScheduledEmail{}, ErrUnauthorized
	}
	return email, nil
}

// enqueue schedules delivery. Failures are logged only; the sweep re-enqueues due rows.
func (p *ScheduledEmailProcessor) enqueue(ctx context.Context, email store.ScheduledEmail) {
	at := p.now()
	if email.ScheduledFor != nil {
		at = *email.ScheduledFor
	}
	if err := p.enqueuer.EnqueueScheduledEmail(ctx, email.ID, at, email.Attempts); err != nil {
		p.logger.Error(ctx, "failed to enqueue scheduled email", err)
	}
}

// rollUp refreshes the parent campaign after a child reached a final state
func (p *ScheduledEmailProcessor) rollUp(ctx context.Context, email store.ScheduledEmail) {
	if email.CampaignID == nil {
		return
	}
	if err := p.campaigns.UpdateStats(ctx, *email.CampaignID); err != nil {
		p.logger.Error(ctx, "failed to update campaign stats", err)
	}
}
