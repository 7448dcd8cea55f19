package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crm-server/internal/audience"
	"crm-server/internal/observability"
	"crm-server/internal/store"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	ListCampaigns(ctx context.Context, params store.ListCampaignsParams) (store.ListCampaignsResult, error)
	UpdateCampaign(ctx context.Context, campaignID uuid.UUID, params store.UpdateCampaignParams) (store.Campaign, error)
	MarkCampaignSending(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	SetCampaignTotalCount(ctx context.Context, campaignID uuid.UUID, total int) error
	UpdateCampaignCounters(ctx context.Context, campaignID uuid.UUID, sent, failed, total int) (store.Campaign, error)
	MarkCampaignCompleted(ctx context.Context, campaignID uuid.UUID) (bool, error)
	MarkCampaignFailed(ctx context.Context, campaignID uuid.UUID, errorMessage string) error
	MarkCampaignCancelled(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)

	CreateScheduledEmail(ctx context.Context, params store.CreateScheduledEmailParams) (store.ScheduledEmail, error)
	CancelPendingCampaignEmails(ctx context.Context, campaignID uuid.UUID) (int, error)
	CountCampaignEmails(ctx context.Context, campaignID uuid.UUID) (store.CampaignEmailCounts, error)
}

// TaskEnqueuer schedules deferred work
type TaskEnqueuer interface {
	EnqueueScheduledEmail(ctx context.Context, emailID uuid.UUID, scheduledFor time.Time, attempts int) error
	EnqueueCampaign(ctx context.Context, campaignID uuid.UUID, at time.Time) error
}

// EventPublisher announces campaign lifecycle events
type EventPublisher interface {
	PublishCampaignCompleted(ctx context.Context, campaign store.Campaign) error
}

var (
	ErrCampaignNotFound       = errors.New("campaign not found")
	ErrUnauthorized           = errors.New("unauthorized access to campaign")
	ErrCampaignNotCancellable = errors.New("campaign can no longer be cancelled")
	ErrCampaignNotEditable    = errors.New("only draft or scheduled campaigns can be updated")
	ErrEmptyAudience          = errors.New("campaign audience has no recipients")
	ErrScheduleTimeRequired   = errors.New("schedule time is required for later campaigns")
	ErrScheduleTimeInPast     = errors.New("schedule time must be in the future")
)

type CampaignProcessor struct {
	store    CampaignStore
	enqueuer TaskEnqueuer
	events   EventPublisher
	logger   *observability.Logger
	now      func() time.Time
}

func New(store CampaignStore, enqueuer TaskEnqueuer, events EventPublisher, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:    store,
		enqueuer: enqueuer,
		events:   events,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Name         string
	Subject      string
	Content      string
	Recipients   []audience.Recipient
	Schedule     string
	ScheduleTime *time.Time
	Draft        bool
}

// UpdateCampaignParams represents the editable fields of a campaign
type UpdateCampaignParams struct {
	Name         *string
	Subject      *string
	Content      *string
	Recipients   []audience.Recipient
	ScheduleTime *time.Time
}

// ListCampaignsParams filters a campaign listing
type ListCampaignsParams struct {
	Status   *string
	FromDate *time.Time
	ToDate   *time.Time
	Limit    int
	Offset   int
}

// Statistics summarises a campaign's scheduled emails
type Statistics struct {
	Total     int `json:"total"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
	Pending   int `json:"pending"`
	Cancelled int `json:"cancelled"`
}

// CampaignWithStats is a campaign plus live child statistics
type CampaignWithStats struct {
	store.Campaign
	Statistics Statistics `json:"statistics"`
}

// CancelResult reports the outcome of a campaign cancellation
type CancelResult struct {
	Cancelled    bool `json:"cancelled"`
	PendingCount int  `json:"pending_count"`
}

func statisticsFrom(counts store.CampaignEmailCounts) Statistics {
	return Statistics{
		Total:     counts.Total,
		Sent:      counts.Sent,
		Failed:    counts.Failed - counts.RetryPending,
		Pending:   counts.InFlight(),
		Cancelled: counts.Cancelled,
	}
}

// CreateCampaign stores a campaign and, unless it is a draft, schedules its expansion
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, userID, organisationID uuid.UUID, params CreateCampaignParams) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "organisation_id", Value: organisationID.String()},
	)

	if len(params.Recipients) == 0 {
		return store.Campaign{}, ErrEmptyAudience
	}
	if params.Schedule == "" {
		params.Schedule = store.CampaignScheduleNow
	}
	now := p.now()
	if params.Schedule == store.CampaignScheduleLater {
		if params.ScheduleTime == nil {
			return store.Campaign{}, ErrScheduleTimeRequired
		}
		if !params.ScheduleTime.After(now) {
			return store.Campaign{}, ErrScheduleTimeInPast
		}
	}

	raw, err := audience.Encode(params.Recipients)
	if err != nil {
		p.logger.Error(ctx, "failed to encode audience", err)
		return store.Campaign{}, err
	}

	status := store.CampaignStatusScheduled
	if params.Draft {
		status = store.CampaignStatusDraft
	}

	campaign, err := p.store.CreateCampaign(ctx, store.CreateCampaignParams{
		SenderID:       userID,
		OrganisationID: organisationID,
		Name:           params.Name,
		Subject:        params.Subject,
		Audience:       types.JSONText(raw),
		Content:        params.Content,
		Schedule:       params.Schedule,
		Status:         status,
		ScheduleTime:   params.ScheduleTime,
		TotalCount:     len(params.Recipients),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create campaign", err)
		return store.Campaign{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaign.ID.String()})
	if status == store.CampaignStatusScheduled {
		if err := p.enqueuer.EnqueueCampaign(ctx, campaign.ID, startTime(now, campaign.ScheduleTime)); err != nil {
			// the sweep picks up scheduled campaigns whose task was never enqueued
			p.logger.Error(ctx, "failed to enqueue campaign processing", err)
		}
	}

	p.logger.Info(ctx, "campaign created")
	return campaign, nil
}

// GetCampaign returns a campaign with its child statistics
func (p *CampaignProcessor) GetCampaign(ctx context.Context, userID, organisationID, campaignID uuid.UUID) (CampaignWithStats, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	campaign, err := p.getAccessible(ctx, userID, organisationID, campaignID)
	if err != nil {
		return CampaignWithStats{}, err
	}

	counts, err := p.store.CountCampaignEmails(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to count campaign emails", err)
		return CampaignWithStats{}, err
	}

	return CampaignWithStats{Campaign: campaign, Statistics: statisticsFrom(counts)}, nil
}

// ListCampaigns lists campaigns the user or their organisation owns
func (p *CampaignProcessor) ListCampaigns(ctx context.Context, userID, organisationID uuid.UUID, params ListCampaignsParams) (store.ListCampaignsResult, error) {
	result, err := p.store.ListCampaigns(ctx, store.ListCampaignsParams{
		UserID:         userID,
		OrganisationID: organisationID,
		Status:         params.Status,
		FromDate:       params.FromDate,
		ToDate:         params.ToDate,
		Limit:          params.Limit,
		Offset:         params.Offset,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return store.ListCampaignsResult{}, err
	}
	return result, nil
}

// UpdateCampaign edits a draft or scheduled campaign. Changing the audience or the schedule
// cancels children that were already expanded and reschedules processing.
func (p *CampaignProcessor) UpdateCampaign(ctx context.Context, userID, organisationID, campaignID uuid.UUID, params UpdateCampaignParams) (store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	campaign, err := p.getAccessible(ctx, userID, organisationID, campaignID)
	if err != nil {
		return store.Campaign{}, err
	}
	if !campaign.CanBeUpdated() {
		return store.Campaign{}, ErrCampaignNotEditable
	}

	now := p.now()
	if params.ScheduleTime != nil && !params.ScheduleTime.After(now) {
		return store.Campaign{}, ErrScheduleTimeInPast
	}

	update := store.UpdateCampaignParams{
		Name:         params.Name,
		Subject:      params.Subject,
		Content:      params.Content,
		ScheduleTime: params.ScheduleTime,
	}
	if params.Recipients != nil {
		if len(params.Recipients) == 0 {
			return store.Campaign{}, ErrEmptyAudience
		}
		raw, err := audience.Encode(params.Recipients)
		if err != nil {
			p.logger.Error(ctx, "failed to encode audience", err)
			return store.Campaign{}, err
		}
		text := types.JSONText(raw)
		total := len(params.Recipients)
		update.Audience = &text
		update.TotalCount = &total
	}

	updated, err := p.store.UpdateCampaign(ctx, campaignID, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotEditable
		}
		p.logger.Error(ctx, "failed to update campaign", err)
		return store.Campaign{}, err
	}

	rescheduled := params.Recipients != nil || params.ScheduleTime != nil
	if rescheduled && updated.Status == store.CampaignStatusScheduled {
		cancelled, err := p.store.CancelPendingCampaignEmails(ctx, campaignID)
		if err != nil {
			p.logger.Error(ctx, "failed to cancel previously expanded emails", err)
			return store.Campaign{}, err
		}
		if cancelled > 0 {
			p.logger.Info(ctx, fmt.Sprintf("cancelled %d previously expanded emails", cancelled))
		}
		if err := p.enqueuer.EnqueueCampaign(ctx, campaignID, startTime(now, updated.ScheduleTime)); err != nil {
			p.logger.Error(ctx, "failed to re-enqueue campaign processing", err)
		}
	}

	p.logger.Info(ctx, "campaign updated")
	return updated, nil
}

// CancelCampaign cancels the campaign and then every not yet claimed child.
// Children already processing or sent are left alone.
func (p *CampaignProcessor) CancelCampaign(ctx context.Context, userID, organisationID, campaignID uuid.UUID) (CancelResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	campaign, err := p.getAccessible(ctx, userID, organisationID, campaignID)
	if err != nil {
		return CancelResult{}, err
	}
	if !campaign.CanBeCancelled() {
		return CancelResult{}, ErrCampaignNotCancellable
	}

	// the campaign is cancelled first so an expansion still running cannot add children afterwards
	if _, err := p.store.MarkCampaignCancelled(ctx, campaignID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// finished between the check and the update
			return CancelResult{Cancelled: false}, nil
		}
		p.logger.Error(ctx, "failed to mark campaign cancelled", err)
		return CancelResult{}, err
	}

	pending, err := p.store.CancelPendingCampaignEmails(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to cancel campaign emails", err)
		return CancelResult{}, err
	}

	p.logger.Info(ctx, fmt.Sprintf("campaign cancelled with %d pending emails", pending))
	return CancelResult{Cancelled: true, PendingCount: pending}, nil
}

// ProcessCampaign expands a scheduled campaign into one scheduled email per valid recipient.
// It is a no-op for campaigns that are no longer scheduled or not yet due.
func (p *CampaignProcessor) ProcessCampaign(ctx context.Context, campaignID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Warn(ctx, "campaign to process no longer exists")
			return nil
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return err
	}
	if campaign.Status != store.CampaignStatusScheduled {
		p.logger.Info(ctx, fmt.Sprintf("skipping campaign in status %s", campaign.Status))
		return nil
	}
	now := p.now()
	if campaign.ScheduleTime != nil && campaign.ScheduleTime.After(now) {
		p.logger.Info(ctx, "campaign is not due yet")
		return nil
	}

	campaign, err = p.store.MarkCampaignSending(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		p.logger.Error(ctx, "failed to mark campaign sending", err)
		return err
	}

	recipients, err := audience.Decode(campaign.Audience)
	if err != nil {
		return p.failCampaign(ctx, campaign, 0, err)
	}
	if len(recipients) == 0 {
		if err := p.store.SetCampaignTotalCount(ctx, campaignID, 0); err != nil {
			p.logger.Error(ctx, "failed to set campaign total", err)
			return err
		}
		if _, err := p.store.MarkCampaignCompleted(ctx, campaignID); err != nil {
			p.logger.Error(ctx, "failed to complete empty campaign", err)
			return err
		}
		p.logger.Info(ctx, "campaign has an empty audience, completed")
		return nil
	}

	created := 0
	skipped := 0
	for i, recipient := range recipients {
		address, ok := recipient.Address()
		if !ok {
			skipped++
			continue
		}

		vars := recipient.Variables()
		scheduledFor := audience.StaggeredSendTime(now, campaign.ScheduleTime, i, audience.DefaultBatchSize)
		metadata := store.JSONB{
			"campaign_name":  campaign.Name,
			"recipient_data": recipient,
			"personalized":   vars != nil,
		}
		if recipient.LeadID != "" {
			metadata["lead_id"] = recipient.LeadID
		}

		email, err := p.store.CreateScheduledEmail(ctx, store.CreateScheduledEmailParams{
			CampaignID:     &campaign.ID,
			UserID:         campaign.SenderID,
			OrganisationID: campaign.OrganisationID,
			ToEmail:        address,
			Subject:        audience.Personalize(campaign.Subject, vars),
			Body:           audience.Personalize(campaign.Content, vars),
			Status:         store.ScheduledEmailStatusScheduled,
			ScheduledFor:   &scheduledFor,
			Metadata:       metadata,
		})
		if errors.Is(err, store.ErrCampaignCancelled) {
			p.logger.Info(ctx, fmt.Sprintf("campaign cancelled during expansion after %d emails", created))
			if err := p.store.SetCampaignTotalCount(ctx, campaignID, created); err != nil {
				p.logger.Error(ctx, "failed to set campaign total", err)
			}
			return nil
		}
		if err != nil {
			return p.failCampaign(ctx, campaign, created, err)
		}
		created++

		if err := p.enqueuer.EnqueueScheduledEmail(ctx, email.ID, scheduledFor, email.Attempts); err != nil {
			return p.failCampaign(ctx, campaign, created, err)
		}
	}

	if err := p.store.SetCampaignTotalCount(ctx, campaignID, created); err != nil {
		p.logger.Error(ctx, "failed to set campaign total", err)
		return err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "created", Value: created},
		observability.Field{Key: "skipped", Value: skipped},
	)
	p.logger.Info(ctx, "campaign expanded into scheduled emails")

	if created == 0 {
		// nothing valid to send
		return p.UpdateStats(ctx, campaignID)
	}
	return nil
}

// failCampaign records an orchestration failure. Rows created so far are kept and stay sendable.
func (p *CampaignProcessor) failCampaign(ctx context.Context, campaign store.Campaign, created int, cause error) error {
	p.logger.Error(ctx, "campaign processing failed", cause)

	if err := p.store.SetCampaignTotalCount(ctx, campaign.ID, created); err != nil {
		p.logger.Error(ctx, "failed to set campaign total", err)
	}
	if err := p.store.MarkCampaignFailed(ctx, campaign.ID, cause.Error()); err != nil {
		p.logger.Error(ctx, "failed to mark campaign failed", err)
		return err
	}
	return fmt.Errorf("failed to process campaign: %w", cause)
}

// UpdateStats recomputes the campaign counters from its children and completes the campaign
// once nothing is left in flight.
func (p *CampaignProcessor) UpdateStats(ctx context.Context, campaignID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	counts, err := p.store.CountCampaignEmails(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to count campaign emails", err)
		return err
	}

	campaign, err := p.store.UpdateCampaignCounters(ctx, campaignID, counts.Sent, counts.Failed-counts.RetryPending, counts.Total)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to update campaign counters", err)
		return err
	}

	if counts.InFlight() > 0 || !campaign.IsSending() {
		return nil
	}

	completed, err := p.store.MarkCampaignCompleted(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to mark campaign completed", err)
		return err
	}
	if !completed {
		return nil
	}

	p.logger.Info(ctx, "campaign completed")
	campaign.Status = store.CampaignStatusCompleted
	if err := p.events.PublishCampaignCompleted(ctx, campaign); err != nil {
		p.logger.Warn(ctx, "campaign completed event not published")
	}
	return nil
}

func (p *CampaignProcessor) getAccessible(ctx context.Context, userID, organisationID, campaignID uuid.UUID) (store.Campaign, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, err
	}
	if !campaign.AccessibleBy(userID, organisationID) {
		return store.Campaign{}, ErrUnauthorized
	}
	return campaign, nil
}

func startTime(now time.Time, scheduled *time.Time) time.Time {
	if scheduled != nil && scheduled.After(now) {
		return *scheduled
	}
	return now
}
