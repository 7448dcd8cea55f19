package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

const campaignColumns = `id, sender_id, organisation_id, name, subject, audience, content, schedule, status, schedule_time, sent_count, failed_count, total_count, error_message, started_at, completed_at, cancelled_at, last_processed_at, created_at, updated_at`

// CreateCampaignParams represents parameters for creating an email campaign
type CreateCampaignParams struct {
	SenderID       uuid.UUID
	OrganisationID uuid.UUID
	Name           string
	Subject        string
	Audience       types.JSONText
	Content        string
	Schedule       string
	Status         CampaignStatus
	ScheduleTime   *time.Time
	TotalCount     int
}

const sqlCreateCampaign = `
INSERT INTO email_campaigns (sender_id, organisation_id, name, subject, audience, content, schedule, status, schedule_time, total_count)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + campaignColumns

// CreateCampaign creates a new email campaign
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	audience := params.Audience
	if len(audience) == 0 {
		audience = types.JSONText("[]")
	}
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlCreateCampaign,
		params.SenderID,
		params.OrganisationID,
		params.Name,
		params.Subject,
		audience,
		params.Content,
		params.Schedule,
		params.Status,
		params.ScheduleTime,
		params.TotalCount)
	if err != nil {
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

const sqlGetCampaignByID = `
SELECT ` + campaignColumns + `
FROM email_campaigns
WHERE id = $1
`

// GetCampaignByID retrieves a campaign by ID
func (s *Store) GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

// ListCampaignsParams represents filters for listing campaigns visible to a user
type ListCampaignsParams struct {
	UserID         uuid.UUID
	OrganisationID uuid.UUID
	Status         *string
	FromDate       *time.Time
	ToDate         *time.Time
	Limit          int
	Offset         int
}

// ListCampaignsResult represents a page of campaigns
type ListCampaignsResult struct {
	Campaigns  []Campaign
	TotalCount int
}

// ListCampaigns retrieves campaigns owned by the user or shared through the organisation
func (s *Store) ListCampaigns(ctx context.Context, params ListCampaignsParams) (ListCampaignsResult, error) {
	where := ` WHERE (sender_id = $1 OR organisation_id = $2)`
	args := []interface{}{params.UserID, params.OrganisationID}
	argCount := 2

	if params.Status != nil {
		argCount++
		where += fmt.Sprintf(" AND status = $%d", argCount)
		args = append(args, *params.Status)
	}
	if params.FromDate != nil {
		argCount++
		where += fmt.Sprintf(" AND schedule_time >= $%d", argCount)
		args = append(args, *params.FromDate)
	}
	if params.ToDate != nil {
		argCount++
		where += fmt.Sprintf(" AND schedule_time <= $%d", argCount)
		args = append(args, *params.ToDate)
	}

	var totalCount int
	if err := s.db.GetContext(ctx, &totalCount, `SELECT COUNT(*) FROM email_campaigns`+where, args...); err != nil {
		return ListCampaignsResult{}, fmt.Errorf("failed to count campaigns: %w", err)
	}

	query := `SELECT ` + campaignColumns + ` FROM email_campaigns` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argCount+1, argCount+2)
	args = append(args, params.Limit, params.Offset)

	campaigns := []Campaign{}
	if err := s.db.SelectContext(ctx, &campaigns, query, args...); err != nil {
		return ListCampaignsResult{}, fmt.Errorf("failed to list campaigns: %w", err)
	}

	return ListCampaignsResult{Campaigns: campaigns, TotalCount: totalCount}, nil
}

// UpdateCampaignParams represents editable campaign fields
type UpdateCampaignParams struct {
	Name         *string
	Subject      *string
	Content      *string
	Audience     *types.JSONText
	TotalCount   *int
	ScheduleTime *time.Time
}

const sqlUpdateCampaign = `
UPDATE email_campaigns
SET name = COALESCE($2, name),
    subject = COALESCE($3, subject),
    content = COALESCE($4, content),
    audience = COALESCE($5, audience),
    total_count = COALESCE($6, total_count),
    schedule_time = COALESCE($7, schedule_time),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status IN ('draft', 'scheduled')
RETURNING ` + campaignColumns

// UpdateCampaign updates a campaign (only while draft or scheduled)
func (s *Store) UpdateCampaign(ctx context.Context, campaignID uuid.UUID, params UpdateCampaignParams) (Campaign, error) {
	var audience interface{}
	if params.Audience != nil {
		audience = *params.Audience
	}
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlUpdateCampaign,
		campaignID,
		params.Name,
		params.Subject,
		params.Content,
		audience,
		params.TotalCount,
		params.ScheduleTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to update campaign: %w", err)
	}
	return campaign, nil
}

const sqlMarkCampaignSending = `
UPDATE email_campaigns
SET status = 'sending',
    started_at = CURRENT_TIMESTAMP,
    last_processed_at = CURRENT_TIMESTAMP,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'scheduled'
RETURNING ` + campaignColumns

// MarkCampaignSending moves a scheduled campaign to sending; ErrNotFound when it is no longer scheduled
func (s *Store) MarkCampaignSending(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlMarkCampaignSending, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to mark campaign sending: %w", err)
	}
	return campaign, nil
}

const sqlSetCampaignTotalCount = `
UPDATE email_campaigns
SET total_count = $2,
    last_processed_at = CURRENT_TIMESTAMP,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// SetCampaignTotalCount records how many scheduled emails were expanded
func (s *Store) SetCampaignTotalCount(ctx context.Context, campaignID uuid.UUID, total int) error {
	if _, err := s.db.ExecContext(ctx, sqlSetCampaignTotalCount, campaignID, total); err != nil {
		return fmt.Errorf("failed to set campaign total count: %w", err)
	}
	return nil
}

const sqlUpdateCampaignCounters = `
UPDATE email_campaigns
SET sent_count = $2,
    failed_count = $3,
    total_count = $4,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + campaignColumns

// UpdateCampaignCounters overwrites the rolled up child counters
func (s *Store) UpdateCampaignCounters(ctx context.Context, campaignID uuid.UUID, sent, failed, total int) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlUpdateCampaignCounters, campaignID, sent, failed, total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to update campaign counters: %w", err)
	}
	return campaign, nil
}

const sqlMarkCampaignCompleted = `
UPDATE email_campaigns
SET status = 'completed',
    completed_at = CURRENT_TIMESTAMP,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status IN ('sending', 'processing')
`

// MarkCampaignCompleted completes a sending campaign; false when it was not sending
func (s *Store) MarkCampaignCompleted(ctx context.Context, campaignID uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlMarkCampaignCompleted, campaignID)
	if err != nil {
		return false, fmt.Errorf("failed to mark campaign completed: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

const sqlMarkCampaignFailed = `
UPDATE email_campaigns
SET status = 'failed',
    error_message = $2,
    last_processed_at = CURRENT_TIMESTAMP,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// MarkCampaignFailed records an orchestration failure
func (s *Store) MarkCampaignFailed(ctx context.Context, campaignID uuid.UUID, errorMessage string) error {
	if _, err := s.db.ExecContext(ctx, sqlMarkCampaignFailed, campaignID, errorMessage); err != nil {
		return fmt.Errorf("failed to mark campaign failed: %w", err)
	}
	return nil
}

const sqlMarkCampaignCancelled = `
UPDATE email_campaigns
SET status = 'cancelled',
    cancelled_at = CURRENT_TIMESTAMP,
    last_processed_at = CURRENT_TIMESTAMP,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status IN ('draft', 'scheduled', 'sending', 'processing')
RETURNING ` + campaignColumns

// MarkCampaignCancelled cancels a campaign that has not finished; ErrNotFound otherwise
func (s *Store) MarkCampaignCancelled(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlMarkCampaignCancelled, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to cancel campaign: %w", err)
	}
	return campaign, nil
}

const sqlGetDueCampaigns = `
SELECT ` + campaignColumns + `
FROM email_campaigns
WHERE status = 'scheduled' AND (schedule_time IS NULL OR schedule_time <= $1)
ORDER BY schedule_time ASC NULLS FIRST
LIMIT $2
`

// GetDueCampaigns lists scheduled campaigns whose schedule time has passed
func (s *Store) GetDueCampaigns(ctx context.Context, before time.Time, limit int) ([]Campaign, error) {
	campaigns := []Campaign{}
	if err := s.db.SelectContext(ctx, &campaigns, sqlGetDueCampaigns, before, limit); err != nil {
		return nil, fmt.Errorf("failed to get due campaigns: %w", err)
	}
	return campaigns, nil
}
