package producer

import (
	"context"
	"fmt"

	"crm-server/internal/clients/kafka"
	"crm-server/internal/observability"
	"crm-server/internal/store"

	"github.com/google/uuid"
)

// Publisher writes events to the broker
type Publisher interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// EventProducer publishes delivery and notification events for downstream consumers
type EventProducer struct {
	publisher Publisher
	logger    *observability.Logger
}

// New creates a new EventProducer. A nil publisher drops every event.
func New(publisher Publisher, logger *observability.Logger) *EventProducer {
	return &EventProducer{
		publisher: publisher,
		logger:    logger,
	}
}

// PublishEmailSent announces a delivered scheduled email
func (p *EventProducer) PublishEmailSent(ctx context.Context, email store.ScheduledEmail, messageID string) error {
	event := kafka.NewEvent(kafka.EventEmailSent, email.OrganisationID, email.UserID, map[string]interface{}{
		"scheduled_email_id": email.ID.String(),
		"to_email":           email.ToEmail,
		"subject":            email.Subject,
		"message_id":         messageID,
		"attempts":           email.Attempts,
	})
	return p.publish(ctx, withCampaign(event, email), "email sent")
}

// PublishEmailFailed announces a scheduled email that will not be retried
func (p *EventProducer) PublishEmailFailed(ctx context.Context, email store.ScheduledEmail, reason string) error {
	event := kafka.NewEvent(kafka.EventEmailFailed, email.OrganisationID, email.UserID, map[string]interface{}{
		"scheduled_email_id": email.ID.String(),
		"to_email":           email.ToEmail,
		"subject":            email.Subject,
		"error":              reason,
		"attempts":           email.Attempts,
	})
	return p.publish(ctx, withCampaign(event, email), "email failed")
}

// PublishCampaignCompleted announces a campaign whose children all reached a final state
func (p *EventProducer) PublishCampaignCompleted(ctx context.Context, campaign store.Campaign) error {
	campaignID := campaign.ID.String()
	event := kafka.NewEvent(kafka.EventCampaignCompleted, campaign.OrganisationID, campaign.SenderID, map[string]interface{}{
		"campaign_id":  campaignID,
		"name":         campaign.Name,
		"sent_count":   campaign.SentCount,
		"failed_count": campaign.FailedCount,
		"total_count":  campaign.TotalCount,
	})
	event.CampaignID = &campaignID
	return p.publish(ctx, event, "campaign completed")
}

// PublishNotificationCreated announces a new in-app notification
func (p *EventProducer) PublishNotificationCreated(ctx context.Context, organisationID uuid.UUID, n store.Notification) error {
	data := map[string]interface{}{
		"notification_id": n.ID.String(),
		"title":           n.Title,
		"message":         n.Message,
		"type":            n.Type,
		"category":        n.Category,
	}
	if n.RelatedID != nil {
		data["related_id"] = n.RelatedID.String()
	}
	event := kafka.NewEvent(kafka.EventNotificationCreated, organisationID, n.UserID, data)
	return p.publish(ctx, event, "notification created")
}

func (p *EventProducer) publish(ctx context.Context, event kafka.EventMessage, what string) error {
	if p.publisher == nil {
		return nil
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_type", Value: event.Type},
		observability.Field{Key: "event_id", Value: event.ID},
	)

	if err := p.publisher.PublishEvent(ctx, event); err != nil {
		p.logger.Error(ctx, fmt.Sprintf("failed to publish %s event", what), err)
		return fmt.Errorf("failed to publish %s event: %w", what, err)
	}
	return nil
}

func withCampaign(event kafka.EventMessage, email store.ScheduledEmail) kafka.EventMessage {
	if email.CampaignID != nil {
		id := email.CampaignID.String()
		event.CampaignID = &id
	}
	return event
}
