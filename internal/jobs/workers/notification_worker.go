package workers

import (
	"context"
	"fmt"

	"crm-server/internal/clients/kafka"
	"crm-server/internal/observability"
	"crm-server/internal/store"

	"github.com/google/uuid"
)

// NotificationWorker turns delivery events into in-app notifications for the sender
type NotificationWorker struct {
	store  NotificationStore
	logger *observability.Logger
}

// NewNotificationWorker creates a new notification worker
func NewNotificationWorker(store NotificationStore, logger *observability.Logger) *NotificationWorker {
	return &NotificationWorker{
		store:  store,
		logger: logger,
	}
}

// ProcessEmailFailed notifies the sender that an email will not be delivered
func (w *NotificationWorker) ProcessEmailFailed(ctx context.Context, event kafka.EventMessage) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		w.logger.Warn(ctx, "email failed event without a valid user")
		return nil
	}

	to, _ := event.Data["to_email"].(string)
	reason, _ := event.Data["error"].(string)
	params := store.CreateNotificationParams{
		UserID:   userID,
		Title:    "Email delivery failed",
		Message:  fmt.Sprintf("Your email to %s could not be delivered: %s", to, reason),
		Type:     store.NotificationTypeError,
		Category: store.NotificationCategorySystem,
	}
	if id, ok := dataUUID(event.Data, "scheduled_email_id"); ok {
		params.RelatedID = &id
	}
	return w.create(ctx, params)
}

// ProcessCampaignCompleted notifies the sender that a campaign finished
func (w *NotificationWorker) ProcessCampaignCompleted(ctx context.Context, event kafka.EventMessage) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		w.logger.Warn(ctx, "campaign completed event without a valid user")
		return nil
	}

	name, _ := event.Data["name"].(string)
	params := store.CreateNotificationParams{
		UserID:   userID,
		Title:    "Campaign completed",
		Message:  fmt.Sprintf("%s finished: %d sent, %d failed", name, dataInt(event.Data, "sent_count"), dataInt(event.Data, "failed_count")),
		Type:     store.NotificationTypeSuccess,
		Category: store.NotificationCategorySystem,
	}
	if id, ok := dataUUID(event.Data, "campaign_id"); ok {
		params.RelatedID = &id
	}
	return w.create(ctx, params)
}

func (w *NotificationWorker) create(ctx context.Context, params store.CreateNotificationParams) error {
	if _, err := w.store.CreateNotification(ctx, params); err != nil {
		w.logger.Error(ctx, "failed to create notification", err)
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func dataUUID(data map[string]interface{}, key string) (uuid.UUID, bool) {
	raw, _ := data[key].(string)
	id, err := uuid.Parse(raw)
	return id, err == nil
}

// dataInt reads a number decoded from JSON
func dataInt(data map[string]interface{}, key string) int {
	switch v := data[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
