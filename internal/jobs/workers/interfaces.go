package workers

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=workers

import (
	"context"
	"time"

	"crm-server/internal/store"

	"github.com/google/uuid"
)

// ScheduledEmailDeliverer performs one delivery attempt for a scheduled email
type ScheduledEmailDeliverer interface {
	DeliverScheduledEmail(ctx context.Context, emailID uuid.UUID) error
}

// CampaignRunner expands campaigns and rolls their results up
type CampaignRunner interface {
	ProcessCampaign(ctx context.Context, campaignID uuid.UUID) error
	UpdateStats(ctx context.Context, campaignID uuid.UUID) error
}

// SweepStore finds work whose task should already have run
type SweepStore interface {
	GetDueCampaigns(ctx context.Context, before time.Time, limit int) ([]store.Campaign, error)
	GetDueScheduledEmails(ctx context.Context, dueBefore, leaseExpiredBefore time.Time, limit int) ([]store.ScheduledEmail, error)
	FailAbandonedScheduledEmails(ctx context.Context, leaseExpiredBefore time.Time, errorMessage string) ([]store.ScheduledEmail, error)
}

// TaskEnqueuer schedules deferred work
type TaskEnqueuer interface {
	EnqueueScheduledEmail(ctx context.Context, emailID uuid.UUID, scheduledFor time.Time, attempts int) error
	EnqueueCampaign(ctx context.Context, campaignID uuid.UUID, at time.Time) error
}

// NotificationStore persists in-app notifications
type NotificationStore interface {
	CreateNotification(ctx context.Context, params store.CreateNotificationParams) (store.Notification, error)
}
