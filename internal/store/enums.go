package store

import "time"

// ScheduledEmailStatus represents the lifecycle state of a scheduled email
type ScheduledEmailStatus string

const (
	ScheduledEmailStatusPending    ScheduledEmailStatus = "pending"
	ScheduledEmailStatusScheduled  ScheduledEmailStatus = "scheduled"
	ScheduledEmailStatusProcessing ScheduledEmailStatus = "processing"
	ScheduledEmailStatusSent       ScheduledEmailStatus = "sent"
	ScheduledEmailStatusFailed     ScheduledEmailStatus = "failed"
	ScheduledEmailStatusCancelled  ScheduledEmailStatus = "cancelled"
)

// CampaignStatus represents the lifecycle state of an email campaign
type CampaignStatus string

const (
	CampaignStatusDraft      CampaignStatus = "draft"
	CampaignStatusScheduled  CampaignStatus = "scheduled"
	CampaignStatusSending    CampaignStatus = "sending"
	CampaignStatusProcessing CampaignStatus = "processing"
	CampaignStatusCompleted  CampaignStatus = "completed"
	CampaignStatusFailed     CampaignStatus = "failed"
	CampaignStatusCancelled  CampaignStatus = "cancelled"
)

// Campaign schedule modes
const (
	CampaignScheduleNow   = "now"
	CampaignScheduleLater = "later"
)

// Mail providers
const (
	MailProviderGoogle = "google"
)

// Email log statuses
const (
	EmailLogStatusSent   = "sent"
	EmailLogStatusFailed = "failed"
)

// Task statuses
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

// Notification types
const (
	NotificationTypeInfo     = "info"
	NotificationTypeSuccess  = "success"
	NotificationTypeWarning  = "warning"
	NotificationTypeError    = "error"
	NotificationTypeReminder = "reminder"
)

// Notification categories
const (
	NotificationCategoryTask     = "task"
	NotificationCategorySystem   = "system"
	NotificationCategoryReminder = "reminder"
)

// Delivery policy for scheduled emails.
const (
	// MaxSendAttempts caps how many times a scheduled email enters processing.
	MaxSendAttempts = 3
	// SendTimeout bounds a single delivery attempt.
	SendTimeout = 2 * time.Minute
	// ProcessingLease is how long a claim is honoured before another worker may reclaim the row.
	ProcessingLease = 5 * time.Minute
)

var sendRetryBackoff = []time.Duration{time.Minute, 5 * time.Minute, 10 * time.Minute}

// SendRetryBackoff returns the delay before the retry that follows the given attempt (1-based).
func SendRetryBackoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if attempt > len(sendRetryBackoff) {
		attempt = len(sendRetryBackoff)
	}
	return sendRetryBackoff[attempt-1]
}
