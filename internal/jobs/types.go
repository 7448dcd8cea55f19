package jobs

import (
	"encoding/json"
	"fmt"
	"time"

	"crm-server/internal/store"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Task type constants
const (
	// Critical queue
	TypeSendScheduledEmail = "email:send_scheduled"

	// Default queue
	TypeProcessCampaign = "campaign:process"

	// Low queue
	TypeSweep = "maintenance:sweep"
)

// Queue names
const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// Delivery limits
const (
	// SendMaxRetry gives three attempts in total
	SendMaxRetry    = 2
	SendTimeout     = store.SendTimeout
	CampaignTimeout = 5 * time.Minute
	SweepTimeout    = time.Minute
)

// SendScheduledEmailPayload identifies the scheduled email to deliver
type SendScheduledEmailPayload struct {
	ScheduledEmailID uuid.UUID `json:"scheduled_email_id"`
}

// ProcessCampaignPayload identifies the campaign to expand
type ProcessCampaignPayload struct {
	CampaignID uuid.UUID `json:"campaign_id"`
}

// SendTaskID derives the asynq task id for one delivery attempt of a scheduled email.
// Rescheduling or a new attempt yields a new id; duplicate enqueues of the same attempt collide.
func SendTaskID(emailID uuid.UUID, scheduledFor time.Time, attempts int) string {
	return fmt.Sprintf("scheduled-email:%s:%d:%d", emailID, scheduledFor.Unix(), attempts)
}

// CampaignTaskID derives the asynq task id for processing a campaign at a given time
func CampaignTaskID(campaignID uuid.UUID, at time.Time) string {
	return fmt.Sprintf("campaign:%s:%d", campaignID, at.Unix())
}

// NewSendScheduledEmailTask creates a delivery task that becomes ready at scheduledFor
func NewSendScheduledEmailTask(emailID uuid.UUID, scheduledFor time.Time, attempts int) (*asynq.Task, error) {
	data, err := json.Marshal(SendScheduledEmailPayload{ScheduledEmailID: emailID})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(TypeSendScheduledEmail, data,
		asynq.Queue(QueueCritical),
		asynq.MaxRetry(SendMaxRetry),
		asynq.Timeout(SendTimeout),
		asynq.ProcessAt(scheduledFor),
		asynq.TaskID(SendTaskID(emailID, scheduledFor, attempts)),
	), nil
}

// NewProcessCampaignTask creates a campaign expansion task that becomes ready at at.
// Expansion is not retried; the sweep picks up campaigns that are still scheduled.
func NewProcessCampaignTask(campaignID uuid.UUID, at time.Time) (*asynq.Task, error) {
	data, err := json.Marshal(ProcessCampaignPayload{CampaignID: campaignID})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(TypeProcessCampaign, data,
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(0),
		asynq.Timeout(CampaignTimeout),
		asynq.ProcessAt(at),
		asynq.TaskID(CampaignTaskID(campaignID, at)),
	), nil
}

// NewSweepTask creates the periodic due-work sweep task
func NewSweepTask() *asynq.Task {
	return asynq.NewTask(TypeSweep, nil,
		asynq.Queue(QueueLow),
		asynq.MaxRetry(0),
		asynq.Timeout(SweepTimeout),
	)
}

// RetryDelay spaces send retries 1m, 5m, 10m and defers to asynq for everything else.
// n counts the retries already made.
func RetryDelay(n int, err error, task *asynq.Task) time.Duration {
	if task.Type() != TypeSendScheduledEmail {
		return asynq.DefaultRetryDelayFunc(n, err, task)
	}
	return store.SendRetryBackoff(n + 1)
}
