package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crm-server/internal/observability"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Client handles enqueueing background tasks
type Client struct {
	client *asynq.Client
	logger *observability.Logger
}

// NewClient creates a new task client
func NewClient(redisOpt asynq.RedisClientOpt, logger *observability.Logger) *Client {
	return &Client{
		client: asynq.NewClient(redisOpt),
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueScheduledEmail enqueues delivery of a scheduled email at scheduledFor.
// attempts is the row's current attempt count; an identical pending task is left alone.
func (c *Client) EnqueueScheduledEmail(ctx context.Context, emailID uuid.UUID, scheduledFor time.Time, attempts int) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "scheduled_email_id", Value: emailID})

	task, err := NewSendScheduledEmailTask(emailID, scheduledFor, attempts)
	if err != nil {
		c.logger.Error(ctx, "failed to create send task", err)
		return fmt.Errorf("failed to create send task: %w", err)
	}
	return c.enqueue(ctx, task, "send")
}

// EnqueueCampaign enqueues expansion of a campaign at at
func (c *Client) EnqueueCampaign(ctx context.Context, campaignID uuid.UUID, at time.Time) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	task, err := NewProcessCampaignTask(campaignID, at)
	if err != nil {
		c.logger.Error(ctx, "failed to create campaign task", err)
		return fmt.Errorf("failed to create campaign task: %w", err)
	}
	return c.enqueue(ctx, task, "campaign")
}

func (c *Client) enqueue(ctx context.Context, task *asynq.Task, kind string) error {
	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			c.logger.Debug(ctx, fmt.Sprintf("%s task already enqueued", kind))
			return nil
		}
		c.logger.Error(ctx, fmt.Sprintf("failed to enqueue %s task", kind), err)
		return fmt.Errorf("failed to enqueue %s task: %w", kind, err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued %s task: %s (queue: %s)", kind, info.ID, info.Queue))
	return nil
}
