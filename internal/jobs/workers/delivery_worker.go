package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"crm-server/internal/jobs"
	"crm-server/internal/observability"
	scheduledemails "crm-server/internal/scheduledemails/processor"

	"github.com/hibiken/asynq"
)

// DeliveryWorker handles scheduled email send tasks
type DeliveryWorker struct {
	deliverer ScheduledEmailDeliverer
	logger    *observability.Logger
}

// NewDeliveryWorker creates a new delivery worker
func NewDeliveryWorker(deliverer ScheduledEmailDeliverer, logger *observability.Logger) *DeliveryWorker {
	return &DeliveryWorker{
		deliverer: deliverer,
		logger:    logger,
	}
}

// ProcessSendScheduledEmailTask processes a send task. Permanent failures skip asynq's retries.
func (w *DeliveryWorker) ProcessSendScheduledEmailTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.SendScheduledEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal send task payload", err)
		return fmt.Errorf("failed to unmarshal send task payload: %v: %w", err, asynq.SkipRetry)
	}

	err := w.deliverer.DeliverScheduledEmail(ctx, payload.ScheduledEmailID)
	if errors.Is(err, scheduledemails.ErrPermanentFailure) {
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}
	return err
}
