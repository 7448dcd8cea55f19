package workers

import (
	"context"
	"fmt"
	"time"

	"crm-server/internal/observability"
	"crm-server/internal/store"

	"github.com/hibiken/asynq"
)

// abandonedMessage is recorded on claims that expired on their last allowed attempt
const abandonedMessage = "delivery attempt abandoned after the final retry"

// SweepWorker re-enqueues due work whose task was lost. Every enqueue is idempotent:
// the task id dedupes pending tasks and the row guards dedupe execution.
type SweepWorker struct {
	store     SweepStore
	enqueuer  TaskEnqueuer
	campaigns CampaignRunner
	logger    *observability.Logger
	batchSize int
	now       func() time.Time
}

// NewSweepWorker creates a new sweep worker
func NewSweepWorker(store SweepStore, enqueuer TaskEnqueuer, campaigns CampaignRunner, logger *observability.Logger, batchSize int) *SweepWorker {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &SweepWorker{
		store:     store,
		enqueuer:  enqueuer,
		campaigns: campaigns,
		logger:    logger,
		batchSize: batchSize,
		now:       time.Now,
	}
}

// ProcessSweepTask runs one sweep (for Asynq)
func (w *SweepWorker) ProcessSweepTask(ctx context.Context, _ *asynq.Task) error {
	return w.Sweep(ctx)
}

// Sweep enqueues due campaigns and due or abandoned scheduled emails
func (w *SweepWorker) Sweep(ctx context.Context) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "job", Value: "sweep"})
	now := w.now()
	leaseExpiredBefore := now.Add(-store.ProcessingLease)

	campaigns, err := w.store.GetDueCampaigns(ctx, now, w.batchSize)
	if err != nil {
		w.logger.Error(ctx, "failed to get due campaigns", err)
		return err
	}
	for _, campaign := range campaigns {
		at := now
		if campaign.ScheduleTime != nil {
			at = *campaign.ScheduleTime
		}
		if err := w.enqueuer.EnqueueCampaign(ctx, campaign.ID, at); err != nil {
			w.logger.Error(ctx, "failed to enqueue due campaign", err)
		}
	}

	emails, err := w.store.GetDueScheduledEmails(ctx, now, leaseExpiredBefore, w.batchSize)
	if err != nil {
		w.logger.Error(ctx, "failed to get due scheduled emails", err)
		return err
	}
	enqueued := 0
	for _, email := range emails {
		at := now
		if email.ScheduledFor != nil {
			at = *email.ScheduledFor
		}
		if err := w.enqueuer.EnqueueScheduledEmail(ctx, email.ID, at, email.Attempts); err != nil {
			w.logger.Error(ctx, "failed to enqueue due scheduled email", err)
			continue
		}
		enqueued++
	}

	abandoned, err := w.store.FailAbandonedScheduledEmails(ctx, leaseExpiredBefore, abandonedMessage)
	if err != nil {
		w.logger.Error(ctx, "failed to fail abandoned scheduled emails", err)
		return err
	}
	rolled := map[string]bool{}
	for _, email := range abandoned {
		if email.CampaignID == nil || rolled[email.CampaignID.String()] {
			continue
		}
		rolled[email.CampaignID.String()] = true
		if err := w.campaigns.UpdateStats(ctx, *email.CampaignID); err != nil {
			w.logger.Error(ctx, "failed to update campaign stats", err)
		}
	}

	if len(campaigns) > 0 || len(emails) > 0 || len(abandoned) > 0 {
		w.logger.Info(ctx, fmt.Sprintf("sweep: %d campaigns, %d/%d emails enqueued, %d abandoned", len(campaigns), enqueued, len(emails), len(abandoned)))
	}
	return nil
}
