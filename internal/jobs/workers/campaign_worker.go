package workers

import (
	"context"
	"encoding/json"
	"fmt"

	"crm-server/internal/jobs"
	"crm-server/internal/observability"

	"github.com/hibiken/asynq"
)

// CampaignWorker handles campaign expansion tasks
type CampaignWorker struct {
	campaigns CampaignRunner
	logger    *observability.Logger
}

// NewCampaignWorker creates a new campaign worker
func NewCampaignWorker(campaigns CampaignRunner, logger *observability.Logger) *CampaignWorker {
	return &CampaignWorker{
		campaigns: campaigns,
		logger:    logger,
	}
}

// ProcessCampaignTask expands one campaign. The task is never retried; a failed expansion
// leaves the campaign in failed.
func (w *CampaignWorker) ProcessCampaignTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.ProcessCampaignPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal campaign task payload", err)
		return fmt.Errorf("failed to unmarshal campaign task payload: %v: %w", err, asynq.SkipRetry)
	}
	return w.campaigns.ProcessCampaign(ctx, payload.CampaignID)
}
