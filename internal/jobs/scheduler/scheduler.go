package scheduler

import (
	"context"
	"fmt"
	"time"

	"crm-server/internal/observability"

	"github.com/robfig/cron/v3"
)

// Job represents a scheduled job
type Job interface {
	// Name returns the job name for logging
	Name() string
	// Run executes the job
	Run(ctx context.Context) error
	// Schedule returns the cron spec the job runs on
	Schedule() string
}

// Scheduler runs registered jobs on their cron schedules
type Scheduler struct {
	cron   *cron.Cron
	jobs   []Job
	logger *observability.Logger
}

// New creates a new scheduler. Schedules are evaluated in UTC.
func New(logger *observability.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		jobs:   make([]Job, 0),
		logger: logger,
	}
}

// Register adds a job to the scheduler
func (s *Scheduler) Register(job Job) error {
	if _, err := cron.ParseStandard(job.Schedule()); err != nil {
		return fmt.Errorf("invalid schedule for job %s: %w", job.Name(), err)
	}
	s.jobs = append(s.jobs, job)
	s.logger.Info(context.Background(), fmt.Sprintf("Registered scheduled job: %s (schedule: %s)",
		job.Name(), job.Schedule()))
	return nil
}

// Start runs all registered jobs until ctx is cancelled, then waits for running jobs to finish
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info(ctx, fmt.Sprintf("Starting scheduler with %d jobs", len(s.jobs)))

	for _, job := range s.jobs {
		job := job
		jobCtx := observability.WithFields(ctx, observability.Field{Key: "scheduled_job", Value: job.Name()})
		if _, err := s.cron.AddFunc(job.Schedule(), func() {
			_ = s.executeJob(jobCtx, job)
		}); err != nil {
			return fmt.Errorf("failed to schedule job %s: %w", job.Name(), err)
		}
	}
	s.cron.Start()

	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.logger.Info(ctx, "Scheduler stopped")
	return ctx.Err()
}

// executeJob executes a job and logs timing
func (s *Scheduler) executeJob(ctx context.Context, job Job) error {
	start := time.Now()
	s.logger.Info(ctx, fmt.Sprintf("Executing scheduled job: %s", job.Name()))

	err := job.Run(ctx)
	duration := time.Since(start)

	if err != nil {
		s.logger.Error(ctx, fmt.Sprintf("Job %s failed after %v", job.Name(), duration), err)
		return err
	}

	s.logger.Info(ctx, fmt.Sprintf("Job %s completed successfully in %v", job.Name(), duration))
	return nil
}
