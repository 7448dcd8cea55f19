package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"crm-server/internal/bootstrap"
	"crm-server/internal/config"
	"crm-server/internal/jobs"
	"crm-server/internal/jobs/scheduler"
	schedulerJobs "crm-server/internal/jobs/scheduler/jobs"
	"crm-server/internal/jobs/workers"
	"crm-server/internal/observability"

	"github.com/hibiken/asynq"
)

func main() {
	// Initialize logger
	logger := observability.NewLogger()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info(ctx, "Starting background worker server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}
	defer deps.Cleanup()

	// Initialize workers
	deliveryWorker := workers.NewDeliveryWorker(&deps.ScheduledEmailProcessor, logger)
	campaignWorker := workers.NewCampaignWorker(&deps.CampaignProcessor, logger)
	sweepWorker := workers.NewSweepWorker(&deps.Store, deps.JobClient, &deps.CampaignProcessor, logger, cfg.Worker.SweepBatch)

	redisOpt := bootstrap.RedisClientOpt(cfg)
	asynqLogger := &observability.AsynqLogger{Logger: logger}

	// Create Asynq server with queue configuration
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: cfg.Worker.Concurrency,
			Queues: map[string]int{
				jobs.QueueCritical: 6,
				jobs.QueueDefault:  3,
				jobs.QueueLow:      1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				retried, _ := asynq.GetRetryCount(ctx)
				maxRetry, _ := asynq.GetMaxRetry(ctx)
				ctx = observability.WithFields(ctx,
					observability.Field{Key: "task_type", Value: task.Type()},
					observability.Field{Key: "retry", Value: retried},
					observability.Field{Key: "max_retry", Value: maxRetry},
				)
				logger.Error(ctx, fmt.Sprintf("task %s failed", task.Type()), err)
			}),
			RetryDelayFunc: jobs.RetryDelay,
			Logger:         asynqLogger,
		},
	)

	// Create task handler (mux)
	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypeSendScheduledEmail, deliveryWorker.ProcessSendScheduledEmailTask)
	mux.HandleFunc(jobs.TypeProcessCampaign, campaignWorker.ProcessCampaignTask)
	mux.HandleFunc(jobs.TypeSweep, sweepWorker.ProcessSweepTask)

	// Periodic sweep picks up due rows whose task was lost and abandoned claims
	periodic := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{Logger: asynqLogger})
	if _, err := periodic.Register(fmt.Sprintf("@every %s", cfg.Worker.SweepInterval), jobs.NewSweepTask()); err != nil {
		log.Fatalf("Failed to register sweep task: %v", err)
	}
	if err := periodic.Start(); err != nil {
		log.Fatalf("Failed to start periodic scheduler: %v", err)
	}
	defer periodic.Shutdown()

	// Cron jobs
	cronScheduler := scheduler.New(logger)
	reminders := schedulerJobs.NewTaskRemindersJob(&deps.Store, logger, cfg.Reminders.Cron, cfg.Reminders.DueDays)
	if err := cronScheduler.Register(reminders); err != nil {
		log.Fatalf("Failed to register reminder job: %v", err)
	}
	go func() {
		if err := cronScheduler.Start(ctx); err != nil && ctx.Err() == nil {
			logger.Error(ctx, "cron scheduler stopped with error", err)
		}
	}()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if err := srv.Start(mux); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
	logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", redisOpt.Addr))

	// Wait for shutdown signal
	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")

	cancel()
	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}
