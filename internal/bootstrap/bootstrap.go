package bootstrap

import (
	"context"
	"fmt"

	"crm-server/internal/config"
	"crm-server/internal/observability"
	"crm-server/internal/store"

	"crm-server/internal/auth/handler"
	"crm-server/internal/auth/processor"
	campaignHandler "crm-server/internal/campaigns/handler"
	campaignProcessor "crm-server/internal/campaigns/processor"
	"crm-server/internal/clients/googleoauth"
	kafkaClient "crm-server/internal/clients/kafka"
	"crm-server/internal/clients/mail"
	redisClient "crm-server/internal/clients/redis"
	"crm-server/internal/jobs"
	"crm-server/internal/jobs/producer"
	mailAccountHandler "crm-server/internal/mailaccounts/handler"
	mailAccountProcessor "crm-server/internal/mailaccounts/processor"
	"crm-server/internal/mailer"
	"crm-server/internal/ratelimit"
	scheduledEmailHandler "crm-server/internal/scheduledemails/handler"
	scheduledEmailProcessor "crm-server/internal/scheduledemails/processor"
	taskHandler "crm-server/internal/tasks/handler"
	taskProcessor "crm-server/internal/tasks/processor"
	"crm-server/internal/tokenbroker"

	"github.com/hibiken/asynq"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler           handler.Handler
	CampaignHandler       campaignHandler.Handler
	ScheduledEmailHandler scheduledEmailHandler.Handler
	MailAccountHandler    mailAccountHandler.Handler
	TaskHandler           taskHandler.Handler
	SendLimiter           *ratelimit.Service

	// Processors shared with the background workers
	CampaignProcessor       campaignProcessor.CampaignProcessor
	ScheduledEmailProcessor scheduledEmailProcessor.ScheduledEmailProcessor
	TaskProcessor           taskProcessor.TaskProcessor
	Events                  *producer.EventProducer

	// Clients (for cleanup)
	JobClient     *jobs.Client
	RedisClient   *redisClient.Client
	KafkaProducer *kafkaClient.Producer
}

// RedisClientOpt returns the asynq connection settings shared by the client, server and scheduler
func RedisClientOpt(cfg *config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Refresh lock and send limiter; both are skipped without Redis
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	var locker tokenbroker.Locker
	var counter ratelimit.Counter
	if deps.RedisClient != nil {
		locker = deps.RedisClient
		counter = deps.RedisClient
	}
	deps.SendLimiter = ratelimit.NewService(counter, cfg.RateLimit.SendPerMinute, logger)

	// Initialize clients
	googleOAuthClient := googleoauth.NewClient(
		cfg.Auth.GoogleClientID,
		cfg.Auth.GoogleClientSecret,
		cfg.Auth.GoogleRedirectURI,
		logger,
	)
	broker := tokenbroker.New(&deps.Store, googleOAuthClient, locker, logger)

	gmailSender := mailer.NewGmailSender(logger)
	resendClient := mail.NewResendClient(cfg.Services.ResendAPIKey, cfg.Services.DefaultEmailSender, logger)
	defaultMailer := mailer.NewDefaultMailer(resendClient)
	if !defaultMailer.Enabled() {
		logger.Info(ctx, "default mailer not configured, sends without a linked mail account will fail")
	}

	// Initialize Kafka producer
	deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
		Brokers: cfg.Kafka.BrokerList(),
		Topic:   cfg.Kafka.Topic,
	}, logger)
	var publisher producer.Publisher
	if deps.KafkaProducer != nil {
		publisher = deps.KafkaProducer
	}
	deps.Events = producer.New(publisher, logger)

	// Initialize task queue client
	deps.JobClient = jobs.NewClient(RedisClientOpt(cfg), logger)

	// Initialize auth processor and handler
	authProc := processor.New(processor.AuthConfig{JWTSecret: cfg.Auth.JWTSecret}, logger)
	deps.AuthHandler = handler.New(authProc, logger)

	// Initialize campaign processor and handler
	deps.CampaignProcessor = campaignProcessor.New(&deps.Store, deps.JobClient, deps.Events, logger)
	deps.CampaignHandler = campaignHandler.New(deps.CampaignProcessor, logger)

	// Initialize scheduled email processor and handler
	deps.ScheduledEmailProcessor = scheduledEmailProcessor.New(
		&deps.Store,
		&deps.CampaignProcessor,
		broker,
		gmailSender,
		defaultMailer,
		deps.JobClient,
		deps.Events,
		logger,
	)
	deps.ScheduledEmailHandler = scheduledEmailHandler.New(deps.ScheduledEmailProcessor, logger)

	// Initialize mail account processor and handler
	mailAccountProc := mailAccountProcessor.New(&deps.Store, googleOAuthClient, broker, gmailSender, cfg.Auth.JWTSecret, logger)
	deps.MailAccountHandler = mailAccountHandler.New(mailAccountProc, cfg.Services.WebAppURI, logger)

	// Initialize task processor and handler
	deps.TaskProcessor = taskProcessor.New(&deps.Store, deps.Events, logger)
	deps.TaskHandler = taskHandler.New(deps.TaskProcessor, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.JobClient != nil {
		if err := d.JobClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close task queue client", err)
		}
	}
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if d.RedisClient != nil {
		if err := d.RedisClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close redis client", err)
		}
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
