package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"crm-server/internal/clients/kafka"
	"crm-server/internal/config"
	"crm-server/internal/jobs/consumer"
	"crm-server/internal/jobs/workers"
	"crm-server/internal/observability"
	"crm-server/internal/store"
)

func main() {
	// Initialize logger
	logger := observability.NewLogger()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info(ctx, "Starting Kafka notification worker...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer dataStore.Close()

	brokers := cfg.Kafka.BrokerList()
	kafkaConsumer := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.ConsumerGroup,
	}, logger)
	defer kafkaConsumer.Close()

	notificationWorker := workers.NewNotificationWorker(&dataStore, logger)
	jobConsumer := consumer.New(kafkaConsumer, notificationWorker, logger, cfg.Kafka.WorkerPoolSize)

	logger.Info(ctx, fmt.Sprintf(`Kafka notification worker configuration:
  - Concurrent workers: %d
  - Kafka brokers: %v
  - Kafka topic: %s
  - Consumer group: %s`,
		cfg.Kafka.WorkerPoolSize, brokers, cfg.Kafka.Topic, cfg.Kafka.ConsumerGroup))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := jobConsumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error(ctx, "Job consumer error", err)
			cancel()
		}
	}()

	// Wait for shutdown signal or a consumer failure
	select {
	case <-sigChan:
		logger.Info(ctx, "Received shutdown signal, stopping workers...")
	case <-ctx.Done():
	}
	cancel()

	logger.Info(ctx, "Waiting for workers to finish...")
	<-done

	logger.Info(ctx, "Kafka notification worker stopped")
}
