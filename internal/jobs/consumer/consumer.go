package consumer

//go:generate go run go.uber.org/mock/mockgen@latest -source=consumer.go -destination=mocks_test.go -package=consumer

import (
	"context"
	"fmt"
	"sync"

	"crm-server/internal/clients/kafka"
	"crm-server/internal/observability"
)

// EventSource delivers events to a handler until ctx is cancelled
type EventSource interface {
	ConsumeEvents(ctx context.Context, handler func(context.Context, kafka.EventMessage) error) error
}

// NotificationHandler turns delivery events into notifications
type NotificationHandler interface {
	ProcessEmailFailed(ctx context.Context, event kafka.EventMessage) error
	ProcessCampaignCompleted(ctx context.Context, event kafka.EventMessage) error
}

// JobConsumer handles consuming domain events from Kafka
type JobConsumer struct {
	source        EventSource
	notifications NotificationHandler
	logger        *observability.Logger
	workerCount   int
}

// New creates a new JobConsumer
func New(source EventSource, notifications NotificationHandler, logger *observability.Logger, workerCount int) *JobConsumer {
	if workerCount == 0 {
		workerCount = 10
	}

	return &JobConsumer{
		source:        source,
		notifications: notifications,
		logger:        logger,
		workerCount:   workerCount,
	}
}

// Start starts consuming events from Kafka with multiple workers
func (c *JobConsumer) Start(ctx context.Context) error {
	c.logger.Info(ctx, fmt.Sprintf("Starting job consumer with %d workers", c.workerCount))

	eventChan := make(chan kafka.EventMessage, 100)
	errorChan := make(chan error, 1)

	go func() {
		err := c.source.ConsumeEvents(ctx, func(msgCtx context.Context, event kafka.EventMessage) error {
			select {
			case eventChan <- event:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if err != nil {
			errorChan <- err
		}
		close(eventChan)
	}()

	var wg sync.WaitGroup
	for i := 0; i < c.workerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			c.worker(ctx, workerID, eventChan)
		}(i)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		c.logger.Info(ctx, "Consumer context cancelled")
		<-done
		return ctx.Err()
	case <-done:
	}

	select {
	case err := <-errorChan:
		c.logger.Error(ctx, "consumer error", err)
		return err
	default:
	}
	return nil
}

// worker processes events from the event channel
func (c *JobConsumer) worker(ctx context.Context, workerID int, eventChan <-chan kafka.EventMessage) {
	workerCtx := observability.WithFields(ctx, observability.Field{Key: "worker_id", Value: workerID})

	for {
		select {
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			if err := c.processEvent(workerCtx, event); err != nil {
				c.logger.Error(workerCtx, fmt.Sprintf("Worker %d failed to process event", workerID), err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// processEvent routes a single event to its handler. Unknown types are ignored.
func (c *JobConsumer) processEvent(ctx context.Context, event kafka.EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: event.ID},
		observability.Field{Key: "event_type", Value: event.Type},
		observability.Field{Key: "organisation_id", Value: event.OrganisationID},
	)

	var err error
	switch event.Type {
	case kafka.EventEmailFailed:
		err = c.notifications.ProcessEmailFailed(ctx, event)
	case kafka.EventCampaignCompleted:
		err = c.notifications.ProcessCampaignCompleted(ctx, event)
	default:
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to process %s: %w", event.Type, err)
	}
	c.logger.Info(ctx, fmt.Sprintf("Successfully processed event %s", event.Type))
	return nil
}
