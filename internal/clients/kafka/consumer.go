package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"crm-server/internal/observability"

	"github.com/segmentio/kafka-go"
)

// Consumer handles consuming events from Kafka
type Consumer struct {
	reader *kafka.Reader
	logger *observability.Logger
}

// ConsumerConfig contains configuration for Kafka consumer
type ConsumerConfig struct {
	Brokers  []string
	Topic    string
	GroupID  string
	MinBytes int
	MaxBytes int
}

// NewConsumer creates a new Kafka consumer
func NewConsumer(config ConsumerConfig, logger *observability.Logger) *Consumer {
	if config.MinBytes == 0 {
		config.MinBytes = 1
	}
	if config.MaxBytes == 0 {
		config.MaxBytes = 10e6
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     config.Brokers,
		Topic:       config.Topic,
		GroupID:     config.GroupID,
		MinBytes:    config.MinBytes,
		MaxBytes:    config.MaxBytes,
		StartOffset: kafka.FirstOffset,
		// Offsets are committed explicitly after the handler succeeds.
		CommitInterval: 0,
	})

	return &Consumer{reader: reader, logger: logger}
}

// ConsumeEvents reads events until ctx is cancelled. A message is committed only
// after handler succeeds; undecodable messages are committed and skipped.
func (c *Consumer) ConsumeEvents(ctx context.Context, handler func(context.Context, EventMessage) error) error {
	c.logger.Info(ctx, "starting kafka consumer")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				c.logger.Info(ctx, "stopping kafka consumer")
				return ctx.Err()
			}
			c.logger.Error(ctx, "failed to fetch message from kafka", err)
			continue
		}

		var event EventMessage
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.logger.Error(ctx, "failed to unmarshal event", err)
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error(ctx, "failed to commit message", err)
			}
			continue
		}

		msgCtx := observability.WithFields(ctx,
			observability.Field{Key: "event_type", Value: event.Type},
			observability.Field{Key: "event_id", Value: event.ID},
			observability.Field{Key: "partition", Value: msg.Partition},
			observability.Field{Key: "offset", Value: msg.Offset},
		)

		if err := handler(msgCtx, event); err != nil {
			c.logger.Error(msgCtx, "failed to process event", err)
			continue
		}

		if err := c.reader.CommitMessages(msgCtx, msg); err != nil {
			c.logger.Error(msgCtx, "failed to commit message", err)
		}
		c.logger.Debug(msgCtx, fmt.Sprintf("processed event %s", event.Type))
	}
}

// Close closes the Kafka consumer
func (c *Consumer) Close() error {
	return c.reader.Close()
}
