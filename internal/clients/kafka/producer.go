package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"crm-server/internal/observability"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Event types published on the email events topic
const (
	EventEmailSent           = "email.sent"
	EventEmailFailed         = "email.failed"
	EventCampaignCompleted   = "campaign.completed"
	EventNotificationCreated = "notification.created"
)

// Producer handles publishing events to Kafka
type Producer struct {
	writer *kafka.Writer
	logger *observability.Logger
}

// ProducerConfig contains configuration for Kafka producer
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// NewProducer creates a new Kafka producer. It returns nil when no brokers are configured;
// publishing on a nil producer is a no-op.
func NewProducer(config ProducerConfig, logger *observability.Logger) *Producer {
	if len(config.Brokers) == 0 {
		return nil
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Topic:        config.Topic,
		Balancer:     &kafka.Hash{},
		Compression:  kafka.Snappy,
		BatchSize:    100,
		BatchTimeout: 50 * time.Millisecond,
	}
	return &Producer{writer: writer, logger: logger}
}

// EventMessage represents an event message structure
type EventMessage struct {
	ID             string                 `json:"id"`
	Type           string                 `json:"type"`
	OrganisationID string                 `json:"organisation_id"`
	UserID         string                 `json:"user_id,omitempty"`
	CampaignID     *string                `json:"campaign_id,omitempty"`
	Data           map[string]interface{} `json:"data"`
	Timestamp      string                 `json:"timestamp"`
}

// NewEvent stamps an event with an id and the current time
func NewEvent(eventType string, organisationID, userID uuid.UUID, data map[string]interface{}) EventMessage {
	return EventMessage{
		ID:             uuid.New().String(),
		Type:           eventType,
		OrganisationID: organisationID.String(),
		UserID:         userID.String(),
		Data:           data,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}
}

// PublishEvent publishes an event to Kafka
func (p *Producer) PublishEvent(ctx context.Context, event EventMessage) error {
	if p == nil {
		return nil
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_type", Value: event.Type},
		observability.Field{Key: "event_id", Value: event.ID},
	)

	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error(ctx, "failed to marshal event", err)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Keyed by organisation so one tenant's events stay ordered.
	msg := kafka.Message{
		Key:   []byte(event.OrganisationID),
		Value: eventBytes,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "organisation_id", Value: []byte(event.OrganisationID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error(ctx, "failed to write message to kafka", err)
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	p.logger.Debug(ctx, fmt.Sprintf("published event %s to kafka", event.Type))
	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
