package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/testhub/config"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// Publisher announces committed changes. Callers treat failures as
// non-fatal: the store is the source of truth.
type Publisher interface {
	PublishResultSubmitted(ctx context.Context, ev ResultSubmittedEvent) error
	PublishTestDeleted(ctx context.Context, testID string) error
	Close() error
}

type rabbitPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewPublisher connects to RabbitMQ and declares the topic exchange. With an
// empty AMQP_URL it returns a publisher that drops every event.
func NewPublisher(cfg *config.Config) (Publisher, error) {
	if cfg.AMQP.URL == "" {
		log.Warn().Msg("AMQP_URL is not set, event publishing is disabled")
		return NoopPublisher{}, nil
	}

	conn, err := amqp.Dial(cfg.AMQP.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	err = channel.ExchangeDeclare(
		cfg.AMQP.Exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.AMQP.Exchange, err)
	}

	log.Info().Str("exchange", cfg.AMQP.Exchange).Msg("Event publisher connected to RabbitMQ")
	return &rabbitPublisher{conn: conn, channel: channel, exchange: cfg.AMQP.Exchange}, nil
}

func (p *rabbitPublisher) PublishResultSubmitted(ctx context.Context, ev ResultSubmittedEvent) error {
	return p.publish(ctx, ResultSubmitted, ev)
}

func (p *rabbitPublisher) PublishTestDeleted(ctx context.Context, testID string) error {
	return p.publish(ctx, TestDeleted, TestDeletedEvent{TestID: testID, DeletedAt: time.Now()})
}

func (p *rabbitPublisher) publish(ctx context.Context, eventType EventType, payload interface{}) error {
	msg := envelope{
		EventID:   uuid.NewString(),
		EventType: eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	}
	body, err := msg.ToJSON()
	if err != nil {
		return err
	}

	// amqp channels are not safe for concurrent publishing.
	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.channel.PublishWithContext(ctx, p.exchange, string(eventType), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.EventID,
		Timestamp:    msg.Timestamp,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", eventType, err)
	}
	log.Debug().Str("eventType", string(eventType)).Str("eventID", msg.EventID).Msg("Published event")
	return nil
}

func (p *rabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.channel.Close(); err != nil {
		log.Warn().Err(err).Msg("Closing RabbitMQ channel")
	}
	return p.conn.Close()
}

type NoopPublisher struct{}

func (NoopPublisher) PublishResultSubmitted(context.Context, ResultSubmittedEvent) error { return nil }
func (NoopPublisher) PublishTestDeleted(context.Context, string) error                  { return nil }
func (NoopPublisher) Close() error                                                      { return nil }
