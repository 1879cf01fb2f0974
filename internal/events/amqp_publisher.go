package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// amqpChannel is the subset of *amqp091.Channel the publisher uses
type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// AMQPPublisher publishes events to a durable topic exchange, routed by event
// type. A circuit breaker stops publish attempts while the broker is failing.
type AMQPPublisher struct {
	conn     *amqp091.Connection
	channel  amqpChannel
	exchange string
	breaker  *CircuitBreaker
	logger   *slog.Logger
}

// NewAMQPPublisher dials the broker and declares the exchange
func NewAMQPPublisher(url, exchange string, logger *slog.Logger) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	publisher, err := newAMQPPublisher(channel, exchange, logger)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}
	publisher.conn = conn

	return publisher, nil
}

func newAMQPPublisher(channel amqpChannel, exchange string, logger *slog.Logger) (*AMQPPublisher, error) {
	err := channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPPublisher{
		channel:  channel,
		exchange: exchange,
		breaker:  NewCircuitBreaker(DefaultCircuitBreakerConfig()),
		logger:   logger,
	}, nil
}

// Publish sends one persistent JSON message
func (p *AMQPPublisher) Publish(ctx context.Context, event Event) error {
	if p.breaker.IsOpen() {
		return ErrCircuitBreakerOpen
	}

	body, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,         // exchange
		string(event.Type), // routing key
		false,              // mandatory
		false,              // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    event.ID.String(),
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		before := p.breaker.State()
		p.breaker.RecordFailure()
		if after := p.breaker.State(); after != before {
			p.logger.WarnContext(ctx, "circuit breaker state change",
				slog.String("service", "amqp"),
				slog.String("old_state", before.String()),
				slog.String("new_state", after.String()),
			)
		}
		return fmt.Errorf("publish event: %w", err)
	}
	p.breaker.RecordSuccess()

	p.logger.DebugContext(ctx, "published ledger event",
		slog.String("event_id", event.ID.String()),
		slog.String("type", string(event.Type)),
		slog.String("exchange", p.exchange),
	)

	return nil
}

func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
