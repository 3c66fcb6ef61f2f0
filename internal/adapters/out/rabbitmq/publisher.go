package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fastfood/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpChannel is the slice of *amqp.Channel the publisher needs.
type amqpChannel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Publisher sends order creation requests to a durable work queue on the
// default exchange. Messages are persistent; once Publish returns nil the
// request survives a broker restart.
type Publisher struct {
	ch    amqpChannel
	queue string
}

// NewPublisher declares the queue and returns a publisher bound to it.
// Declaration is idempotent; publisher and consumer both declare so either
// can start first.
func NewPublisher(ch amqpChannel, queue string) (*Publisher, error) {
	_, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("could not declare queue %s: %w", queue, err)
	}

	return &Publisher{ch: ch, queue: queue}, nil
}

// Publish enqueues one creation request. Failures wrap
// ports.ErrBrokerUnavailable so the intake layer can answer 503.
func (p *Publisher) Publish(ctx context.Context, request ports.OrderCreationRequest) error {
	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("could not marshal order creation request: %w", err)
	}

	err = p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", p.queue, errors.Join(ports.ErrBrokerUnavailable, err))
	}

	return nil
}
