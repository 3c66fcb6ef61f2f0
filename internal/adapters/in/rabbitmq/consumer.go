// Package rabbitmq provides the inbound RabbitMQ adapter: the worker that
// drains the order creation queue and applies each request through the
// create handler.
//
// Delivery is at-least-once: the consumer acks only after the handler
// returns, so a crash mid-apply redelivers the message and the idempotency
// key collapses the duplicate.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/ports"
	"fastfood/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// orderCreator applies one dequeued creation request.
type orderCreator interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
}

// amqpChannel is the slice of *amqp.Channel the consumer needs.
type amqpChannel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

// Consumer drains the order creation queue one message at a time.
//
// Ack policy:
//   - handler success: ack
//   - domain rejection (invalid request, missing customer or product,
//     duplicate): ack and log, redelivery cannot change the outcome
//   - anything else (database down, timeout): nack with requeue
type Consumer struct {
	ch      amqpChannel
	queue   string
	handler orderCreator
	timeout time.Duration
	logger  *slog.Logger
}

// NewConsumer creates a consumer for the given queue. The timeout bounds the
// handling of a single message.
func NewConsumer(
	ch amqpChannel,
	queue string,
	handler orderCreator,
	timeout time.Duration,
	logger *slog.Logger,
) *Consumer {
	return &Consumer{
		ch:      ch,
		queue:   queue,
		handler: handler,
		timeout: timeout,
		logger:  logger,
	}
}

// Run declares the queue and consumes until the context is canceled or the
// delivery channel closes. Prefetch is one: no message is taken off the
// queue while another is in flight.
func (c *Consumer) Run(ctx context.Context) error {
	_, err := c.ch.QueueDeclare(
		c.queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("could not declare queue %s: %w", c.queue, err)
	}

	if err = c.ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("could not set prefetch: %w", err)
	}

	msgs, err := c.ch.Consume(
		c.queue,
		"",    // consumer tag
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("could not start consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			c.process(ctx, d)
		}
	}
}

func (c *Consumer) process(ctx context.Context, d amqp.Delivery) {
	var request ports.OrderCreationRequest
	if err := json.Unmarshal(d.Body, &request); err != nil {
		c.logger.Warn("dropping malformed creation request", "error", err)
		_ = d.Ack(false)
		return
	}

	cmd, err := commands.NewCreateOrderCommandFromRequest(request)
	if err != nil {
		c.logger.Warn("dropping invalid creation request",
			"idempotencyKey", request.IdempotencyKey, "error", err)
		_ = d.Ack(false)
		return
	}

	handleCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err = c.handler.Handle(handleCtx, cmd)
	switch {
	case err == nil:
		_ = d.Ack(false)
	case isTerminal(err):
		c.logger.Warn("creation request rejected",
			"idempotencyKey", request.IdempotencyKey, "error", err)
		_ = d.Ack(false)
	default:
		c.logger.Error("creation request failed, requeueing",
			"idempotencyKey", request.IdempotencyKey, "error", err)
		_ = d.Nack(false, true)
	}
}

// isTerminal reports whether retrying the message could ever succeed. A
// request rejected by validation or by current catalog state stays rejected
// on redelivery.
func isTerminal(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrObjectNotFound)
}
