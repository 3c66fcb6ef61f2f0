package commands

import (
	"context"

	"fastfood/internal/core/ports"
)

// SubmitOrderCommandHandler handles the publish side of the order creation
// pipeline. It serializes a validated request and enqueues it to the durable
// creation queue, returning as soon as the broker confirms the enqueue.
// The real validation and the write happen asynchronously on the apply side.
//
// Enqueue failures propagate synchronously to the caller: an order request
// is never silently dropped.
type SubmitOrderCommandHandler struct {
	publisher ports.OrderRequestPublisher
}

// NewSubmitOrderCommandHandler creates a handler for order submissions.
// Requires an OrderRequestPublisher backed by the durable queue.
func NewSubmitOrderCommandHandler(publisher ports.OrderRequestPublisher) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		publisher: publisher,
	}
}

// Handle enqueues the creation request built from the command. Returns an
// error wrapping ports.ErrBrokerUnavailable when the broker rejects the
// publish.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	lines := cmd.Lines()
	items := make([]ports.OrderCreationRequestItem, len(lines))
	for i, line := range lines {
		items[i] = ports.OrderCreationRequestItem{
			ProductID: line.ProductID().String(),
			Quantity:  line.Quantity(),
		}
	}

	request := ports.OrderCreationRequest{
		CustomerID:     cmd.CustomerID().String(),
		DeliveryType:   cmd.DeliveryType().String(),
		Items:          items,
		IdempotencyKey: cmd.IdempotencyKey(),
	}

	return h.publisher.Publish(ctx, request)
}
