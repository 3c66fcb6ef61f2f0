package ports

import (
	"context"
	"errors"
)

// ErrBrokerUnavailable is the sentinel for publish failures against the
// message broker. The submitter receives it synchronously: an order request
// that cannot be enqueued is never silently dropped.
var ErrBrokerUnavailable = errors.New("message broker unavailable")

// OrderCreationRequest is the wire payload carried by the creation queue.
// The publisher validates only its shape; the consumer re-validates against
// current catalog and customer state at apply time.
type OrderCreationRequest struct {
	CustomerID     string                     `json:"customerId"`
	DeliveryType   string                     `json:"deliveryType"`
	Items          []OrderCreationRequestItem `json:"items"`
	IdempotencyKey string                     `json:"idempotencyKey"`
}

// OrderCreationRequestItem is one requested line: the product and how many.
// Name and price are resolved from the catalog at apply time, not carried
// on the wire.
type OrderCreationRequestItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderRequestPublisher enqueues order creation requests to the durable
// queue consumed by the creation worker.
type OrderRequestPublisher interface {
	// Publish enqueues one creation request. A failure to enqueue surfaces
	// as an error wrapping ErrBrokerUnavailable.
	Publish(ctx context.Context, request OrderCreationRequest) error
}
