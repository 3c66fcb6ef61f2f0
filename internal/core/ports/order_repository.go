package ports

import (
	"context"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The store is the single source of truth for orders; all mutation goes
// through a conditional replace keyed by the status the caller last read,
// so concurrent lifecycle calls cannot silently overwrite each other.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Fails with errs.ErrObjectAlreadyExists when an order with the same
	// id or idempotency key is already stored, which is how redelivered
	// creation messages are collapsed into a single order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Fails with errs.ErrObjectNotFound when the order is absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPending retrieves all orders awaiting a kitchen decision.
	GetAllPending(ctx context.Context) ([]*order.Order, error)

	// UpdateIfStatus replaces the stored order only if its stored status
	// still equals expected. Fails with errs.ErrVersionConflict when a
	// concurrent writer got there first, and with errs.ErrObjectNotFound
	// when the order no longer exists.
	UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error
}
