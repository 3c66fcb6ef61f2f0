package commands

import (
	"context"
	"errors"
	"fmt"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/ports"
	"fastfood/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the apply side of the creation pipeline.
// It re-validates the dequeued request against current customer and catalog
// state, builds the Order aggregate with price/name snapshots taken now (not
// at enqueue time), and persists it inside a transaction.
//
// Error classes matter to the consumer driving this handler:
//   - errs.ErrObjectNotFound / errs.ErrValueIsInvalid: terminal for this
//     message; retrying cannot fix a missing customer or inactive product
//   - everything else: infrastructure, the message should be redelivered
//
// A redelivered message whose order was already persisted resolves to
// success: the store rejects the duplicate idempotency key and the handler
// swallows that rejection.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	customers  ports.CustomerLookup
	products   ports.ProductCatalog
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires the unit of work factory for transactional persistence and the
// read-only customer/product lookups.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	customers ports.CustomerLookup,
	products ports.ProductCatalog,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		customers:  customers,
		products:   products,
	}
}

// Handle processes the creation command: customer role check, per-line
// product resolution, aggregate construction, persistence. No partial
// orders: the first missing or inactive product aborts the whole order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	customer, err := h.customers.GetCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if customer.Role != ports.RoleCustomer {
		return errs.NewValueIsInvalidErrorWithCause(
			"customer",
			fmt.Errorf("role %s cannot place orders", customer.Role),
		)
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), cmd.CustomerID(), cmd.DeliveryType(), cmd.IdempotencyKey())
	if err != nil {
		return err
	}

	for _, line := range cmd.Lines() {
		product, productErr := h.products.GetProduct(ctx, line.ProductID())
		if productErr != nil {
			return productErr
		}

		if !product.IsActive {
			return errs.NewValueIsInvalidErrorWithCause(
				"product",
				fmt.Errorf("product %s is not available", product.Name),
			)
		}

		if addErr := newOrder.AddItem(product.ID, product.Name, product.Price, line.Quantity()); addErr != nil {
			return addErr
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			// Redelivery of an already-applied message: exactly one order
			// exists for this idempotency key, so the apply succeeded.
			return nil
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
