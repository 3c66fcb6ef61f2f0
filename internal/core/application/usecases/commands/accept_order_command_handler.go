package commands

import (
	"context"
)

// AcceptOrderCommandHandler handles the kitchen's acceptance of a pending
// order. Follows fetch-mutate-replace: load the order, run the aggregate
// transition, then replace conditionally on the status that was read. If a
// concurrent lifecycle call won the race, the conditional replace fails with
// a version conflict instead of silently overwriting the winner.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle accepts the order. Propagates errs.ErrObjectNotFound when the order
// is absent, order.ErrInvalidTransition when it is no longer Pending, and
// errs.ErrVersionConflict when a concurrent transition was persisted first.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	readStatus := aggregate.Status()
	if err = aggregate.Accept(); err != nil {
		return err
	}

	if err = orderRepo.UpdateIfStatus(ctx, aggregate, readStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
