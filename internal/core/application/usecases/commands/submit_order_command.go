package commands

import (
	"errors"
	"strings"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/pkg/errs"
	"fastfood/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a request to place a new order. It validates
// only the request shape: customer id present, delivery type valid, items
// non-empty with positive quantities. Catalog and customer lookups happen at
// apply time, not here, so the request cannot go stale against catalog
// changes between submission and processing.
//
// When the caller does not supply an idempotency key, the constructor assigns
// a fresh one, so every persisted order carries a dedupe token.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	customerID     kernel.UUID
	deliveryType   order.DeliveryType
	lines          []OrderLine
	idempotencyKey string

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit a new order request.
// Validates that the customer id is constructed, the delivery type is valid,
// and at least one validated line is present. A blank idempotencyKey is
// replaced with a freshly generated one.
func NewSubmitOrderCommand(
	customerID kernel.UUID,
	deliveryType order.DeliveryType,
	lines []OrderLine,
	idempotencyKey string,
) (SubmitOrderCommand, error) {
	submitCommand := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		submitCommand.setCustomerID(customerID),
		submitCommand.setDeliveryType(deliveryType),
		submitCommand.setLines(lines),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	if strings.TrimSpace(idempotencyKey) == "" {
		idempotencyKey = kernel.NewUUID().String()
	}
	submitCommand.idempotencyKey = idempotencyKey

	return submitCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOrderCommandIsNotConstructed if validation fails.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// CustomerID returns the customer placing the order.
func (c SubmitOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DeliveryType returns how the customer wants to receive the order.
func (c SubmitOrderCommand) DeliveryType() order.DeliveryType {
	return c.deliveryType
}

// Lines returns the requested product lines.
func (c SubmitOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IdempotencyKey returns the dedupe token attached to this request, either
// client-supplied or assigned at construction. Callers surface it to the
// submitter so the order can later be correlated.
func (c SubmitOrderCommand) IdempotencyKey() string {
	return c.idempotencyKey
}

func (c *SubmitOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *SubmitOrderCommand) setDeliveryType(deliveryType order.DeliveryType) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}
	c.deliveryType = deliveryType
	return nil
}

func (c *SubmitOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
