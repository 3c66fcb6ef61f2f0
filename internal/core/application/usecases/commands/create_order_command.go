package commands

import (
	"errors"
	"strings"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/ports"
	"fastfood/internal/pkg/errs"
	"fastfood/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a dequeued creation request on the apply side
// of the pipeline. Unlike SubmitOrderCommand, the idempotency key is required
// here: it is the dedupe token stored with the order.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID     kernel.UUID
	deliveryType   order.DeliveryType
	lines          []OrderLine
	idempotencyKey string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to apply a dequeued creation request.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	deliveryType order.DeliveryType,
	lines []OrderLine,
	idempotencyKey string,
) (CreateOrderCommand, error) {
	createCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		createCommand.setCustomerID(customerID),
		createCommand.setDeliveryType(deliveryType),
		createCommand.setLines(lines),
		createCommand.setIdempotencyKey(idempotencyKey),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return createCommand, nil
}

// NewCreateOrderCommandFromRequest parses a wire payload into a validated
// command. Any malformed field (unparseable ids, unknown delivery type,
// empty items, non-positive quantity, blank key) yields an error; the
// consumer treats such payloads as poison messages and drops them.
func NewCreateOrderCommandFromRequest(request ports.OrderCreationRequest) (CreateOrderCommand, error) {
	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("customerId", err)
	}

	deliveryType, err := order.DeliveryTypeFromString(request.DeliveryType)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	lines := make([]OrderLine, 0, len(request.Items))
	for _, item := range request.Items {
		productID, idErr := kernel.UUIDFromString(item.ProductID)
		if idErr != nil {
			return CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("productId", idErr)
		}

		line, lineErr := NewOrderLine(productID, item.Quantity)
		if lineErr != nil {
			return CreateOrderCommand{}, lineErr
		}
		lines = append(lines, line)
	}

	return NewCreateOrderCommand(customerID, deliveryType, lines, request.IdempotencyKey)
}

// Validate ensures the command was created through a constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the customer the request claims to be from.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DeliveryType returns how the customer wants to receive the order.
func (c CreateOrderCommand) DeliveryType() order.DeliveryType {
	return c.deliveryType
}

// Lines returns the requested product lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IdempotencyKey returns the dedupe token carried by the request.
func (c CreateOrderCommand) IdempotencyKey() string {
	return c.idempotencyKey
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setDeliveryType(deliveryType order.DeliveryType) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}
	c.deliveryType = deliveryType
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
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

func (c *CreateOrderCommand) setIdempotencyKey(idempotencyKey string) error {
	if strings.TrimSpace(idempotencyKey) == "" {
		return errs.NewValueIsRequiredError("idempotencyKey")
	}
	c.idempotencyKey = idempotencyKey
	return nil
}
