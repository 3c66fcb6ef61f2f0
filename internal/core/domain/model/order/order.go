package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a customer order. It is the aggregate root that manages
// order state from creation through the kitchen's accept/reject decision or
// the customer's cancellation.
//
// Order follows these invariants:
//   - Must reference a customer and carry an idempotency key
//   - Items are unique per product; repeated products merge into one line
//   - The cancellation reason is set if and only if the status is Canceled
//   - Once the status leaves Pending, no further mutation is permitted
//   - The total is always derived from the live items
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through the named operations, which validate before changing state.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer who placed the order
	customerID kernel.UUID

	// creationDate is set once at construction, in UTC
	creationDate time.Time

	// status represents the current state in the order lifecycle
	status Status

	// deliveryType is how the customer receives the order
	deliveryType DeliveryType

	// cancellationReason is present iff status is Canceled
	cancellationReason string

	// items holds the order lines, keyed by product
	items []OrderItem

	// idempotencyKey is the client-supplied dedupe token for the creation
	// pipeline; the store rejects a second order with the same key
	idempotencyKey string

	// version is the stored revision used by conditional replace
	version int

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with an empty item list and
// the creation date set to the current UTC time. This is the only way to
// create a fresh order, ensuring all business invariants hold from the start.
//
// Fails when the order or customer ID is not constructed, the delivery type
// is invalid, or the idempotency key is blank.
func NewOrder(id kernel.UUID, customerID kernel.UUID, deliveryType DeliveryType, idempotencyKey string) (*Order, error) {
	order := &Order{
		status:        Pending,
		creationDate:  time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setDeliveryType(deliveryType),
		order.setIdempotencyKey(idempotencyKey),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state. Used only by the
// persistence layer when rehydrating aggregates; all stored values are
// re-validated, including the rule that a cancellation reason is present
// exactly when the status is Canceled.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	creationDate time.Time,
	status Status,
	deliveryType DeliveryType,
	cancellationReason string,
	items []OrderItem,
	idempotencyKey string,
	version int,
) (*Order, error) {
	order := &Order{
		creationDate:  creationDate,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setStatus(status),
		order.setDeliveryType(deliveryType),
		order.setIdempotencyKey(idempotencyKey),
	); err != nil {
		return nil, err
	}

	if (status == Canceled) != (strings.TrimSpace(cancellationReason) != "") {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"cancellationReason",
			fmt.Errorf("reason must be set exactly when status is Canceled, status is %s", status),
		)
	}
	order.cancellationReason = cancellationReason

	order.items = make([]OrderItem, len(items))
	copy(order.items, items)

	order.version = version
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CreationDate returns the UTC timestamp the order was constructed with.
func (o *Order) CreationDate() time.Time {
	return o.creationDate
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryType returns how the customer receives the order.
func (o *Order) DeliveryType() DeliveryType {
	return o.deliveryType
}

// CancellationReason returns the reason the customer gave when canceling.
// Empty unless the status is Canceled.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// Items returns a copy of the order lines. Mutating the returned slice does
// not affect the aggregate.
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// IdempotencyKey returns the dedupe token the order was created with.
func (o *Order) IdempotencyKey() string {
	return o.idempotencyKey
}

// Version returns the stored revision used by conditional replace.
func (o *Order) Version() int {
	return o.version
}

// Total returns the sum of the item totals. It is always computed from the
// live items and never stored independently.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Total())
	}
	return total
}

// AddItem adds a product line to the order, snapshotting the given name and
// unit price. If the product is already present, the existing line's quantity
// increases instead of a second line being created.
//
// Items can only be added while the order is Pending; the creation pipeline
// calls AddItem during construction, before the order is persisted.
func (o *Order) AddItem(productID kernel.UUID, productName string, unitPrice decimal.Decimal, quantity int) error {
	if o.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"items",
			fmt.Errorf("items cannot be modified once order is %s", o.status),
		)
	}

	for i := range o.items {
		if o.items[i].ProductID().IsEqual(productID) {
			return o.items[i].increaseQuantity(quantity)
		}
	}

	item, err := NewOrderItem(productID, productName, unitPrice, quantity)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// Accept marks the order as accepted by kitchen staff. Only Pending orders
// may be accepted; the change is in-memory, persistence is the caller's
// responsibility.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Reject marks the order as rejected by kitchen staff. Only Pending orders
// may be rejected.
func (o *Order) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel marks the order as canceled by the customer, recording the reason.
// Only Pending orders may be canceled, and the reason must be non-blank.
func (o *Order) Cancel(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("cancellation reason")
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancellationReason = reason
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDeliveryType(deliveryType DeliveryType) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}
	o.deliveryType = deliveryType
	return nil
}

func (o *Order) setIdempotencyKey(idempotencyKey string) error {
	if strings.TrimSpace(idempotencyKey) == "" {
		return errs.NewValueIsRequiredError("idempotencyKey")
	}
	o.idempotencyKey = idempotencyKey
	return nil
}
