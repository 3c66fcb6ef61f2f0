package commands

import (
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"
	"fastfood/internal/pkg/guard"
)

var ErrOrderLineIsNotConstructed = errors.New(
	"OrderLine must be created via NewOrderLine constructor",
)

// OrderLine is one requested product line inside a creation command:
// which product and how many. Name and price are not part of the request;
// they are resolved from the catalog at apply time.
type OrderLine struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewOrderLine creates a validated order line. The product ID must be a
// constructed UUID and the quantity must be positive.
func NewOrderLine(productID kernel.UUID, quantity int) (OrderLine, error) {
	line := OrderLine{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		line.setProductID(productID),
		line.setQuantity(quantity),
	); err != nil {
		return OrderLine{}, err
	}

	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l OrderLine) Validate() error {
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

// ProductID returns the requested product.
func (l OrderLine) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the requested quantity.
func (l OrderLine) Quantity() int {
	return l.quantity
}

func (l *OrderLine) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *OrderLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	l.quantity = quantity
	return nil
}
