package order

import (
	"errors"
	"fmt"
	"strings"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// OrderItem is a line within an order. Product name and unit price are
// snapshots taken from the catalog at order-build time and stay immutable
// afterwards, even if the catalog changes. Items are keyed by product:
// the aggregate merges repeated products into one line.
type OrderItem struct {
	productID   kernel.UUID
	productName string
	unitPrice   decimal.Decimal
	quantity    int
}

// NewOrderItem creates an order line with validation. The product ID must be
// a constructed UUID, the name must be non-blank, the unit price must be
// greater than zero, and the quantity must be positive.
func NewOrderItem(productID kernel.UUID, productName string, unitPrice decimal.Decimal, quantity int) (OrderItem, error) {
	item := OrderItem{}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return OrderItem{}, err
	}

	return item, nil
}

// ProductID returns the catalog product this line refers to.
func (i OrderItem) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name snapshot taken at order time.
func (i OrderItem) ProductName() string {
	return i.productName
}

// UnitPrice returns the unit price snapshot taken at order time.
func (i OrderItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// Total returns unitPrice multiplied by quantity.
func (i OrderItem) Total() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// increaseQuantity adds to the line's quantity, re-validating the result.
// Only the aggregate calls this, when the same product is added again.
func (i *OrderItem) increaseQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	i.quantity += quantity
	return nil
}

func (i *OrderItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *OrderItem) setProductName(productName string) error {
	if strings.TrimSpace(productName) == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

func (i *OrderItem) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.Sign() <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%s is not greater than 0", unitPrice),
		)
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}
