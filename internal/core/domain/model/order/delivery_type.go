package order

import (
	"fmt"

	"fastfood/internal/pkg/errs"
)

// DeliveryType represents how the customer receives the order.
// It is a value object validated on construction; unknown wire values are
// rejected before an order request is accepted.
type DeliveryType int

const (
	// DeliveryTypeUnknown represents an invalid or undefined delivery type.
	// This value (0) helps catch uninitialized DeliveryType values.
	DeliveryTypeUnknown DeliveryType = iota

	// Counter means the customer picks the order up at the counter.
	Counter

	// DriveThru means the order is handed over at the drive-through window.
	DriveThru

	// Delivery means the order is delivered to the customer.
	Delivery
)

func getDeliveryTypeStrings() map[DeliveryType]string {
	return map[DeliveryType]string{
		DeliveryTypeUnknown: "Unknown",
		Counter:             "Counter",
		DriveThru:           "DriveThru",
		Delivery:            "Delivery",
	}
}

func getValidDeliveryTypeStrings() map[DeliveryType]string {
	//nolint:exhaustive // DeliveryTypeUnknown is intentionally excluded as it's invalid
	return map[DeliveryType]string{
		Counter:   "Counter",
		DriveThru: "DriveThru",
		Delivery:  "Delivery",
	}
}

// DeliveryTypeFromString parses a delivery type from its wire representation.
// Returns an error for any string that is not exactly "Counter", "DriveThru",
// or "Delivery".
func DeliveryTypeFromString(s string) (DeliveryType, error) {
	for deliveryType, str := range getValidDeliveryTypeStrings() {
		if str == s {
			return deliveryType, nil
		}
	}

	return DeliveryTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"deliveryType",
		fmt.Errorf("%q is not a valid delivery type", s),
	)
}

// Validate checks if the DeliveryType value is valid.
func (d DeliveryType) Validate() error {
	if _, ok := getValidDeliveryTypeStrings()[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryType",
			fmt.Errorf("%d is not a valid delivery type", int(d)),
		)
	}
	return nil
}

// String returns the human-readable name of the delivery type.
func (d DeliveryType) String() string {
	if str, ok := getDeliveryTypeStrings()[d]; ok {
		return str
	}
	return "Unknown"
}
