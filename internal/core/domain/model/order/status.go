package order

import (
	"errors"
	"fmt"

	"fastfood/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for illegal status changes. Callers
// use errors.Is against it to distinguish "this transition is not allowed"
// from structural validation failures.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports an attempt to move an order from a status
// that does not permit the requested transition.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the
// attempted From -> To change.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s (only Pending orders may change status)",
		ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of an order. It implements a state
// machine in which every transition out of Pending is one-shot: once an order
// leaves Pending, no further transition is permitted.
//
// State transitions exercised by this subsystem:
//
//	Pending ──┬──> Accepted
//	          ├──> Rejected
//	          └──> Canceled
//
// InPreparation, Ready, and Delivered are part of the kitchen workflow and
// are valid stored values, but no operation here transitions into them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is created by the
	// creation pipeline. Pending orders await a kitchen decision.
	Pending

	// Accepted indicates kitchen staff accepted the order.
	Accepted

	// Rejected indicates kitchen staff rejected the order.
	Rejected

	// Canceled indicates the customer canceled the order. A canceled
	// order always carries a cancellation reason.
	Canceled

	// InPreparation indicates the kitchen started preparing the order.
	InPreparation

	// Ready indicates the order is prepared and awaiting handover.
	Ready

	// Delivered indicates the order was handed over to the customer.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		Pending:       "Pending",
		Accepted:      "Accepted",
		Rejected:      "Rejected",
		Canceled:      "Canceled",
		InPreparation: "InPreparation",
		Ready:         "Ready",
		Delivered:     "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:       "Pending",
		Accepted:      "Accepted",
		Rejected:      "Rejected",
		Canceled:      "Canceled",
		InPreparation: "InPreparation",
		Ready:         "Ready",
		Delivered:     "Delivered",
	}
}

// Validate checks if the Status value is valid. Unknown (0) and any other
// out-of-range values are invalid. Used to vet Status values coming from
// external sources such as the database.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the human-readable name of the status. It implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Accept transitions the status to Accepted. Only Pending orders may be
// accepted; any other status yields an InvalidTransitionError.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, NewInvalidTransitionError(s, Accepted)
	}

	return Accepted, nil
}

// Reject transitions the status to Rejected. Only Pending orders may be
// rejected; any other status yields an InvalidTransitionError.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, NewInvalidTransitionError(s, Rejected)
	}

	return Rejected, nil
}

// Cancel transitions the status to Canceled. Only Pending orders may be
// canceled; any other status yields an InvalidTransitionError.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, NewInvalidTransitionError(s, Canceled)
	}

	return Canceled, nil
}
