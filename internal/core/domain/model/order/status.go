package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the delivery lifecycle state of an order.
//
// The autonomous simulation only moves forward:
//
//	Placed --> Preparing --> OutForDelivery --> Delivered
//
// Cancelled and Delivered are terminal: once reached, no scheduled transition
// may touch the order again. Administrative overrides can write any valid
// status and are not bound by the forward-only rule.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPlaced is the initial status assigned when payment is confirmed.
	StatusPlaced

	// StatusPreparing indicates the kitchen has started on the order.
	StatusPreparing

	// StatusOutForDelivery indicates the order left the store; delivery
	// progress is only meaningful in this status.
	StatusOutForDelivery

	// StatusDelivered is the terminal success status.
	StatusDelivered

	// StatusCancelled is the terminal abort status.
	StatusCancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusPlaced:         "Placed",
		StatusPreparing:      "Preparing",
		StatusOutForDelivery: "OutForDelivery",
		StatusDelivered:      "Delivered",
		StatusCancelled:      "Cancelled",
	}
}

func validStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPlaced:         "Placed",
		StatusPreparing:      "Preparing",
		StatusOutForDelivery: "OutForDelivery",
		StatusDelivered:      "Delivered",
		StatusCancelled:      "Cancelled",
	}
}

// ParseStatus converts the textual status used on the wire and in storage
// back into a Status. Returns an error for unrecognized values.
func ParseStatus(s string) (Status, error) {
	for status, str := range validStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is one of the five valid statuses.
// StatusUnknown and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether the status pre-empts all further autonomous
// transitions. Both Delivered and Cancelled are terminal.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
