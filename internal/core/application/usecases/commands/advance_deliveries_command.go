package commands

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAdvanceDeliveriesCommandIsNotConstructed = errors.New(
	"AdvanceDeliveriesCommand must be created via NewAdvanceDeliveriesCommand constructor",
)

// AdvanceDeliveriesCommand represents one scan of the durable delivery
// schedule. It carries the scan time explicitly so the scheduling logic is
// deterministic under test.
type AdvanceDeliveriesCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewAdvanceDeliveriesCommand creates a command to run all tasks due at the
// given time.
func NewAdvanceDeliveriesCommand(now time.Time) (AdvanceDeliveriesCommand, error) {
	if now.IsZero() {
		return AdvanceDeliveriesCommand{}, errs.NewValueIsRequiredError("now")
	}

	return AdvanceDeliveriesCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveriesCommandIsNotConstructed)
}

// Now returns the scan time tasks are compared against.
func (c AdvanceDeliveriesCommand) Now() time.Time {
	return c.now
}
