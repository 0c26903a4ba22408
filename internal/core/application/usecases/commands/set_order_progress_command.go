package commands

import (
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrSetOrderProgressCommandIsNotConstructed = errors.New(
	"SetOrderProgressCommand must be created via NewSetOrderProgressCommand constructor",
)

// SetOrderProgressCommand represents an administrative delivery-progress
// override within [0, 100].
type SetOrderProgressCommand struct { //nolint:recvcheck //using for validation
	orderRef string
	progress int

	guard guard.ConstructorGuard
}

// NewSetOrderProgressCommand creates a command to override delivery progress.
func NewSetOrderProgressCommand(orderRef string, progress int) (SetOrderProgressCommand, error) {
	cmd := SetOrderProgressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderRef(orderRef),
		cmd.setProgress(progress),
	); err != nil {
		return SetOrderProgressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderProgressCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderProgressCommandIsNotConstructed)
}

// OrderRef returns the reference of the order to override.
func (c SetOrderProgressCommand) OrderRef() string {
	return c.orderRef
}

// Progress returns the progress value to force.
func (c SetOrderProgressCommand) Progress() int {
	return c.progress
}

func (c *SetOrderProgressCommand) setOrderRef(orderRef string) error {
	if orderRef == "" {
		return errs.NewValueIsRequiredError("orderRef")
	}

	c.orderRef = orderRef
	return nil
}

func (c *SetOrderProgressCommand) setProgress(progress int) error {
	if progress < 0 || progress > order.MaxProgress {
		return errs.NewValueIsOutOfRangeError("progress", progress, 0, order.MaxProgress)
	}

	c.progress = progress
	return nil
}
