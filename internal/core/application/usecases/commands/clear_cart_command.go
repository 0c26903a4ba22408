package commands

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand represents a request to empty a customer's cart.
// The cart row survives; only its line list is reset.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	customer string

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to empty the given customer's cart.
func NewClearCartCommand(customer string) (ClearCartCommand, error) {
	if customer == "" {
		return ClearCartCommand{}, errs.NewValueIsRequiredError("customer")
	}

	return ClearCartCommand{
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// Customer returns the owning customer identity.
func (c ClearCartCommand) Customer() string {
	return c.customer
}
