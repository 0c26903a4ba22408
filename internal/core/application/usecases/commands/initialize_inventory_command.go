package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrInitializeInventoryCommandIsNotConstructed = errors.New(
	"InitializeInventoryCommand must be created via NewInitializeInventoryCommand constructor",
)

// InitializeInventoryCommand represents a request to ensure the stock ledger
// exists. Carries no parameters; the ledger is a singleton.
type InitializeInventoryCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewInitializeInventoryCommand creates a command to initialize the ledger.
func NewInitializeInventoryCommand() (InitializeInventoryCommand, error) {
	return InitializeInventoryCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c InitializeInventoryCommand) Validate() error {
	return c.guard.Validate(ErrInitializeInventoryCommandIsNotConstructed)
}
