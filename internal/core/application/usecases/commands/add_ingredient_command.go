package commands

import (
	"errors"

	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAddIngredientCommandIsNotConstructed = errors.New(
	"AddIngredientCommand must be created via NewAddIngredientCommand constructor",
)

// AddIngredientCommand represents a request to add a new stock lot to one of
// the ledger's categories. Names are not deduplicated: adding an existing
// name creates a second lot.
type AddIngredientCommand struct { //nolint:recvcheck //using for validation
	category inventory.Category
	name     string

	guard guard.ConstructorGuard
}

// NewAddIngredientCommand creates a command to add an ingredient lot.
func NewAddIngredientCommand(category inventory.Category, name string) (AddIngredientCommand, error) {
	cmd := AddIngredientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCategory(category),
		cmd.setName(name),
	); err != nil {
		return AddIngredientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddIngredientCommand) Validate() error {
	return c.guard.Validate(ErrAddIngredientCommandIsNotConstructed)
}

// Category returns the ledger category to add into.
func (c AddIngredientCommand) Category() inventory.Category {
	return c.category
}

// Name returns the ingredient name.
func (c AddIngredientCommand) Name() string {
	return c.name
}

func (c *AddIngredientCommand) setCategory(category inventory.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func (c *AddIngredientCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
