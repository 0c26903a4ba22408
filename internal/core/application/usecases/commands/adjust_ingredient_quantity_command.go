package commands

import (
	"errors"

	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAdjustIngredientQuantityCommandIsNotConstructed = errors.New(
	"AdjustIngredientQuantityCommand must be created via NewAdjustIngredientQuantityCommand constructor",
)

// AdjustIngredientQuantityCommand represents a signed stock movement on the
// first lot matching the name within a category. Negative deltas are floor-
// clamped at zero by the ledger.
type AdjustIngredientQuantityCommand struct { //nolint:recvcheck //using for validation
	category inventory.Category
	name     string
	delta    int

	guard guard.ConstructorGuard
}

// NewAdjustIngredientQuantityCommand creates a command to adjust a lot's quantity.
func NewAdjustIngredientQuantityCommand(
	category inventory.Category, name string, delta int,
) (AdjustIngredientQuantityCommand, error) {
	cmd := AdjustIngredientQuantityCommand{
		delta: delta,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCategory(category),
		cmd.setName(name),
	); err != nil {
		return AdjustIngredientQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustIngredientQuantityCommand) Validate() error {
	return c.guard.Validate(ErrAdjustIngredientQuantityCommandIsNotConstructed)
}

// Category returns the ledger category holding the lot.
func (c AdjustIngredientQuantityCommand) Category() inventory.Category {
	return c.category
}

// Name returns the ingredient name.
func (c AdjustIngredientQuantityCommand) Name() string {
	return c.name
}

// Delta returns the signed quantity movement.
func (c AdjustIngredientQuantityCommand) Delta() int {
	return c.delta
}

func (c *AdjustIngredientQuantityCommand) setCategory(category inventory.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func (c *AdjustIngredientQuantityCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
