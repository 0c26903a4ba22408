package commands

import (
	"errors"

	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrRenameIngredientCommandIsNotConstructed = errors.New(
	"RenameIngredientCommand must be created via NewRenameIngredientCommand constructor",
)

// RenameIngredientCommand represents a request to rename the first stock lot
// matching oldName within a category, keeping its quantity and alert state.
type RenameIngredientCommand struct { //nolint:recvcheck //using for validation
	category inventory.Category
	oldName  string
	newName  string

	guard guard.ConstructorGuard
}

// NewRenameIngredientCommand creates a command to rename an ingredient lot.
func NewRenameIngredientCommand(
	category inventory.Category, oldName, newName string,
) (RenameIngredientCommand, error) {
	cmd := RenameIngredientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCategory(category),
		cmd.setOldName(oldName),
		cmd.setNewName(newName),
	); err != nil {
		return RenameIngredientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RenameIngredientCommand) Validate() error {
	return c.guard.Validate(ErrRenameIngredientCommandIsNotConstructed)
}

// Category returns the ledger category holding the lot.
func (c RenameIngredientCommand) Category() inventory.Category {
	return c.category
}

// OldName returns the current name of the lot.
func (c RenameIngredientCommand) OldName() string {
	return c.oldName
}

// NewName returns the name to rename the lot to.
func (c RenameIngredientCommand) NewName() string {
	return c.newName
}

func (c *RenameIngredientCommand) setCategory(category inventory.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func (c *RenameIngredientCommand) setOldName(oldName string) error {
	if oldName == "" {
		return errs.NewValueIsRequiredError("oldName")
	}

	c.oldName = oldName
	return nil
}

func (c *RenameIngredientCommand) setNewName(newName string) error {
	if newName == "" {
		return errs.NewValueIsRequiredError("newName")
	}

	c.newName = newName
	return nil
}
