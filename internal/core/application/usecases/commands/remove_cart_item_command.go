package commands

import (
	"errors"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a request to delete every cart line
// matching a (product name, size) key. Removing an absent key is a no-op.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	customer    string
	productName string
	size        string

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove a cart line.
// An empty size targets the default size, mirroring how lines are added.
func NewRemoveCartItemCommand(customer, productName, size string) (RemoveCartItemCommand, error) {
	cmd := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(customer),
		cmd.setProductName(productName),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	cmd.size = size
	if cmd.size == "" {
		cmd.size = cart.DefaultSize
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// Customer returns the owning customer identity.
func (c RemoveCartItemCommand) Customer() string {
	return c.customer
}

// ProductName returns the product name half of the line key.
func (c RemoveCartItemCommand) ProductName() string {
	return c.productName
}

// Size returns the size half of the line key.
func (c RemoveCartItemCommand) Size() string {
	return c.size
}

func (c *RemoveCartItemCommand) setCustomer(customer string) error {
	if customer == "" {
		return errs.NewValueIsRequiredError("customer")
	}

	c.customer = customer
	return nil
}

func (c *RemoveCartItemCommand) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}

	c.productName = productName
	return nil
}
