package commands

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand represents a request to add a product line to a
// customer's cart. Lines are keyed by (product name, size): adding a key that
// is already in the cart increases the existing line's quantity.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	customer    string
	productName string
	unitPrice   float64
	quantity    int
	size        string
	image       string

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add a cart line.
// The customer identity and product name are required and the unit price must
// be non-negative. Quantity and size defaults are applied by the cart itself.
func NewAddCartItemCommand(
	customer string,
	productName string,
	unitPrice float64,
	quantity int,
	size string,
	image string,
) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		quantity: quantity,
		size:     size,
		image:    image,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(customer),
		cmd.setProductName(productName),
		cmd.setUnitPrice(unitPrice),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// Customer returns the owning customer identity.
func (c AddCartItemCommand) Customer() string {
	return c.customer
}

// ProductName returns the product name half of the line key.
func (c AddCartItemCommand) ProductName() string {
	return c.productName
}

// UnitPrice returns the price per unit.
func (c AddCartItemCommand) UnitPrice() float64 {
	return c.unitPrice
}

// Quantity returns the requested quantity.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

// Size returns the size half of the line key.
func (c AddCartItemCommand) Size() string {
	return c.size
}

// Image returns the product image reference.
func (c AddCartItemCommand) Image() string {
	return c.image
}

func (c *AddCartItemCommand) setCustomer(customer string) error {
	if customer == "" {
		return errs.NewValueIsRequiredError("customer")
	}

	c.customer = customer
	return nil
}

func (c *AddCartItemCommand) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}

	c.productName = productName
	return nil
}

func (c *AddCartItemCommand) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidError("unitPrice")
	}

	c.unitPrice = unitPrice
	return nil
}
