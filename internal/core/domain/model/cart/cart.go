// Package cart provides the Cart aggregate: a customer's mutable list of
// line items with merge-by-key semantics.
//
// A line item is keyed by (product name, size); adding an item whose key is
// already present increases the existing line's quantity instead of appending
// a second line. The absence of a cart is a valid zero state: callers treat a
// missing cart as an empty one rather than an error.
package cart

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// DefaultSize is used when an item is added without an explicit size.
const DefaultSize = "medium"

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not
	// created through NewCart or RestoreCart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")

	// ErrItemIsNotConstructed is returned when an Item was not created via NewItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is a single cart line: a product at a size with an aggregated quantity.
type Item struct { //nolint:recvcheck //using for validation
	productName string
	unitPrice   float64
	quantity    int
	size        string
	image       string

	guard guard.ConstructorGuard
}

// NewItem creates a validated cart line. The product name is required and the
// unit price must be non-negative. A quantity below 1 defaults to 1 and an
// empty size defaults to DefaultSize.
func NewItem(productName string, unitPrice float64, quantity int, size string, image string) (Item, error) {
	if productName == "" {
		return Item{}, errs.NewValueIsRequiredError("productName")
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidError("unitPrice")
	}

	if quantity < 1 {
		quantity = 1
	}
	if size == "" {
		size = DefaultSize
	}

	return Item{
		productName: productName,
		unitPrice:   unitPrice,
		quantity:    quantity,
		size:        size,
		image:       image,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductName returns the product name half of the line key.
func (i Item) ProductName() string { return i.productName }

// UnitPrice returns the price per unit.
func (i Item) UnitPrice() float64 { return i.unitPrice }

// Quantity returns the aggregated quantity for this line.
func (i Item) Quantity() int { return i.quantity }

// Size returns the size half of the line key.
func (i Item) Size() string { return i.size }

// Image returns the product image reference.
func (i Item) Image() string { return i.image }

// matchesKey reports whether the line has the given (product name, size) key.
func (i Item) matchesKey(productName, size string) bool {
	return i.productName == productName && i.size == size
}

// Cart is the aggregate root for a customer's pending line items.
type Cart struct { //nolint:recvcheck //using for validation
	customer  string
	items     []Item
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewCart creates an empty cart owned by the given customer identity.
func NewCart(customer string) (*Cart, error) {
	if customer == "" {
		return nil, errs.NewValueIsRequiredError("customer")
	}

	return &Cart{
		customer: customer,
		items:    []Item{},
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreCart reconstructs a cart from persistence.
func RestoreCart(customer string, items []Item, updatedAt time.Time) (*Cart, error) {
	c, err := NewCart(customer)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
	}

	c.items = items
	c.updatedAt = updatedAt
	return c, nil
}

// Validate ensures the Cart was created through one of its constructors.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// Customer returns the owning customer identity.
func (c *Cart) Customer() string { return c.customer }

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// UpdatedAt returns the timestamp of the last mutation.
func (c *Cart) UpdatedAt() time.Time { return c.updatedAt }

// AddItem merges the item into the cart. When a line with the same
// (product name, size) key already exists its quantity is increased by the
// item's quantity; otherwise the item is appended as a new line.
func (c *Cart) AddItem(item Item, now time.Time) error {
	if err := item.Validate(); err != nil {
		return err
	}

	c.updatedAt = now
	for idx := range c.items {
		if c.items[idx].matchesKey(item.productName, item.size) {
			c.items[idx].quantity += item.quantity
			return nil
		}
	}

	c.items = append(c.items, item)
	return nil
}

// RemoveItem deletes every line matching the (product name, size) key.
// Removing an absent key is a no-op, not an error.
func (c *Cart) RemoveItem(productName, size string, now time.Time) {
	c.updatedAt = now

	kept := c.items[:0]
	for _, item := range c.items {
		if !item.matchesKey(productName, size) {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// Clear empties the line list. The cart itself stays alive.
func (c *Cart) Clear(now time.Time) {
	c.updatedAt = now
	c.items = []Item{}
}
