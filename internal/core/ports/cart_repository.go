package ports

import (
	"context"

	"storefront/internal/core/domain/model/cart"
)

// CartRepository defines the persistence contract for cart aggregates.
// Carts are keyed by customer identity; one row per customer.
type CartRepository interface {
	// Get retrieves the customer's cart. Returns an error wrapping
	// errs.ErrObjectNotFound when the customer has never had a cart;
	// callers treat that as an empty cart, not a failure.
	Get(ctx context.Context, customer string) (*cart.Cart, error)

	// Upsert stores the cart, creating the row on first mutation.
	Upsert(ctx context.Context, aggregate *cart.Cart) error
}
