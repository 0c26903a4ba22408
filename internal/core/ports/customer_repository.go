package ports

import (
	"context"

	"storefront/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for the customer
// profile slice owned by this core (the saved delivery address).
type CustomerRepository interface {
	// Get retrieves a profile by identity. Returns an error wrapping
	// errs.ErrObjectNotFound for unknown identities.
	Get(ctx context.Context, identity string) (*customer.Customer, error)

	// Upsert stores the profile, creating the row when absent.
	Upsert(ctx context.Context, aggregate *customer.Customer) error
}
