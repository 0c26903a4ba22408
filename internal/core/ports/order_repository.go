package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Read paths used purely for presentation (listings, summaries) live in the
// query handlers instead.
type OrderRepository interface {
	// Add persists a new order. Returns an error wrapping
	// errs.ErrObjectAlreadyExists when the order reference is taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order unconditionally.
	// Administrative overrides use this path.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateIfStatus persists changes only when the stored status still
	// equals expected, as a single compare-and-swap statement. Reports
	// whether the write was applied. The scheduler uses this so a
	// concurrent administrative write between its guard read and its write
	// loses nothing: the tick is simply skipped.
	UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) (bool, error)

	// Get retrieves an order by its external reference.
	Get(ctx context.Context, orderRef string) (*order.Order, error)
}
