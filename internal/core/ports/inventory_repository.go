package ports

import (
	"context"

	"storefront/internal/core/domain/model/inventory"
)

// InventoryRepository defines the persistence contract for the stock ledger.
// The ledger is a singleton document: every save rewrites the whole ledger
// row atomically, so concurrent readers never observe a partial update.
type InventoryRepository interface {
	// Get retrieves the ledger. Returns an error wrapping
	// errs.ErrObjectNotFound before the first initialization.
	Get(ctx context.Context) (*inventory.Ledger, error)

	// Create persists a brand-new ledger.
	Create(ctx context.Context, aggregate *inventory.Ledger) error

	// Update rewrites the existing ledger.
	Update(ctx context.Context, aggregate *inventory.Ledger) error
}
