package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/pkg/errs"
)

// InitializeInventoryCommandHandler creates the singleton stock ledger when
// it does not exist yet. The operation is idempotent: it runs at every
// startup and is a no-op once the ledger is in place.
type InitializeInventoryCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewInitializeInventoryCommandHandler creates a handler for ledger initialization.
func NewInitializeInventoryCommandHandler(uowFactory InventoryUoWFactory) InitializeInventoryCommandHandler {
	return InitializeInventoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates an empty ledger if none is stored.
func (h *InitializeInventoryCommandHandler) Handle(ctx context.Context, cmd InitializeInventoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inventoryRepo := uow.InventoryRepository()
	if _, err := inventoryRepo.Get(ctx); err == nil {
		return uow.Commit(ctx)
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err := inventoryRepo.Create(ctx, inventory.NewLedger()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
