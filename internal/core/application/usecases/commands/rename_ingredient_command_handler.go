package commands

import (
	"context"
)

// RenameIngredientCommandHandler handles renaming a stock lot in the ledger.
type RenameIngredientCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewRenameIngredientCommandHandler creates a handler for ingredient renames.
func NewRenameIngredientCommandHandler(uowFactory InventoryUoWFactory) RenameIngredientCommandHandler {
	return RenameIngredientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the ledger, renames the first matching lot and rewrites the
// ledger document.
func (h *RenameIngredientCommandHandler) Handle(ctx context.Context, cmd RenameIngredientCommand) error {
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
	ledger, err := inventoryRepo.Get(ctx)
	if err != nil {
		return err
	}

	if err = ledger.RenameEntry(cmd.Category(), cmd.OldName(), cmd.NewName()); err != nil {
		return err
	}

	if err = inventoryRepo.Update(ctx, ledger); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
