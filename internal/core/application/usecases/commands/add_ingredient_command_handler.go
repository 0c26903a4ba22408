package commands

import (
	"context"
)

// AddIngredientCommandHandler handles adding a stock lot to the ledger.
type AddIngredientCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewAddIngredientCommandHandler creates a handler for ingredient additions.
func NewAddIngredientCommandHandler(uowFactory InventoryUoWFactory) AddIngredientCommandHandler {
	return AddIngredientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the ledger, appends the lot with the initial quantity and
// rewrites the ledger document.
func (h *AddIngredientCommandHandler) Handle(ctx context.Context, cmd AddIngredientCommand) error {
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

	if err = ledger.AddEntry(cmd.Category(), cmd.Name()); err != nil {
		return err
	}

	if err = inventoryRepo.Update(ctx, ledger); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
