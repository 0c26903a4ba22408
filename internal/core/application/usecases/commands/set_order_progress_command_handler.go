package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// SetOrderProgressCommandHandler handles administrative progress overrides.
type SetOrderProgressCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetOrderProgressCommandHandler creates a handler for progress overrides.
func NewSetOrderProgressCommandHandler(uowFactory OrderUoWFactory) SetOrderProgressCommandHandler {
	return SetOrderProgressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, forces the progress value and persists it.
// Returns the order state after the override.
func (h *SetOrderProgressCommandHandler) Handle(
	ctx context.Context, cmd SetOrderProgressCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	stored, err := orderRepo.Get(ctx, cmd.OrderRef())
	if err != nil {
		return nil, err
	}

	if err = stored.SetProgress(cmd.Progress()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, stored); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
