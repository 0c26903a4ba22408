package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// RecordFeedbackCommandHandler handles storing a customer rating on an order.
type RecordFeedbackCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordFeedbackCommandHandler creates a handler for feedback recording.
func NewRecordFeedbackCommandHandler(uowFactory OrderUoWFactory) RecordFeedbackCommandHandler {
	return RecordFeedbackCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, records the rating and persists it.
// Returns the order state after the update.
func (h *RecordFeedbackCommandHandler) Handle(ctx context.Context, cmd RecordFeedbackCommand) (*order.Order, error) {
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

	if err = stored.RecordFeedback(cmd.Rating()); err != nil {
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
