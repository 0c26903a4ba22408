package commands

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/ports"
)

// AdjustIngredientQuantityCommandHandler handles stock movements and the
// low-stock alerting that rides on them. The alert is a secondary effect:
// it is sent after the commit, and a sink failure is logged without
// disturbing the already persisted adjustment.
type AdjustIngredientQuantityCommandHandler struct {
	uowFactory InventoryUoWFactory
	sink       ports.NotificationSink
	logger     *slog.Logger
}

// NewAdjustIngredientQuantityCommandHandler creates a handler for stock movements.
func NewAdjustIngredientQuantityCommandHandler(
	uowFactory InventoryUoWFactory,
	sink ports.NotificationSink,
	logger *slog.Logger,
) AdjustIngredientQuantityCommandHandler {
	return AdjustIngredientQuantityCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
		logger:     logger,
	}
}

// Handle applies the delta to the ledger and persists it. When the
// adjustment crosses the low-stock threshold for the first time on that lot,
// a notification is sent after the commit. Returns the adjusted entry state.
func (h *AdjustIngredientQuantityCommandHandler) Handle(
	ctx context.Context, cmd AdjustIngredientQuantityCommand,
) (inventory.Adjustment, error) {
	if err := cmd.Validate(); err != nil {
		return inventory.Adjustment{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return inventory.Adjustment{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inventoryRepo := uow.InventoryRepository()
	ledger, err := inventoryRepo.Get(ctx)
	if err != nil {
		return inventory.Adjustment{}, err
	}

	adjustment, err := ledger.AdjustQuantity(cmd.Category(), cmd.Name(), cmd.Delta())
	if err != nil {
		return inventory.Adjustment{}, err
	}

	if err = inventoryRepo.Update(ctx, ledger); err != nil {
		return inventory.Adjustment{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return inventory.Adjustment{}, err
	}

	if adjustment.LowStock {
		h.notifyLowStock(ctx, cmd.Category(), adjustment.Entry)
	}

	return adjustment, nil
}

func (h *AdjustIngredientQuantityCommandHandler) notifyLowStock(
	ctx context.Context, category inventory.Category, entry inventory.Entry,
) {
	message := fmt.Sprintf("Low stock alert: %s (%s) is down to %d units",
		entry.Name(), category, entry.Quantity())

	if err := h.sink.Send(ctx, message); err != nil {
		h.logger.Warn("low stock notification failed",
			"ingredient", entry.Name(),
			"category", category.String(),
			"quantity", entry.Quantity(),
			"error", err)
	}
}
