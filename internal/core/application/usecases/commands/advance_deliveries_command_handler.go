package commands

import (
	"context"
	"errors"
	"log/slog"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// AdvanceDeliveriesCommandHandler executes the due slice of the durable
// delivery schedule. Each scan reads pending tasks from storage, so the
// simulation picks up exactly where it left off after a process restart.
//
// Every task runs in its own transaction: one poisoned task cannot roll back
// the progress of the others, and a failed task simply stays due and is
// retried on the next scan.
type AdvanceDeliveriesCommandHandler struct {
	uowFactory DeliveryUoWFactory
	logger     *slog.Logger
}

// NewAdvanceDeliveriesCommandHandler creates a handler for schedule scans.
func NewAdvanceDeliveriesCommandHandler(
	uowFactory DeliveryUoWFactory, logger *slog.Logger,
) AdvanceDeliveriesCommandHandler {
	return AdvanceDeliveriesCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle loads all tasks due at the scan time, ordered by fire time, and
// executes them one by one. Per-task failures are logged and never propagate:
// the scan always visits every due task.
func (h *AdvanceDeliveriesCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveriesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	tasks, err := h.dueTasks(ctx, cmd)
	if err != nil {
		return err
	}

	for _, task := range tasks {
		if err = h.executeTask(ctx, task); err != nil {
			h.logger.Error("delivery task failed, will retry on next scan",
				"taskID", task.ID().String(),
				"orderRef", task.OrderRef(),
				"action", task.Action().String(),
				"error", err)
		}
	}

	return nil
}

func (h *AdvanceDeliveriesCommandHandler) dueTasks(
	ctx context.Context, cmd AdvanceDeliveriesCommand,
) ([]*delivery.Task, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tasks, err := uow.TaskRepository().GetDue(ctx, cmd.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return tasks, nil
}

// executeTask applies one scheduled transition inside its own transaction.
//
// The order write is a compare-and-swap on the status observed during the
// terminal guard. Losing the swap means an administrative override landed
// between the read and the write; the tick is skipped silently and the
// override wins. The task itself completes either way, and any successor is
// still armed: if the override moved the order to a terminal status, the
// guard retires the chain on the successor's own tick.
func (h *AdvanceDeliveriesCommandHandler) executeTask(ctx context.Context, task *delivery.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	taskRepo := uow.TaskRepository()

	stored, err := orderRepo.Get(ctx, task.OrderRef())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			// Orphaned task: no order to advance, retire it so the scan
			// stops picking it up.
			task.Complete()
			if err = taskRepo.Update(ctx, task); err != nil {
				return err
			}
			return uow.Commit(ctx)
		}
		return err
	}

	if stored.Status().IsTerminal() {
		task.Complete()
		if err = taskRepo.Update(ctx, task); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	expected := stored.Status()
	successor, err := h.applyAction(stored, task)
	if err != nil {
		return err
	}

	applied, err := orderRepo.UpdateIfStatus(ctx, stored, expected)
	if err != nil {
		return err
	}
	if !applied {
		h.logger.Info("delivery tick skipped, order status changed concurrently",
			"orderRef", task.OrderRef(),
			"action", task.Action().String())
	}

	task.Complete()
	if err = taskRepo.Update(ctx, task); err != nil {
		return err
	}

	if successor != nil {
		if err = taskRepo.Add(ctx, successor); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// applyAction mutates the order in memory per the task's action and returns
// the successor task to arm, if any. Progress ticks chain one successor at a
// time, anchored to the previous fire time, until delivery completes.
func (h *AdvanceDeliveriesCommandHandler) applyAction(
	stored *order.Order, task *delivery.Task,
) (*delivery.Task, error) {
	switch task.Action() {
	case delivery.ActionPrepareOrder:
		return nil, stored.BeginPreparation()

	case delivery.ActionDispatchOrder:
		if err := stored.Dispatch(); err != nil {
			return nil, err
		}
		return delivery.NextProgressTask(task.OrderRef(), task.FireAt())

	case delivery.ActionAdvanceProgress:
		delivered, err := stored.AdvanceDelivery()
		if err != nil {
			return nil, err
		}
		if delivered {
			return nil, nil
		}
		return delivery.NextProgressTask(task.OrderRef(), task.FireAt())

	case delivery.ActionUnknown:
		fallthrough
	default:
		return nil, task.Action().Validate()
	}
}
