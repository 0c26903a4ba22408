package commands

import (
	"context"
	"errors"
	"log/slog"

	"storefront/internal/core/domain/model/customer"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// ErrNoSavedAddress is returned when a command asks for the saved profile
// address but the customer has none on file.
var ErrNoSavedAddress = errors.New("customer has no saved delivery address")

// PlaceOrderCommandHandler turns a payment confirmation into a stored order
// plus its initial delivery schedule. The order and its two initial tasks are
// written in one transaction so a crash can never leave an order without a
// schedule or a schedule without an order.
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory CheckoutUoWFactory, logger *slog.Logger) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle places the order. A duplicate order reference is rejected with
// ErrObjectAlreadyExists without writing a second record. After a successful
// commit an explicit address is written back to the customer profile as a
// secondary effect: a failure there is logged and the placed order stands.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
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
	if _, err := orderRepo.Get(ctx, cmd.OrderRef()); err == nil {
		return nil, errs.NewObjectAlreadyExistsError("orderRef", cmd.OrderRef())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	address, err := h.resolveAddress(ctx, uow, cmd)
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(
		cmd.OrderRef(),
		cmd.PaymentRef(),
		cmd.Customer(),
		cmd.Product(),
		address,
		cmd.TotalPrice(),
		cmd.PlacedAt(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, placed); err != nil {
		return nil, err
	}

	tasks, err := delivery.InitialSchedule(placed.OrderRef(), placed.CreatedAt())
	if err != nil {
		return nil, err
	}

	taskRepo := uow.TaskRepository()
	for _, task := range tasks {
		if err = taskRepo.Add(ctx, task); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.saveAddress(ctx, cmd)

	return placed, nil
}

// resolveAddress picks the delivery address: the explicit one from the
// command, or the saved profile address when the command asks for it.
func (h *PlaceOrderCommandHandler) resolveAddress(
	ctx context.Context, uow CheckoutUoW, cmd PlaceOrderCommand,
) (kernel.Address, error) {
	if cmd.Address() != nil {
		return *cmd.Address(), nil
	}

	profile, err := uow.CustomerRepository().Get(ctx, cmd.Customer())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return kernel.Address{}, ErrNoSavedAddress
		}
		return kernel.Address{}, err
	}

	if profile.Address() == nil {
		return kernel.Address{}, ErrNoSavedAddress
	}

	return *profile.Address(), nil
}

// saveAddress writes an explicit address back to the customer profile so the
// next checkout can reuse it. Runs after the order commit in its own
// transaction: the order is already placed, so any failure here is logged and
// swallowed.
func (h *PlaceOrderCommandHandler) saveAddress(ctx context.Context, cmd PlaceOrderCommand) {
	if cmd.Address() == nil || cmd.Customer() == "" || cmd.Customer() == order.GuestCustomer {
		return
	}

	err := h.upsertAddress(ctx, cmd.Customer(), *cmd.Address())
	if err != nil {
		h.logger.Warn("saving customer address after order placement failed",
			"customer", cmd.Customer(),
			"orderRef", cmd.OrderRef(),
			"error", err)
	}
}

func (h *PlaceOrderCommandHandler) upsertAddress(
	ctx context.Context, identity string, address kernel.Address,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	profile, err := customerRepo.Get(ctx, identity)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		profile, err = customer.NewCustomer(identity)
		if err != nil {
			return err
		}
	}

	if err = profile.SetAddress(address); err != nil {
		return err
	}

	if err = customerRepo.Upsert(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
