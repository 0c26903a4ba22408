package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/pkg/errs"
)

// AddCartItemCommandHandler handles adding a line to a customer's cart.
// A customer with no stored cart gets a fresh empty one on first add.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads (or creates) the customer's cart, merges the line into it and
// persists the result. Returns the cart state after the mutation.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := cart.NewItem(cmd.ProductName(), cmd.UnitPrice(), cmd.Quantity(), cmd.Size(), cmd.Image())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	customerCart, err := cartRepo.Get(ctx, cmd.Customer())
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}

		customerCart, err = cart.NewCart(cmd.Customer())
		if err != nil {
			return nil, err
		}
	}

	if err = customerCart.AddItem(item, time.Now()); err != nil {
		return nil, err
	}

	if err = cartRepo.Upsert(ctx, customerCart); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return customerCart, nil
}
