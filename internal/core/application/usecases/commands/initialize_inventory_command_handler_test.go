package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInitializeInventoryCommandHandler_Handle_CreatesLedgerWhenAbsent(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewInitializeInventoryCommand()
	require.NoError(t, err)

	repo := new(MockInventoryRepository)
	uow := new(MockInventoryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InventoryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("inventory", "singleton")).Once(),
		repo.On("Create", mock.Anything, mock.AnythingOfType("*inventory.Ledger")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewInitializeInventoryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestInitializeInventoryCommandHandler_Handle_IdempotentWhenPresent(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewInitializeInventoryCommand()
	require.NoError(t, err)

	repo := new(MockInventoryRepository)
	uow := new(MockInventoryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InventoryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything).Return(inventory.NewLedger(), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewInitializeInventoryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
