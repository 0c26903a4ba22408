package commands_test

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Get(ctx context.Context) (*inventory.Ledger, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Ledger), args.Error(1)
}

func (m *MockInventoryRepository) Create(ctx context.Context, aggregate *inventory.Ledger) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockInventoryRepository) Update(ctx context.Context, aggregate *inventory.Ledger) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockInventoryUoW struct{ mock.Mock }

func (m *MockInventoryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInventoryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInventoryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInventoryUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.InventoryUoW)
}

type MockNotificationSink struct{ mock.Mock }

func (m *MockNotificationSink) Send(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func ledgerWithCheese(t *testing.T, quantity int, alerted bool) *inventory.Ledger {
	t.Helper()
	return inventory.RestoreLedger(
		nil, nil,
		[]inventory.Entry{inventory.RestoreEntry("mozzarella", quantity, alerted)},
		nil, nil,
	)
}

func TestAdjustIngredientQuantityCommandHandler_Handle_NoAlertAboveThreshold(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAdjustIngredientQuantityCommand(inventory.CategoryCheese, "mozzarella", -5)

	ledger := ledgerWithCheese(t, 20, false)
	repo := new(MockInventoryRepository)
	uow := new(MockInventoryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InventoryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything).Return(ledger, nil).Once(),
		repo.On("Update", mock.Anything, ledger).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	sink := new(MockNotificationSink)

	h := commands.NewAdjustIngredientQuantityCommandHandler(factory, sink, testLogger())
	adjustment, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 15, adjustment.Entry.Quantity())
	require.False(t, adjustment.LowStock)
	sink.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdjustIngredientQuantityCommandHandler_Handle_LowStockSendsAlert(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAdjustIngredientQuantityCommand(inventory.CategoryCheese, "mozzarella", -12)

	ledger := ledgerWithCheese(t, 20, false)
	repo := new(MockInventoryRepository)
	uow := new(MockInventoryUoW)
	sink := new(MockNotificationSink)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InventoryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything).Return(ledger, nil).Once(),
		repo.On("Update", mock.Anything, ledger).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		sink.On("Send", mock.Anything, mock.MatchedBy(func(message string) bool {
			return message != ""
		})).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdjustIngredientQuantityCommandHandler(factory, sink, testLogger())
	adjustment, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 8, adjustment.Entry.Quantity())
	require.True(t, adjustment.LowStock)
	sink.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdjustIngredientQuantityCommandHandler_Handle_AlreadyAlertedStaysQuiet(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAdjustIngredientQuantityCommand(inventory.CategoryCheese, "mozzarella", -2)

	ledger := ledgerWithCheese(t, 8, true)
	repo := new(MockInventoryRepository)
	uow := new(MockInventoryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InventoryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything).Return(ledger, nil).Once(),
		repo.On("Update", mock.Anything, ledger).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	sink := new(MockNotificationSink)

	h := commands.NewAdjustIngredientQuantityCommandHandler(factory, sink, testLogger())
	adjustment, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 6, adjustment.Entry.Quantity())
	require.False(t, adjustment.LowStock)
	sink.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestAdjustIngredientQuantityCommandHandler_Handle_SinkFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAdjustIngredientQuantityCommand(inventory.CategoryCheese, "mozzarella", -15)

	ledger := ledgerWithCheese(t, 20, false)
	repo := new(MockInventoryRepository)
	uow := new(MockInventoryUoW)
	sink := new(MockNotificationSink)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InventoryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything).Return(ledger, nil).Once(),
		repo.On("Update", mock.Anything, ledger).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		sink.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdjustIngredientQuantityCommandHandler(factory, sink, testLogger())
	adjustment, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, adjustment.LowStock)
	sink.AssertExpectations(t)
}

func TestAdjustIngredientQuantityCommandHandler_Handle_UnknownIngredient(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAdjustIngredientQuantityCommand(inventory.CategoryCheese, "gorgonzola", -1)

	ledger := ledgerWithCheese(t, 20, false)
	repo := new(MockInventoryRepository)
	uow := new(MockInventoryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InventoryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything).Return(ledger, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	sink := new(MockNotificationSink)

	h := commands.NewAdjustIngredientQuantityCommandHandler(factory, sink, testLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
