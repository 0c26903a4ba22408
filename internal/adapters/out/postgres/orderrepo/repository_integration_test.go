package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// real PostgreSQL instance, including the conditional status write the
// delivery scheduler relies on.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(orderRef string) *order.Order {
	address, err := kernel.NewAddress("Alice", "5551234567", "1 Main St", "Springfield", "12345")
	suite.Require().NoError(err)

	product := order.ProductSnapshot{
		Base:     "thin",
		Sauce:    "tomato",
		Cheese:   "mozzarella",
		Veggies:  []string{"olives", "onions"},
		Size:     "medium",
		Quantity: 1,
		Items: []order.SnapshotItem{
			{ProductName: "Margherita", UnitPrice: 9.5, Quantity: 1, Size: "medium"},
		},
	}

	testOrder, err := order.NewOrder(orderRef, "pay-"+uuid.NewString(), "alice", product, address, 9.5, time.Now().UTC())
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.createTestOrder("ord-1")
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, "ord-1")
	suite.Require().NoError(err)

	suite.Equal(original.OrderRef(), retrieved.OrderRef())
	suite.Equal(original.PaymentRef(), retrieved.PaymentRef())
	suite.Equal(original.Customer(), retrieved.Customer())
	suite.Equal(original.Product(), retrieved.Product())
	suite.True(original.Address().IsEqual(retrieved.Address()))
	suite.InEpsilon(original.TotalPrice(), retrieved.TotalPrice(), 1e-9)
	suite.Equal(order.StatusPlaced, retrieved.Status())
	suite.Equal(0, retrieved.Progress())
	suite.Nil(retrieved.Feedback())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateRef_ReturnsAlreadyExists() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder("ord-1")))

	err := suite.repository.Add(ctx, suite.createTestOrder("ord-1"))
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), "ord-missing")
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsLifecycleFields() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ord-1")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.SetStatus(order.StatusOutForDelivery))
	suite.Require().NoError(testOrder.SetProgress(40))
	suite.Require().NoError(testOrder.RecordFeedback(5))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, "ord-1")
	suite.Require().NoError(err)
	suite.Equal(order.StatusOutForDelivery, retrieved.Status())
	suite.Equal(40, retrieved.Progress())
	suite.Require().NotNil(retrieved.Feedback())
	suite.Equal(5, *retrieved.Feedback())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_WritesZeroValues() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ord-1")
	suite.Require().NoError(testOrder.SetStatus(order.StatusPreparing))
	suite.Require().NoError(testOrder.SetProgress(40))
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Dispatch resets progress to zero; the reset must reach the database.
	suite.Require().NoError(testOrder.Dispatch())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, "ord-1")
	suite.Require().NoError(err)
	suite.Equal(order.StatusOutForDelivery, retrieved.Status())
	suite.Equal(0, retrieved.Progress())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateIfStatus_MatchingStatus_Applies() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ord-1")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.BeginPreparation())
	applied, err := suite.repository.UpdateIfStatus(ctx, testOrder, order.StatusPlaced)
	suite.Require().NoError(err)
	suite.True(applied)

	retrieved, err := suite.repository.Get(ctx, "ord-1")
	suite.Require().NoError(err)
	suite.Equal(order.StatusPreparing, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateIfStatus_ChangedStatus_SkipsWrite() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ord-1")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Another writer cancels the order after our read.
	override, err := suite.repository.Get(ctx, "ord-1")
	suite.Require().NoError(err)
	suite.Require().NoError(override.SetStatus(order.StatusCancelled))
	suite.Require().NoError(suite.repository.Update(ctx, override))

	// Our write still expects Placed and must lose.
	suite.Require().NoError(testOrder.BeginPreparation())
	applied, err := suite.repository.UpdateIfStatus(ctx, testOrder, order.StatusPlaced)
	suite.Require().NoError(err)
	suite.False(applied)

	retrieved, err := suite.repository.Get(ctx, "ord-1")
	suite.Require().NoError(err)
	suite.Equal(order.StatusCancelled, retrieved.Status())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
