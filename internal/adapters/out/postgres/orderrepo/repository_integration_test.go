package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"grocery/internal/adapters/out/postgres/orderrepo"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var createdAt = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

// OrderRepositoryIntegrationTestSuite runs the order repository against a
// PostgreSQL container.
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, false)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RestoresTheWholeAggregate() {
	ctx := context.Background()
	testOrder := suite.createOrder(kernel.NewUUID(), createdAt)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	got, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(got.IsEqual(testOrder))
	suite.Equal(testOrder.CustomerID(), got.CustomerID())
	suite.Equal("Asha", got.CustomerName())
	suite.True(decimal.NewFromInt(160).Equal(got.TotalAmount()))
	suite.True(createdAt.Equal(got.CreatedAt()))
	suite.Equal(order.Pending, got.Status())
	suite.Require().Len(got.Items(), 2)
	suite.Equal("Milk", got.Items()[0].Name())
	suite.Equal("Bread", got.Items()[1].Name())
	suite.Empty(got.DeclinedBy())
	suite.Nil(got.AssignedShopID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsAlreadyExists() {
	ctx := context.Background()
	testOrder := suite.createOrder(kernel.NewUUID(), createdAt)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	suite.ErrorIs(suite.repository.Add(ctx, testOrder), orderrepo.ErrOrderAlreadyExists)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.True(errs.IsObjectNotFound(err, "order"))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsDeclinesAndAcceptance() {
	ctx := context.Background()
	testOrder := suite.createOrder(kernel.NewUUID(), createdAt)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	_, err := testOrder.Decline(1)
	suite.Require().NoError(err)
	_, err = testOrder.Decline(3)
	suite.Require().NoError(err)
	acceptedAt := createdAt.Add(400 * time.Second)
	suite.Require().NoError(testOrder.Accept(2, "Quick Grocery", acceptedAt))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	got, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, got.Status())
	suite.Equal([]kernel.ShopID{1, 3}, got.DeclinedBy())
	suite.Require().NotNil(got.AssignedShopID())
	suite.Equal(kernel.ShopID(2), *got.AssignedShopID())
	suite.Equal("Quick Grocery", got.AssignedShopName())
	suite.Require().NotNil(got.AcceptedAt())
	suite.True(acceptedAt.Equal(*got.AcceptedAt()))
	suite.Len(got.Items(), 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	err := suite.repository.Update(context.Background(), suite.createOrder(kernel.NewUUID(), createdAt))

	suite.True(errs.IsObjectNotFound(err, "order"))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAndItems() {
	ctx := context.Background()
	testOrder := suite.createOrder(kernel.NewUUID(), createdAt)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.ID()))

	_, err := suite.repository.Get(ctx, testOrder.ID())
	suite.True(errs.IsObjectNotFound(err, "order"))

	var items int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&items).Error)
	suite.Zero(items)

	suite.True(errs.IsObjectNotFound(suite.repository.Delete(ctx, testOrder.ID()), "order"))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPending_ReturnsOldestFirst() {
	ctx := context.Background()
	newer := suite.createOrder(kernel.NewUUID(), createdAt.Add(time.Minute))
	older := suite.createOrder(kernel.NewUUID(), createdAt)
	expired := suite.createOrder(kernel.NewUUID(), createdAt)
	suite.Require().NoError(expired.Expire())
	for _, o := range []*order.Order{newer, older, expired} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	pending, err := suite.repository.GetAllPending(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.Equal(older.ID(), pending[0].ID())
	suite.Equal(newer.ID(), pending[1].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPending_CentPricesRoundTripExactly() {
	ctx := context.Background()
	_, err := order.NewItem("Milk", decimal.RequireFromString("0.333"), 3)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)

	milk, err := order.NewItem("Milk", decimal.RequireFromString("0.33"), 3)
	suite.Require().NoError(err)
	eggs, err := order.NewItem("Eggs (12)", decimal.RequireFromString("80.05"), 1)
	suite.Require().NoError(err)
	priced, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Asha", []order.Item{milk, eggs}, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, priced))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createOrder(kernel.NewUUID(), createdAt.Add(time.Minute))))

	pending, err := suite.repository.GetAllPending(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.Equal(priced.ID(), pending[0].ID())
	suite.True(decimal.RequireFromString("81.04").Equal(pending[0].TotalAmount()))
	suite.True(decimal.RequireFromString("0.33").Equal(pending[0].Items()[0].UnitPrice()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllAcceptedByShop_ReturnsMostRecentFirst() {
	ctx := context.Background()
	first := suite.createOrder(kernel.NewUUID(), createdAt)
	second := suite.createOrder(kernel.NewUUID(), createdAt)
	other := suite.createOrder(kernel.NewUUID(), createdAt)
	suite.Require().NoError(first.Accept(1, "Fresh Mart", createdAt.Add(time.Second)))
	suite.Require().NoError(second.Accept(1, "Fresh Mart", createdAt.Add(2*time.Second)))
	suite.Require().NoError(other.Accept(2, "Quick Grocery", createdAt.Add(3*time.Second)))
	for _, o := range []*order.Order{first, second, other} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	accepted, err := suite.repository.GetAllAcceptedByShop(ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Len(accepted, 2)
	suite.Equal(second.ID(), accepted[0].ID())
	suite.Equal(first.ID(), accepted[1].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByCustomer_ReturnsNewestFirst() {
	ctx := context.Background()
	customer := kernel.NewUUID()
	older := suite.createOrder(customer, createdAt)
	newer := suite.createOrder(customer, createdAt.Add(time.Hour))
	suite.Require().NoError(newer.Expire())
	for _, o := range []*order.Order{older, newer, suite.createOrder(kernel.NewUUID(), createdAt)} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	orders, err := suite.repository.GetAllByCustomer(ctx, customer)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal(newer.ID(), orders[0].ID())
	suite.Equal(order.Expired, orders[0].Status())
	suite.Equal(older.ID(), orders[1].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) createOrder(customerID kernel.UUID, at time.Time) *order.Order {
	milk, err := order.NewItem("Milk", decimal.NewFromInt(60), 2)
	suite.Require().NoError(err)
	bread, err := order.NewItem("Bread", decimal.NewFromInt(40), 1)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID, "Asha", []order.Item{milk, bread}, at)
	suite.Require().NoError(err)
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
