package shoprepo_test

import (
	"context"
	"testing"
	"time"

	"grocery/internal/adapters/out/postgres/shoprepo"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/shop"
	"grocery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ShopRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shoprepo.GormShopRepository
}

func (suite *ShopRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&shoprepo.ShopDTO{}, &shoprepo.StockItemDTO{}))
}

func (suite *ShopRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shops, stock_items").Error)
	suite.repository = shoprepo.NewGormShopRepository(suite.db, false)
}

func (suite *ShopRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShopRepositoryIntegrationTestSuite) TestAdd_ThenGet_RestoresInventory() {
	ctx := context.Background()
	freshMart := suite.createShop(1, "Fresh Mart", 1)

	suite.Require().NoError(suite.repository.Add(ctx, freshMart))

	got, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal("Fresh Mart", got.Name())
	suite.Equal(1, got.PriorityRank())
	suite.Require().Len(got.Inventory(), 2)
	suite.Equal("Milk", got.Inventory()[0].Name())
	suite.True(decimal.RequireFromString("60.50").Equal(got.Inventory()[0].Price()))
	suite.Equal(10, got.StockOf("Milk"))
	suite.Equal("https://img.example/bread.png", got.Inventory()[1].ImageURL())
}

func (suite *ShopRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsAlreadyExists() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createShop(1, "Fresh Mart", 1)))

	suite.ErrorIs(suite.repository.Add(ctx, suite.createShop(1, "Fresh Mart", 1)), shoprepo.ErrShopAlreadyExists)
}

func (suite *ShopRepositoryIntegrationTestSuite) TestGet_NonExistentShop_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), 9)

	suite.True(errs.IsObjectNotFound(err, "shop"))
}

func (suite *ShopRepositoryIntegrationTestSuite) TestUpdate_PersistsStockChanges() {
	ctx := context.Background()
	freshMart := suite.createShop(1, "Fresh Mart", 1)
	suite.Require().NoError(suite.repository.Add(ctx, freshMart))

	suite.Require().NoError(freshMart.SetStock(2, 0))
	suite.Require().NoError(freshMart.SetStock(1, 3))
	suite.Require().NoError(suite.repository.Update(ctx, freshMart))

	got, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(3, got.StockOf("Milk"))
	suite.Equal(0, got.StockOf("Bread"))
}

func (suite *ShopRepositoryIntegrationTestSuite) TestUpdate_NonExistentShop_ReturnsNotFoundError() {
	err := suite.repository.Update(context.Background(), suite.createShop(5, "Ghost", 1))

	suite.True(errs.IsObjectNotFound(err, "shop"))
}

func (suite *ShopRepositoryIntegrationTestSuite) TestGetAll_OrdersByRankThenID() {
	ctx := context.Background()
	for _, s := range []*shop.Shop{
		suite.createShop(3, "Corner Store", 2),
		suite.createShop(2, "Quick Grocery", 2),
		suite.createShop(1, "Fresh Mart", 1),
	} {
		suite.Require().NoError(suite.repository.Add(ctx, s))
	}

	shops, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(shops, 3)
	suite.Equal(kernel.ShopID(1), shops[0].ID())
	suite.Equal(kernel.ShopID(2), shops[1].ID())
	suite.Equal(kernel.ShopID(3), shops[2].ID())
	suite.Len(shops[2].Inventory(), 2)
}

func (suite *ShopRepositoryIntegrationTestSuite) createShop(id kernel.ShopID, name string, rank int) *shop.Shop {
	milk, err := shop.NewStockItem(1, "Milk", decimal.RequireFromString("60.50"), 10, "https://img.example/milk.png")
	suite.Require().NoError(err)
	bread, err := shop.NewStockItem(2, "Bread", decimal.NewFromInt(40), 5, "https://img.example/bread.png")
	suite.Require().NoError(err)

	s, err := shop.NewShop(id, name, rank, []shop.StockItem{milk, bread})
	suite.Require().NoError(err)
	return s
}

func TestShopRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShopRepositoryIntegrationTestSuite))
}
