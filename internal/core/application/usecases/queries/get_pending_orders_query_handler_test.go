package queries_test

import (
	"context"
	"testing"
	"time"

	"fastfood/internal/adapters/out/postgres/orderrepo"
	"fastfood/internal/core/application/usecases/queries"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// GetPendingOrdersQueryHandlerTestSuite runs the kitchen feed query against
// a real PostgreSQL database seeded through the order repository.
type GetPendingOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetPendingOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetPendingOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items").Error)
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) seedOrder(mutate func(*order.Order)) *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), order.Counter, kernel.NewUUID().String(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(
		testOrder.AddItem(kernel.NewUUID(), "Burger", decimal.NewFromFloat(10.99), 2),
	)
	suite.Require().NoError(
		testOrder.AddItem(kernel.NewUUID(), "Fries", decimal.NewFromFloat(3.49), 1),
	)

	if mutate != nil {
		mutate(testOrder)
	}
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), testOrder))
	return testOrder
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TestHandle_ReturnsOnlyPending() {
	pendingOrder := suite.seedOrder(nil)
	suite.seedOrder(func(o *order.Order) {
		suite.Require().NoError(o.Accept())
	})
	suite.seedOrder(func(o *order.Order) {
		suite.Require().NoError(o.Cancel("out of time"))
	})

	responses, err := suite.handler.Handle(context.Background(), queries.NewGetPendingOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(responses, 1)
	suite.True(responses[0].ID.IsEqual(pendingOrder.ID()))
	suite.True(responses[0].CustomerID.IsEqual(pendingOrder.CustomerID()))
	suite.Equal("Counter", responses[0].DeliveryType)
	suite.Len(responses[0].Items, 2)
	suite.True(responses[0].Total.Equal(decimal.NewFromFloat(25.47)))
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase() {
	responses, err := suite.handler.Handle(context.Background(), queries.NewGetPendingOrdersQuery())

	suite.Require().NoError(err)
	suite.Empty(responses)
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TestHandle_NotConstructedQuery() {
	_, err := suite.handler.Handle(context.Background(), queries.GetPendingOrdersQuery{})

	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetPendingOrdersQueryIsNotConstructed)
}

func TestGetPendingOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPendingOrdersQueryHandlerTestSuite))
}
