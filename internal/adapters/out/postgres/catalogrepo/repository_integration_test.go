package catalogrepo_test

import (
	"context"
	"testing"
	"time"

	"fastfood/internal/adapters/out/postgres/catalogrepo"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/ports"
	"fastfood/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CatalogRepositoryIntegrationTestSuite runs the catalog lookups against a
// real PostgreSQL container.
type CatalogRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *catalogrepo.GormCatalogRepository
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&catalogrepo.CustomerDTO{}, &catalogrepo.ProductDTO{}))
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE customers").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)

	suite.repository = catalogrepo.NewGormCatalogRepository(suite.db)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGetCustomer() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	dto := catalogrepo.CustomerDTO{
		ID:   customerID.Bytes(),
		Name: "Alice",
		Role: string(ports.RoleCustomer),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)

	customer, err := suite.repository.GetCustomer(ctx, customerID)

	suite.Require().NoError(err)
	suite.True(customer.ID.IsEqual(customerID))
	suite.Equal("Alice", customer.Name)
	suite.Equal(ports.RoleCustomer, customer.Role)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGetCustomerNotFound() {
	_, err := suite.repository.GetCustomer(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGetProduct() {
	ctx := context.Background()

	productID := kernel.NewUUID()
	dto := catalogrepo.ProductDTO{
		ID:       productID.Bytes(),
		Name:     "Burger",
		Price:    decimal.NewFromFloat(10.99),
		IsActive: true,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)

	product, err := suite.repository.GetProduct(ctx, productID)

	suite.Require().NoError(err)
	suite.True(product.ID.IsEqual(productID))
	suite.Equal("Burger", product.Name)
	suite.True(product.Price.Equal(decimal.NewFromFloat(10.99)))
	suite.True(product.IsActive)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGetProductInactive() {
	ctx := context.Background()

	productID := kernel.NewUUID()
	dto := catalogrepo.ProductDTO{
		ID:       productID.Bytes(),
		Name:     "Seasonal Shake",
		Price:    decimal.NewFromFloat(4.49),
		IsActive: false,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)

	product, err := suite.repository.GetProduct(ctx, productID)

	suite.Require().NoError(err)
	suite.False(product.IsActive)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGetProductNotFound() {
	_, err := suite.repository.GetProduct(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCatalogRepositoryIntegration(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryIntegrationTestSuite))
}
