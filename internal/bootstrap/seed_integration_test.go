package bootstrap_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/bootstrap"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	postgres_container "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type SeederTestSuite struct {
	suite.Suite
	container *postgres_container.PostgresContainer
	db        *gorm.DB
	seeder    *bootstrap.Seeder
	stats     queries.GetOrderStatsQueryHandler
}

func (suite *SeederTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres_container.Run(ctx,
		"postgres:15-alpine",
		postgres_container.WithDatabase("testdb"),
		postgres_container.WithUsername("testuser"),
		postgres_container.WithPassword("testpass"),
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.AddressDTO{}, &orderrepo.OrderLineDTO{})
	suite.Require().NoError(err)

	factory := postgres.NewGormUnitOfWorkFactory(db)
	var uowFactory commands.OrderUoWFactory = funcUoWFactory(func() commands.OrderUoW {
		return factory.Create()
	})

	suite.stats = queries.NewGetOrderStatsQueryHandler(db)
	suite.seeder = bootstrap.NewSeeder(
		commands.NewCreateOrderCommandHandler(uowFactory),
		commands.NewCompleteOrderCommandHandler(uowFactory),
		commands.NewCancelOrderCommandHandler(uowFactory),
		suite.stats,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func (suite *SeederTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *SeederTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, addresses, order_lines").Error
	suite.Require().NoError(err)
}

type funcUoWFactory func() commands.OrderUoW

func (f funcUoWFactory) Create() commands.OrderUoW {
	return f()
}

func (suite *SeederTestSuite) TestSeed_creates_demo_orders_with_lifecycle_statuses() {
	ctx := context.Background()

	err := suite.seeder.Seed(ctx)
	suite.Require().NoError(err)

	stats, err := suite.stats.Handle(ctx, queries.NewGetOrderStatsQuery())
	suite.Require().NoError(err)

	suite.Assert().Equal(int64(1), stats.Processing)
	suite.Assert().Equal(int64(1), stats.Completed)
	suite.Assert().Equal(int64(1), stats.Canceled)
}

func (suite *SeederTestSuite) TestSeed_is_idempotent() {
	ctx := context.Background()

	err := suite.seeder.Seed(ctx)
	suite.Require().NoError(err)

	err = suite.seeder.Seed(ctx)
	suite.Require().NoError(err)

	stats, err := suite.stats.Handle(ctx, queries.NewGetOrderStatsQuery())
	suite.Require().NoError(err)
	suite.Assert().Equal(int64(3), stats.Total())
}

func (suite *SeederTestSuite) TestSeed_skips_when_orders_already_exist() {
	ctx := context.Background()

	err := suite.seeder.Seed(ctx)
	suite.Require().NoError(err)

	var before int64
	suite.Require().NoError(suite.db.Table("orders").Count(&before).Error)

	err = suite.seeder.Seed(ctx)
	suite.Require().NoError(err)

	var after int64
	suite.Require().NoError(suite.db.Table("orders").Count(&after).Error)
	suite.Assert().Equal(before, after)
}

func TestSeederTestSuite(t *testing.T) {
	suite.Run(t, new(SeederTestSuite))
}
