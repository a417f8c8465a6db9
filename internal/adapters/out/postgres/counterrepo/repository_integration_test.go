package counterrepo_test

import (
	"context"
	"testing"
	"time"

	"procurement/internal/adapters/out/postgres/counterrepo"
	"procurement/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CounterRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *counterrepo.GormCounterRepository
}

func (suite *CounterRepositoryTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&counterrepo.CounterDTO{})
	suite.Require().NoError(err)

	suite.repo = counterrepo.NewGormCounterRepository(db)
}

func (suite *CounterRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *CounterRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE counters").Error
	suite.Require().NoError(err)
}

func (suite *CounterRepositoryTestSuite) TestNextID_StartsAtOne() {
	id, err := suite.repo.NextID(context.Background())
	suite.Require().NoError(err)
	suite.Equal(kernel.OrderID(1), id)
}

func (suite *CounterRepositoryTestSuite) TestNextID_StrictlyIncreases() {
	ctx := context.Background()

	for want := kernel.OrderID(1); want <= 5; want++ {
		id, err := suite.repo.NextID(ctx)
		suite.Require().NoError(err)
		suite.Equal(want, id)
	}
}

func (suite *CounterRepositoryTestSuite) TestNextID_ConcurrentAllocationsAreUnique() {
	ctx := context.Background()
	const n = 20

	ids := make(chan kernel.OrderID, n)
	errs := make(chan error, n)

	// Each allocation runs in its own transaction, the way the unit of work
	// drives it; the row lock then holds until commit.
	for range n {
		go func() {
			tx := suite.db.Begin()
			if tx.Error != nil {
				errs <- tx.Error
				return
			}

			id, err := counterrepo.NewGormCounterRepository(tx).NextID(ctx)
			if err != nil {
				tx.Rollback()
				errs <- err
				return
			}

			if err = tx.Commit().Error; err != nil {
				errs <- err
				return
			}
			ids <- id
		}()
	}

	seen := make(map[kernel.OrderID]bool)
	for range n {
		select {
		case err := <-errs:
			suite.Require().NoError(err)
		case id := <-ids:
			suite.False(seen[id], "id %d allocated twice", id)
			seen[id] = true
		case <-time.After(10 * time.Second):
			suite.FailNow("timed out waiting for allocations")
		}
	}

	suite.Len(seen, n)
}

func TestCounterRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CounterRepositoryTestSuite))
}
