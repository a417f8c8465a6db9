package postgres_test

import (
	"context"
	"testing"
	"time"

	"procurement/internal/adapters/out/postgres"
	"procurement/internal/adapters/out/postgres/counterrepo"
	"procurement/internal/adapters/out/postgres/orderrepo"
	"procurement/internal/adapters/out/postgres/outboxrepo"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.PartyOrderDTO{},
		&counterrepo.CounterDTO{},
		&outboxrepo.OutboxDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE purchase_orders, party_orders, counters, outbox").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkTestSuite) newOrder(id kernel.OrderID) *purchaseorder.PurchaseOrder {
	buyer, err := kernel.NewParty("GDBUYER")
	suite.Require().NoError(err)
	seller, err := kernel.NewParty("GDSELLER")
	suite.Require().NoError(err)

	po, err := purchaseorder.NewPurchaseOrder(
		id,
		buyer,
		seller,
		"5493001KJTIIGC8Y1R12",
		"5493001KJTIIGC8Y1R17",
		"EIDbuyeraid",
		"EIDselleraid",
		"1000 widgets",
		kernel.NewAmount(1_000_000_000),
		time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	return po
}

func (suite *UnitOfWorkTestSuite) TestCommit_PersistsAllWritesTogether() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	id, err := uow.CounterRepository().NextID(ctx)
	suite.Require().NoError(err)
	suite.Equal(kernel.OrderID(1), id)

	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder(id)))
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, ports.OutboxMessage{
		ID:        uuid.New(),
		Topic:     "po_created",
		Payload:   []byte(`{"id":1}`),
		CreatedAt: time.Now(),
	}))

	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(kernel.OrderID(1), loaded.ID())

	pending, err := outboxrepo.NewGormOutboxRepository(suite.db).ListPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Len(pending, 1)
	suite.Equal("po_created", pending[0].Topic)
}

func (suite *UnitOfWorkTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	id, err := uow.CounterRepository().NextID(ctx)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder(id)))
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, ports.OutboxMessage{
		ID:        uuid.New(),
		Topic:     "po_created",
		Payload:   []byte(`{"id":1}`),
		CreatedAt: time.Now(),
	}))

	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().OrderRepository().Get(ctx, 1)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	pending, err := outboxrepo.NewGormOutboxRepository(suite.db).ListPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(pending)

	// The discarded allocation is reused: ids stay gapless when creation fails.
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow2.Begin(ctx))
	id, err = uow2.CounterRepository().NextID(ctx)
	suite.Require().NoError(err)
	suite.Equal(kernel.OrderID(1), id)
	suite.Require().NoError(uow2.Commit(ctx))
}

func (suite *UnitOfWorkTestSuite) TestCommitWithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkTestSuite) TestRollbackWithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkTestSuite) TestOutbox_MarkPublished() {
	ctx := context.Background()
	repo := outboxrepo.NewGormOutboxRepository(suite.db)

	id := uuid.New()
	suite.Require().NoError(repo.Add(ctx, ports.OutboxMessage{
		ID:        id,
		Topic:     "po_accepted",
		Payload:   []byte(`{"id":1}`),
		CreatedAt: time.Now(),
	}))

	suite.Require().NoError(repo.MarkPublished(ctx, id, time.Now()))

	pending, err := repo.ListPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(pending)
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}
