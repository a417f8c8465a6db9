package cmd

import (
	"log/slog"
	"os"

	"procurement/internal/adapters/out/ledger"
	"procurement/internal/adapters/out/postgres"
	"procurement/internal/adapters/out/postgres/outboxrepo"
	"procurement/internal/adapters/out/redispub"
	"procurement/internal/adapters/out/vlei"
	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/ports"
	"procurement/internal/jobs"
	"procurement/internal/pkg/clock"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gate       ports.CredentialGate
	assetMover ports.AssetMover
	publisher  ports.EventPublisher
	clock      clock.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gate:       vlei.NewGate(),
		assetMover: ledger.NewLoggingAssetMover(logger),
		publisher:  redispub.NewPublisher(redisClient),
		clock:      clock.NewSystem(),
		logger:     logger,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreatePurchaseOrderCommandHandler() commands.CreatePurchaseOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePurchaseOrderCommandHandler(f, c.gate, c.clock)
}

func (c *CompositionRoot) CreateAcceptPurchaseOrderCommandHandler() commands.AcceptPurchaseOrderCommandHandler {
	return commands.NewAcceptPurchaseOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateFulfillPurchaseOrderCommandHandler() commands.FulfillPurchaseOrderCommandHandler {
	return commands.NewFulfillPurchaseOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateReleasePaymentCommandHandler() commands.ReleasePaymentCommandHandler {
	return commands.NewReleasePaymentCommandHandler(c.orderUoWFactory(), c.assetMover, c.clock)
}

func (c *CompositionRoot) CreateCancelPurchaseOrderCommandHandler() commands.CancelPurchaseOrderCommandHandler {
	return commands.NewCancelPurchaseOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetPurchaseOrderQueryHandler() queries.GetPurchaseOrderQueryHandler {
	return queries.NewGetPurchaseOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartyPurchaseOrdersQueryHandler() queries.GetPartyPurchaseOrdersQueryHandler {
	return queries.NewGetPartyPurchaseOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCredentialStatusQueryHandler() queries.GetCredentialStatusQueryHandler {
	return queries.NewGetCredentialStatusQueryHandler(c.gate)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	relay := jobs.NewOutboxRelayJob(
		outboxrepo.NewGormOutboxRepository(c.gormDB),
		c.publisher,
		c.clock,
		c.config.OutboxBatchSize,
		c.logger,
	)
	return jobs.NewJobManager(relay)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}
