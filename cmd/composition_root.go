package cmd

import (
	"log/slog"

	httpadapter "retail/internal/adapters/in/http"
	"retail/internal/adapters/out/postgres"
	"retail/internal/adapters/out/postgres/userrepo"
	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/application/usecases/queries"
	"retail/internal/core/ports"
	"retail/internal/jobs"
	"retail/internal/pkg/clock"
	"retail/internal/pkg/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      clock.Clock
	hook       commands.StatusChangeHook
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	hook commands.StatusChangeHook,
	m *metrics.Metrics,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock.NewSystem(),
		hook:       hook,
		metrics:    m,
		logger:     logger,
	}
}

func (c *CompositionRoot) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(c.gormDB)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.hook, c.clock)
}

func (c *CompositionRoot) CreateVoidOrderCommandHandler() commands.VoidOrderCommandHandler {
	return commands.NewVoidOrderCommandHandler(c.orderUoWFactory(), c.hook, c.clock)
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateExpirePendingOrdersCommandHandler() commands.ExpirePendingOrdersCommandHandler {
	return commands.NewExpirePendingOrdersCommandHandler(
		c.orderUoWFactory(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.clock,
	)
}

func (c *CompositionRoot) CreateEnsureUserCommandHandler() commands.EnsureUserCommandHandler {
	return commands.NewEnsureUserCommandHandler(c.UserRepository())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.readOrders())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.readOrders())
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.readOrders(), c.uowFactory.Create().CustomerRepository())
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		ChangeStatus:   c.CreateChangeOrderStatusCommandHandler(),
		VoidOrder:      c.CreateVoidOrderCommandHandler(),
		CreateCustomer: c.CreateCreateCustomerCommandHandler(),
		ListOrders:     c.CreateListOrdersQueryHandler(),
		GetOrder:       c.CreateGetOrderQueryHandler(),
		TrackOrder:     c.CreateTrackOrderQueryHandler(),
		OrderStats:     c.CreateGetOrderStatsQueryHandler(),
	})
}

// CreateJobManager returns the background jobs enabled by the configuration.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var expiry jobs.Job
	if c.config.PendingOrderTTL > 0 {
		expiry = jobs.NewExpirePendingOrdersJob(
			c.CreateExpirePendingOrdersCommandHandler(),
			c.metrics,
			c.config.PendingOrderTTL,
			c.config.PendingOrderSweepSchedule,
			c.logger,
		)
	}
	return jobs.NewJobManager(expiry)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// readOrders returns a repository outside any transaction; reads never lock.
func (c *CompositionRoot) readOrders() ports.OrderRepository {
	return c.uowFactory.Create().OrderRepository()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
