package cmd

import (
	"log/slog"

	httpin "atelier/internal/adapters/in/http"
	"atelier/internal/adapters/out/postgres"
	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/services"
	"atelier/internal/core/ports"
	"atelier/internal/jobs"
	"atelier/internal/pkg/locker"
	"atelier/internal/pkg/metrics"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, domain services, and use case handlers.
// The keyed mutex and the notifier are shared across handlers; everything
// else is created per request through the unit of work factory.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	locks      *locker.KeyedMutex
	notifier   ports.Notifier
	calc       services.PricingService
	metrics    *metrics.WorkflowMetrics
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from the configuration and
// the already-opened database connection.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	notifier ports.Notifier,
	calc services.PricingService,
	logger *slog.Logger,
) *CompositionRoot {
	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		locks:      locker.NewKeyedMutex(),
		notifier:   notifier,
		calc:       calc,
		metrics:    metrics.NewWorkflowMetrics(),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) tailorUoWFactory() commands.TailorUoWFactory {
	return FuncTailorUoWFactory(func() commands.TailorUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.calc)
}

func (c *CompositionRoot) CreateUpdateOrderConfigCommandHandler() commands.UpdateOrderConfigCommandHandler {
	return commands.NewUpdateOrderConfigCommandHandler(c.orderUoWFactory(), c.locks, c.calc)
}

func (c *CompositionRoot) CreateAssignTailorCommandHandler() commands.AssignTailorCommandHandler {
	return commands.NewAssignTailorCommandHandler(c.fullUoWFactory(), c.locks, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.orderUoWFactory(), c.locks, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateOverrideOrderStatusCommandHandler() commands.OverrideOrderStatusCommandHandler {
	return commands.NewOverrideOrderStatusCommandHandler(c.orderUoWFactory(), c.locks, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCreateTailorCommandHandler() commands.CreateTailorCommandHandler {
	return commands.NewCreateTailorCommandHandler(c.tailorUoWFactory())
}

func (c *CompositionRoot) CreateSetTailorActiveCommandHandler() commands.SetTailorActiveCommandHandler {
	return commands.NewSetTailorActiveCommandHandler(c.tailorUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllTailorsQueryHandler() queries.GetAllTailorsQueryHandler {
	return queries.NewGetAllTailorsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the inbound HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderConfigCommandHandler(),
		c.CreateAssignTailorCommandHandler(),
		c.CreateTransitionOrderCommandHandler(),
		c.CreateOverrideOrderStatusCommandHandler(),
		c.CreateCreateTailorCommandHandler(),
		c.CreateSetTailorActiveCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetAllTailorsQueryHandler(),
		c.metrics,
	)
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.orderUoWFactory(), c.notifier, c.config.StalePendingAfter, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTailorUoWFactory func() commands.TailorUoW

func (f FuncTailorUoWFactory) Create() commands.TailorUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
