package cmd

import (
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"

	inrabbitmq "fastfood/internal/adapters/in/rabbitmq"
	"fastfood/internal/adapters/out/postgres"
	"fastfood/internal/adapters/out/postgres/catalogrepo"
	outrabbitmq "fastfood/internal/adapters/out/rabbitmq"
	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/application/usecases/queries"
	"fastfood/internal/jobs"
)

// CompositionRoot wires together all application dependencies.
type CompositionRoot struct {
	configs Config

	gormDB      *gorm.DB
	amqpChannel *amqp.Channel

	uowFactory  *postgres.GormUnitOfWorkFactory
	catalogRepo *catalogrepo.GormCatalogRepository
}

// NewCompositionRoot creates a new composition root over the shared
// database connection and broker channel.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, amqpChannel *amqp.Channel) CompositionRoot {
	return CompositionRoot{
		configs:     configs,
		gormDB:      gormDB,
		amqpChannel: amqpChannel,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB),
		catalogRepo: catalogrepo.NewGormCatalogRepository(gormDB),
	}
}

// CreateSubmitOrderCommandHandler creates a handler that publishes order
// creation requests to the work queue.
func (c *CompositionRoot) CreateSubmitOrderCommandHandler() (commands.SubmitOrderCommandHandler, error) {
	publisher, err := outrabbitmq.NewPublisher(c.amqpChannel, c.configs.OrdersQueueName)
	if err != nil {
		return commands.SubmitOrderCommandHandler{}, err
	}
	return commands.NewSubmitOrderCommandHandler(publisher), nil
}

// CreateCreateOrderCommandHandler creates a handler for persisting new
// orders from queued creation requests.
func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.createOrderUoWFactory(),
		c.catalogRepo,
		c.catalogRepo,
	)
}

// CreateAcceptOrderCommandHandler creates a handler for accepting pending orders.
func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.createOrderUoWFactory())
}

// CreateRejectOrderCommandHandler creates a handler for rejecting pending orders.
func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.createOrderUoWFactory())
}

// CreateCancelOrderCommandHandler creates a handler for canceling orders.
func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.createOrderUoWFactory())
}

// CreateGetPendingOrdersQueryHandler creates a handler for listing pending orders.
func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

// CreateGetOrderByIDQueryHandler creates a handler for reading a single order.
func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

// CreateOrderConsumer creates the worker that drains the order creation queue.
func (c *CompositionRoot) CreateOrderConsumer(timeout time.Duration, logger *slog.Logger) *inrabbitmq.Consumer {
	handler := c.CreateCreateOrderCommandHandler()
	return inrabbitmq.NewConsumer(c.amqpChannel, c.configs.OrdersQueueName, &handler, timeout, logger)
}

// CreateJobManager creates the manager for background jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetPendingOrdersQueryHandler(), logger)
}

func (c *CompositionRoot) createOrderUoWFactory() FuncOrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// FuncOrderUoWFactory adapts a function to the commands.OrderUoWFactory interface.
type FuncOrderUoWFactory func() commands.OrderUoW

// Create calls the underlying function to create a new OrderUoW.
func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
