package cmd

import (
	"context"
	"errors"
	"log/slog"

	httpin "grocery/internal/adapters/in/http"
	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/services"
	"grocery/internal/core/ports"
	"grocery/internal/jobs"
	"grocery/internal/pkg/clock"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// Dependencies are the outbound adapters the use cases run against.
type Dependencies struct {
	UoWFactory ports.UnitOfWorkFactory
	Publisher  ports.OrderEventPublisher
	Codes      ports.OTPCodeStore
	Users      ports.UserDirectory
	Clock      clock.Clock
	Registry   *prometheus.Registry

	// Closers run in reverse order on Close.
	Closers []func() error
}

type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger
	deps   Dependencies
	router services.EscalationRouter
}

func NewCompositionRoot(cfg Config, logger *slog.Logger, deps Dependencies) (*CompositionRoot, error) {
	router, err := services.NewEscalationRouter(cfg.EscalationWindow)
	if err != nil {
		return nil, err
	}

	if deps.Clock == nil {
		deps.Clock = clock.System{}
	}
	if deps.Registry == nil {
		deps.Registry = prometheus.NewRegistry()
	}

	return &CompositionRoot{
		cfg:    cfg,
		logger: logger,
		deps:   deps,
		router: router,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.deps.UoWFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.deps.Clock, c.deps.Publisher)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.uowFactory(), c.router, c.deps.Clock, c.deps.Publisher)
}

func (c *CompositionRoot) CreateDeclineOrderCommandHandler() commands.DeclineOrderCommandHandler {
	return commands.NewDeclineOrderCommandHandler(c.uowFactory(), c.deps.Clock, c.deps.Publisher)
}

func (c *CompositionRoot) CreateExpireOrdersCommandHandler() commands.ExpireOrdersCommandHandler {
	return commands.NewExpireOrdersCommandHandler(c.uowFactory(), c.router, c.deps.Clock, c.deps.Publisher, c.cfg.PurgeExpired)
}

func (c *CompositionRoot) CreateUpdateStockCommandHandler() commands.UpdateStockCommandHandler {
	return commands.NewUpdateStockCommandHandler(c.shopUoWFactory())
}

func (c *CompositionRoot) CreateSendOTPCommandHandler() commands.SendOTPCommandHandler {
	return commands.NewSendOTPCommandHandler(c.deps.Codes, commands.FixedCode(c.cfg.OTPCode), c.cfg.OTPTTL, c.logger)
}

func (c *CompositionRoot) CreateVerifyOTPCommandHandler() commands.VerifyOTPCommandHandler {
	return commands.NewVerifyOTPCommandHandler(c.deps.Codes, c.deps.Users, c.shopUoWFactory())
}

func (c *CompositionRoot) CreateListVisibleOrdersQueryHandler() queries.ListVisibleOrdersQueryHandler {
	return queries.NewListVisibleOrdersQueryHandler(c.repositoryFactory(), c.router, c.deps.Clock)
}

func (c *CompositionRoot) CreateListAcceptedOrdersQueryHandler() queries.ListAcceptedOrdersQueryHandler {
	return queries.NewListAcceptedOrdersQueryHandler(c.repositoryFactory())
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	return queries.NewListCustomerOrdersQueryHandler(c.repositoryFactory())
}

func (c *CompositionRoot) CreateGetShopsQueryHandler() queries.GetShopsQueryHandler {
	return queries.NewGetShopsQueryHandler(c.repositoryFactory())
}

func (c *CompositionRoot) CreateGetShopInventoryQueryHandler() queries.GetShopInventoryQueryHandler {
	return queries.NewGetShopInventoryQueryHandler(c.repositoryFactory())
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.repositoryFactory())
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		SendOTP:            c.CreateSendOTPCommandHandler(),
		VerifyOTP:          c.CreateVerifyOTPCommandHandler(),
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		AcceptOrder:        c.CreateAcceptOrderCommandHandler(),
		DeclineOrder:       c.CreateDeclineOrderCommandHandler(),
		UpdateStock:        c.CreateUpdateStockCommandHandler(),
		ListVisibleOrders:  c.CreateListVisibleOrdersQueryHandler(),
		ListAcceptedOrders: c.CreateListAcceptedOrdersQueryHandler(),
		ListCustomerOrders: c.CreateListCustomerOrdersQueryHandler(),
		GetShops:           c.CreateGetShopsQueryHandler(),
		GetShopInventory:   c.CreateGetShopInventoryQueryHandler(),
		GetCatalog:         c.CreateGetCatalogQueryHandler(),
	})
}

// CreateEcho builds the HTTP router with every middleware attached.
func (c *CompositionRoot) CreateEcho() (*echo.Echo, error) {
	return httpin.NewRouter(c.CreateHTTPServer(), httpin.RouterConfig{
		Logger:     c.logger,
		Registerer: c.deps.Registry,
		Gatherer:   c.deps.Registry,
	})
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(c.CreateExpireOrdersCommandHandler(), c.cfg.ExpirySchedule, c.logger)
}

// SeedDefaultShops registers the default shops on an empty registry.
func (c *CompositionRoot) SeedDefaultShops(ctx context.Context) error {
	shops, err := DefaultShops()
	if err != nil {
		return err
	}

	seeded, err := SeedShops(ctx, c.deps.UoWFactory, shops)
	if err != nil {
		return err
	}
	if seeded {
		c.logger.InfoContext(ctx, "Seeded default shops", "count", len(shops))
	}
	return nil
}

// Close releases the adapters in reverse order of creation.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.deps.Closers) - 1; i >= 0; i-- {
		errs = append(errs, c.deps.Closers[i]())
	}
	return errors.Join(errs...)
}

func (c *CompositionRoot) uowFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.deps.UoWFactory.Create()
	})
}

func (c *CompositionRoot) shopUoWFactory() commands.ShopUoWFactory {
	return FuncShopUoWFactory(func() commands.ShopUoW {
		return c.deps.UoWFactory.Create()
	})
}

func (c *CompositionRoot) repositoryFactory() queries.RepositoryFactory {
	return FuncRepositoryFactory(func() queries.Repositories {
		return c.deps.UoWFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncShopUoWFactory func() commands.ShopUoW

func (f FuncShopUoWFactory) Create() commands.ShopUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncRepositoryFactory func() queries.Repositories

func (f FuncRepositoryFactory) Create() queries.Repositories {
	return f()
}
