package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/repairdeck/repairshop-service/internal/api/http"
	"github.com/repairdeck/repairshop-service/internal/api/http/handlers"
	"github.com/repairdeck/repairshop-service/internal/config"
	"github.com/repairdeck/repairshop-service/internal/events"
	"github.com/repairdeck/repairshop-service/internal/observability"
	"github.com/repairdeck/repairshop-service/internal/persistence"
	"github.com/repairdeck/repairshop-service/internal/repository"
	"github.com/repairdeck/repairshop-service/internal/service"
	"github.com/repairdeck/repairshop-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	ticketRepo := repository.NewTicketRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	inventoryRepo := repository.NewInventoryRepository(pool)
	invoiceRepo := repository.NewInvoiceRepository(pool)
	technicianRepo := repository.NewTechnicianRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	events.NewRedisPublisher(redis.ClientHandle(), cfg.Events.RedisChannel, logger).RegisterAll(dispatcher)

	ticketService := service.NewTicketService(ticketRepo, dispatcher)
	customerService := service.NewCustomerService(customerRepo)
	inventoryService := service.NewInventoryService(inventoryRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, dispatcher)
	technicianService := service.NewTechnicianService(technicianRepo)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	notificationService.RegisterHandlers()

	reorderWorker := worker.NewReorderWorker(inventoryService, dispatcher, logger)
	if err := reorderWorker.Start(cfg.Inventory.ReorderCheckSpec); err != nil {
		logger.Fatal("failed to start reorder worker", zap.Error(err))
	}
	defer reorderWorker.Stop()

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Tickets:     handlers.NewTicketsHandler(ticketService),
		Customers:   handlers.NewCustomersHandler(customerService),
		Inventory:   handlers.NewInventoryHandler(inventoryService),
		Invoices:    handlers.NewInvoicesHandler(invoiceService),
		Technicians: handlers.NewTechniciansHandler(technicianService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
