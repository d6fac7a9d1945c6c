package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/delivery-ops/internal/api/dto"
	httptransport "github.com/spec-kit/delivery-ops/internal/api/http"
	"github.com/spec-kit/delivery-ops/internal/api/http/handlers"
	"github.com/spec-kit/delivery-ops/internal/auth"
	"github.com/spec-kit/delivery-ops/internal/config"
	"github.com/spec-kit/delivery-ops/internal/events"
	"github.com/spec-kit/delivery-ops/internal/observability"
	"github.com/spec-kit/delivery-ops/internal/persistence"
	"github.com/spec-kit/delivery-ops/internal/repository"
	"github.com/spec-kit/delivery-ops/internal/service"
	"github.com/spec-kit/delivery-ops/internal/worker"
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
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Store.IDStart, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	ids, err := newIDAllocator(ctx, cfg.Store, pg, redis)
	if err != nil {
		logger.Fatal("failed to build id allocator", zap.Error(err))
	}

	store := repository.NewMemoryStore(ids)
	if cfg.Store.SeedSampleData {
		repository.SeedSampleData(store)
	}
	logger.Info("entity store ready",
		zap.String("id_allocator", cfg.Store.IDAllocator),
		zap.Int64("id_start", cfg.Store.IDStart),
		zap.Bool("seeded", cfg.Store.SeedSampleData))

	notifier := worker.NewNotificationWorker(events.NewInMemoryDispatcher(), logger.Named("notification_worker"), cfg.Notification.QueueSize)
	notificationService := service.NewNotificationService(notifier, logger.Named("notifications"), cfg.Notification)
	notifierStopped := worker.StartNotificationWorker(ctx, notifier, notificationService)

	deps := service.Dependencies{Store: store, Dispatcher: notifier, Logger: logger}
	authService := service.NewAuthService(cfg.Auth, store, logger.Named("auth"))
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), store)
	validator := dto.NewValidator(cfg.Validation.PhoneRegion)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, httptransport.MiddlewareConfig{
		Timeout:          cfg.App.RequestTimeout(),
		CORSAllowOrigins: cfg.App.CORSAllowOrigins,
	})

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics, store.Counts),
		Auth:           handlers.NewAuthHandler(authService, validator),
		Branches:       handlers.NewBranchesHandler(service.NewBranchService(deps), validator),
		Agents:         handlers.NewAgentsHandler(service.NewAgentService(deps), validator),
		Customers:      handlers.NewCustomersHandler(service.NewCustomerService(deps), validator),
		Deliveries:     handlers.NewDeliveriesHandler(service.NewDeliveryService(deps), validator),
		Staff:          handlers.NewStaffHandler(service.NewStaffService(deps), service.NewLeaveService(deps), service.NewAttendanceService(deps), validator),
		Reports:        handlers.NewReportsHandler(service.NewDashboardService(deps), service.NewReportService(deps)),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
	notifier.Close()
	<-notifierStopped
}

// newIDAllocator picks the id source named by the store configuration.
func newIDAllocator(ctx context.Context, cfg config.StoreConfig, pg *persistence.Postgres, redis *persistence.Redis) (repository.IDAllocator, error) {
	switch cfg.IDAllocator {
	case config.AllocatorShared:
		return repository.NewSequenceAllocator(cfg.IDStart), nil
	case config.AllocatorPerKind:
		return repository.NewPerKindAllocator(cfg.IDStart), nil
	case config.AllocatorRedis:
		return repository.NewRedisAllocator(ctx, redis.Handle(), cfg.RedisIDKey, cfg.IDStart)
	case config.AllocatorPostgres:
		return repository.NewPostgresAllocator(pg.PoolHandle())
	default:
		return nil, fmt.Errorf("unknown id allocator %q", cfg.IDAllocator)
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
