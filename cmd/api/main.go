package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/employee-service/internal/api/http"
	"github.com/spec-kit/employee-service/internal/api/http/handlers"
	"github.com/spec-kit/employee-service/internal/auth"
	"github.com/spec-kit/employee-service/internal/config"
	"github.com/spec-kit/employee-service/internal/events"
	"github.com/spec-kit/employee-service/internal/observability"
	"github.com/spec-kit/employee-service/internal/persistence"
	"github.com/spec-kit/employee-service/internal/repository"
	"github.com/spec-kit/employee-service/internal/service"
	"github.com/spec-kit/employee-service/internal/worker"
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

	metrics := observability.NewMetrics()

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

	employeeRepo := repository.NewEmployeeRepository(pg.PoolHandle())
	dispatcher := events.NewInMemoryDispatcher()

	employeeService := service.NewEmployeeService(*cfg, service.EmployeeDependencies{
		EmployeeRepo: employeeRepo,
		Dispatcher:   dispatcher,
	})
	auditService := service.NewAuditService(dispatcher, logger, cfg.Notification)
	worker.StartAuditWorker(auditService)

	authMiddleware := auth.NewAuthMiddleware(employeeService.TokenManager())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis)
	employeesHandler := handlers.NewEmployeesHandler(employeeService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         healthHandler,
		Employees:      employeesHandler,
		AuthMiddleware: authMiddleware,
		LoginLimiter:   httptransport.LoginRateLimiter(redis.Client, cfg.RateLimit, logger),
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
