package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/supporthub/ticket-service/internal/api/http"
	"github.com/supporthub/ticket-service/internal/api/http/handlers"
	"github.com/supporthub/ticket-service/internal/config"
	"github.com/supporthub/ticket-service/internal/events"
	"github.com/supporthub/ticket-service/internal/observability"
	"github.com/supporthub/ticket-service/internal/repository"
	"github.com/supporthub/ticket-service/internal/service"
	"github.com/supporthub/ticket-service/internal/worker"
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

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics(cfg.Metrics.Namespace)
	}

	ticketRepo := repository.NewMemoryTicketRepository()
	dispatcher := events.NewInMemoryDispatcher()

	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:        ticketRepo,
		Dispatcher:        dispatcher,
		DefaultAssigneeID: cfg.Ticketing.DefaultAssigneeID,
	})
	auditService := service.NewAuditService(dispatcher, logger, metrics)
	worker.StartAuditRecorder(auditService)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, ticketRepo),
		Tickets: handlers.NewTicketsHandler(ticketService),
		Metrics: metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	logger.Info("service started",
		zap.String("addr", cfg.App.Addr()),
		zap.String("env", cfg.App.Env),
		zap.String("version", cfg.App.Version))

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
