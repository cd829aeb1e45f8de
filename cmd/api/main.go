package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/inbox-assistant/internal/ai"
	httptransport "github.com/spec-kit/inbox-assistant/internal/api/http"
	"github.com/spec-kit/inbox-assistant/internal/api/http/handlers"
	"github.com/spec-kit/inbox-assistant/internal/config"
	"github.com/spec-kit/inbox-assistant/internal/events"
	"github.com/spec-kit/inbox-assistant/internal/observability"
	"github.com/spec-kit/inbox-assistant/internal/persistence"
	"github.com/spec-kit/inbox-assistant/internal/repository"
	"github.com/spec-kit/inbox-assistant/internal/service"
	"github.com/spec-kit/inbox-assistant/internal/worker"
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

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	pool := pg.PoolHandle()
	ticketRepo := repository.NewTicketRepository(pool)
	metricsRepo := repository.NewMetricsRepository(pool)

	aiClient := ai.NewOpenAIClient(cfg.AI)

	extractionService := service.NewExtractionService(service.ExtractionDependencies{
		Client:       aiClient,
		Logger:       logger,
		Metrics:      metrics,
		Dispatcher:   dispatcher,
		SystemPrompt: service.LoadExtractionPrompt(cfg.AI.PromptPath, logger),
		Temperature:  cfg.AI.Temperature,
	})
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo: ticketRepo,
		Dispatcher: dispatcher,
	})
	metricsService := service.NewMetricsService(service.MetricsDependencies{
		MetricsRepo: metricsRepo,
		Cache:       redis,
		Dispatcher:  dispatcher,
		Logger:      logger,
		CacheTTL:    cfg.Metrics.SummaryCacheTTL(),
	})
	worker.StartMetricsWorker(metricsService)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Extract: handlers.NewExtractHandler(extractionService),
		Tickets: handlers.NewTicketsHandler(ticketService),
		Metrics: handlers.NewMetricsHandler(metricsService),
	})

	// Best-effort model preload for a cold local Ollama endpoint. Bounded,
	// off the request path, never blocks startup.
	if strings.Contains(cfg.AI.BaseURL, "localhost:11434") {
		go func() {
			warmupCtx, warmupCancel := context.WithTimeout(context.Background(), cfg.AI.WarmupTimeout())
			defer warmupCancel()
			ai.Warmup(warmupCtx, aiClient, logger)
		}()
	}

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
