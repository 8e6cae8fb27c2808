package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ghuser/schoolsvc/pkg/app"
	"github.com/ghuser/schoolsvc/pkg/config"
	"github.com/ghuser/schoolsvc/pkg/database"
	"github.com/ghuser/schoolsvc/pkg/events"
	"github.com/ghuser/schoolsvc/pkg/httpx"
	"github.com/ghuser/schoolsvc/pkg/logger"
	"github.com/ghuser/schoolsvc/pkg/telemetry"
	schoolApi "github.com/ghuser/schoolsvc/services/school/application/api"
	"github.com/ghuser/schoolsvc/services/school/domain/models"
	"github.com/ghuser/schoolsvc/services/school/domain/repositories"
	schoolpg "github.com/ghuser/schoolsvc/services/school/infrastructure/persistence/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional — log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
	}

	if cfg.SeedSampleData {
		if err := seedSampleSchools(ctx, appConfig); err != nil {
			log.Warn("sample data seeding failed", "error", err)
		}
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Database: pool,
		EventBus: eventBus,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	schoolApi.SchoolRoutes(r, a)
}

// seedSampleSchools inserts 41 sample schools ("1 school" … "41 school") so a
// fresh development database has data to page through. Runs only when the
// table is empty and writes straight through the repository — no events.
func seedSampleSchools(ctx context.Context, a *app.Application) error {
	repo := schoolpg.NewSchoolRepository(a.Db)

	page, err := repo.FindAll(ctx, repositories.PageRequest{Number: 0, Size: 1})
	if err != nil {
		return fmt.Errorf("check school table: %w", err)
	}
	if page.TotalElements > 0 {
		a.Logger.Info("school table already populated, skipping seed", "total", page.TotalElements)
		return nil
	}

	for i := 1; i <= 41; i++ {
		name, err := models.NewSchoolName(fmt.Sprintf("%d school", i))
		if err != nil {
			return fmt.Errorf("seed school %d: %w", i, err)
		}
		if _, err := repo.Save(ctx, models.NewSchool(name)); err != nil {
			return fmt.Errorf("seed school %d: %w", i, err)
		}
	}
	a.Logger.Info("seeded sample schools", "count", 41)
	return nil
}
