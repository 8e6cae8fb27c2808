package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/schoolsvc/pkg/app"
	"github.com/ghuser/schoolsvc/pkg/config"
	"github.com/ghuser/schoolsvc/pkg/database"
	"github.com/ghuser/schoolsvc/pkg/events"
	"github.com/ghuser/schoolsvc/pkg/logger"
	"github.com/ghuser/schoolsvc/pkg/telemetry"
	schoolevents "github.com/ghuser/schoolsvc/services/school/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic // startup failure, deferred flushes are best-effort
	}
	defer pool.Close()

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

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	log.Info("worker started", "env", cfg.Environment)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("worker shutting down...")
	cancel()
	log.Info("worker stopped")
}

// registerSubscribers wires one consumer per school topic. Add each new
// service's subscriptions here.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := []string{
		schoolevents.TopicSchoolCreated,
		schoolevents.TopicSchoolUpdated,
		schoolevents.TopicSchoolDeleted,
	}
	for _, topic := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handleSchoolEvent(a, topic))
		if err != nil {
			return err
		}
		go drainErrors(a, topic, errCh)
	}
	return nil
}

// handleSchoolEvent logs receipt of a school lifecycle event. This is where
// downstream reactions (cache invalidation, projections, notifications) hook
// in as they are built.
func handleSchoolEvent(a *app.Application, topic string) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var event schoolevents.SchoolEvent
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			a.Logger.ErrorContext(ctx, "failed to decode school event",
				"topic", topic, "message_id", msg.UUID, "error", err)
			// Malformed payloads will never decode; drop instead of retrying.
			return nil
		}

		a.Logger.InfoContext(ctx, "school event received",
			"topic", topic,
			"event_id", event.EventID,
			"school_id", event.SchoolID,
			"name", event.Name,
			"active", event.Active,
		)
		return nil
	}
}

func drainErrors(a *app.Application, topic string, errCh <-chan error) {
	for err := range errCh {
		a.Logger.Error("subscriber handler failed", "topic", topic, "error", err)
	}
}
