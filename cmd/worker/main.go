package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/shareit/pkg/cache"
	"github.com/ghuser/shareit/pkg/config"
	"github.com/ghuser/shareit/pkg/database"
	"github.com/ghuser/shareit/pkg/events"
	"github.com/ghuser/shareit/pkg/logger"
	"github.com/ghuser/shareit/pkg/telemetry"
	bookingEvents "github.com/ghuser/shareit/services/booking/domain/events"
	itemEvents "github.com/ghuser/shareit/services/item/domain/events"
	"github.com/ghuser/shareit/services/item/infrastructure/persistence/postgres"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg, telemetry.TierWorker)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg, telemetry.TierWorker); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DefinitionDatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.Connect(ctx, cfg.RedisURL, cache.Pool{Size: cfg.RedisPoolSize})
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	items := postgres.NewItemRepository(pool, nil, log)
	subs := map[string]func(context.Context, *message.Message) error{
		itemEvents.TopicItemCreated:             handleItemCreated(items, cache.NewItemCache(redisClient), log),
		bookingEvents.TopicBookingCreated:       handleBookingCreated(log),
		bookingEvents.TopicBookingStatusChanged: handleBookingStatusChanged(log),
	}
	if err := registerSubscribers(ctx, eventBus, subs, log); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancel()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

type subscriber interface {
	Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error)
}

// registerSubscribers subscribes every handler and drains its error channel
// in the background so the bus never blocks.
func registerSubscribers(
	ctx context.Context,
	bus subscriber,
	subs map[string]func(context.Context, *message.Message) error,
	log logger.Logger,
) error {
	topics := make([]string, 0, len(subs))
	for topic, handler := range subs {
		errCh, err := bus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		go func() {
			for err := range errCh {
				log.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}()
		topics = append(topics, topic)
	}

	log.Info("event subscribers registered", "topics", topics)
	return nil
}
