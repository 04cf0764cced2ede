package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/shareit/docs/swagger"
	"github.com/ghuser/shareit/pkg/app"
	"github.com/ghuser/shareit/pkg/cache"
	"github.com/ghuser/shareit/pkg/config"
	"github.com/ghuser/shareit/pkg/database"
	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/events"
	"github.com/ghuser/shareit/pkg/httpx"
	"github.com/ghuser/shareit/pkg/logger"
	"github.com/ghuser/shareit/pkg/telemetry"
	bookingApi "github.com/ghuser/shareit/services/booking/application/api"
	itemApi "github.com/ghuser/shareit/services/item/application/api"
	requestApi "github.com/ghuser/shareit/services/request/application/api"
	userApi "github.com/ghuser/shareit/services/user/application/api"
)

// @title			ShareIt API
// @version		1.0
// @description	Peer-to-peer item lending: users, items, bookings and item requests.
// @description	Every route except /users requires the X-Sharer-User-Id header.
// @license.name	MIT
// @license.url	https://opensource.org/licenses/MIT
// @host			localhost:8080
// @BasePath		/
// @schemes		http https
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
	errhttp.SetProduction(cfg.IsProduction())

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg, telemetry.TierServer)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting is optional: log and continue on failure.
	if err := telemetry.SetupSentry(cfg, telemetry.TierServer); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DefinitionDatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBusWithForwarder(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	if err := eventBus.StartForwarder(ctx); err != nil {
		log.Error("failed to start event forwarder", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	// Redis only backs the item cache; run without it rather than refuse to start.
	redisClient, err := cache.Connect(ctx, cfg.RedisURL, cache.Pool{Size: cfg.RedisPoolSize})
	if err != nil {
		log.Warn("redis unavailable, item cache disabled", "error", err)
		redisClient = nil
	} else {
		defer redisClient.Close() //nolint:errcheck
		log.Info("redis connected")
	}

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			IsDevelopment:         cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins:    cfg.CORSAllowedOrigins,
			RequestsPerMinute:     cfg.RequestsPerMinute,
			RateLimitBySharer:     true,
			ContentSecurityPolicy: httpx.SwaggerCSP,
		},
		httpx.Middlewares{
			Recovery: logger.Recovery(log),
			Sentry:   telemetry.SentryMiddleware(),
			Tracing:  otelhttp.NewMiddleware(cfg.ServiceName),
			Logging:  logger.Middleware(log),
		},
	)

	checks := httpx.HealthChecks{"database": pool, "event_bus": eventBus}
	if redisClient != nil {
		checks["redis"] = redisClient
	}
	r.Get("/health", httpx.HealthHandler(checks))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	if err := registerRoutes(r, appConfig); err != nil {
		log.Error("failed to register routes", "error", err)
		os.Exit(1) //nolint:gocritic
	}

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

// registerRoutes mounts every bounded context at the router root.
func registerRoutes(r chi.Router, a *app.Application) error {
	userApi.UserRoutes(r, a)
	itemApi.ItemRoutes(r, a)
	requestApi.RequestRoutes(r, a)
	return bookingApi.BookingRoutes(r, a)
}
