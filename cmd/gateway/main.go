package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ghuser/shareit/pkg/config"
	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	"github.com/ghuser/shareit/pkg/logger"
	"github.com/ghuser/shareit/pkg/telemetry"
	gatewayApi "github.com/ghuser/shareit/services/gateway/application/api"
	"github.com/ghuser/shareit/services/gateway/application/handlers"
	"github.com/ghuser/shareit/services/gateway/infrastructure/upstream"
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

	log := logger.New(cfg).With("tier", "gateway")
	errhttp.SetProduction(cfg.IsProduction())

	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg, telemetry.TierGateway)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg, telemetry.TierGateway); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	client, err := upstream.NewClient(cfg.ServerURL, cfg.UpstreamTimeout)
	if err != nil {
		log.Error("invalid server url", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			RequestsPerMinute:  cfg.RequestsPerMinute,
		},
		httpx.Middlewares{
			Recovery: logger.Recovery(log),
			Sentry:   telemetry.SentryMiddleware(),
			Tracing:  otelhttp.NewMiddleware(cfg.ServiceName + "-gateway"),
			Logging:  logger.Middleware(log),
		},
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{"server": client}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	gatewayApi.Mount(r, handlers.NewProxy(client, log), log)

	srv := httpx.NewServer(cfg.GatewayAddr, r)

	go func() {
		log.Info("gateway listening", "addr", srv.Addr, "server_url", cfg.ServerURL, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("gateway error", "error", err)
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
	log.Info("gateway stopped")
}
