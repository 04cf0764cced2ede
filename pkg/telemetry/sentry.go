package telemetry

import (
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/ghuser/shareit/pkg/config"
	"github.com/ghuser/shareit/pkg/httpx"
)

// SetupSentry initializes the Sentry SDK for tier. No-ops if the DSN is empty.
func SetupSentry(cfg *config.Config, tier string) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          cfg.ServiceName + "@" + cfg.ServiceVersion,
		ServerName:       cfg.ServiceName + "-" + tier,
		TracesSampleRate: 0.2,
		BeforeSend:       tagSharer,
	}); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("tier", tier)
	})
	return nil
}

// tagSharer promotes the caller header to a searchable user id.
func tagSharer(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	if event.Request == nil {
		return event
	}
	if id := event.Request.Headers[httpx.SharerHeader]; id != "" {
		event.User.ID = id
	}
	return event
}

// SentryFlush flushes buffered events before process exit.
func SentryFlush() {
	sentry.Flush(2 * time.Second)
}

// SentryMiddleware captures panics and re-panics so the outer Recovery
// middleware still writes the 500 response.
func SentryMiddleware() func(http.Handler) http.Handler {
	h := sentryhttp.New(sentryhttp.Options{Repanic: true, Timeout: 2 * time.Second})
	return h.Handle
}
