package app

import (
	"github.com/ghuser/shareit/pkg/cache"
	"github.com/ghuser/shareit/pkg/database"
	"github.com/ghuser/shareit/pkg/events"
	"github.com/ghuser/shareit/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to every bounded context's Routes function during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler; use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "booking approved", "booking_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus   // nil disables outbox publishing
	Redis    *cache.RedisClient // nil disables the item cache
}

// Publisher returns the outbox publisher, or a nil interface when the event
// bus is not configured.
func (a *Application) Publisher() events.TxPublisher {
	if a.EventBus == nil {
		return nil
	}
	return a.EventBus
}

// ItemCache returns the shared item cache, or nil when Redis is not configured.
func (a *Application) ItemCache() *cache.ItemCache {
	return cache.NewItemCache(a.Redis)
}
