package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any dependency that exposes a Ping method
// (database.DB, cache.RedisClient, events.EventBus and the gateway's upstream
// client all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks maps a component name to its checker. Nil checkers are skipped.
type HealthChecks map[string]HealthChecker

// HealthHandler runs every registered checker and reports "degraded" with
// 503 if any of them fail. The response is a flat object: {"status": ...,
// "<name>": "ok"|"unreachable"}.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := map[string]string{"status": "ok"}
		for name, c := range checks {
			if c == nil {
				continue
			}
			if err := c.Ping(ctx); err != nil {
				resp["status"] = "degraded"
				resp[name] = "unreachable"
				continue
			}
			resp[name] = "ok"
		}

		status := http.StatusOK
		if resp["status"] != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
