package auth

import (
	"net/http"

	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	"github.com/ghuser/shareit/pkg/logger"
)

// RequireSharer is a chi middleware that reads the X-Sharer-User-Id header and
// injects the caller ID into the request context. There is no authentication:
// the header is trusted as-is. A missing or non-numeric header yields 400.
//
// After this middleware, handlers can safely call auth.UserIDFromCtx(r.Context()).
func RequireSharer(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := httpx.SharerID(r)
			if err != nil {
				log.WarnContext(r.Context(), "rejected request without valid sharer header",
					"header", r.Header.Get(httpx.SharerHeader), "error", err)
				errhttp.WriteError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), id)))
		})
	}
}
