package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const userIDKey contextKey = "sharer_id"

// ErrUserIDNotFound is returned when no caller ID exists in the request context.
// It only happens when a handler is mounted outside RequireSharer.
var ErrUserIDNotFound = errors.New("sharer id not found in context")

// UserIDFromCtx extracts the calling user's ID placed by RequireSharer.
func UserIDFromCtx(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(userIDKey).(int64)
	if !ok || id <= 0 {
		return 0, ErrUserIDNotFound
	}
	return id, nil
}

// WithUserID returns a new context with the caller ID attached.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}
