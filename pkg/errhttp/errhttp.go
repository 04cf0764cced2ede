// Package errhttp is the single place where errors become HTTP responses.
// Domain errors carry an apperror kind; the kind picks the status code and the
// AppError message becomes the response body.
package errhttp

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/ghuser/shareit/pkg/apperror"
	"github.com/ghuser/shareit/pkg/httpx"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

var production atomic.Bool

// SetProduction toggles masking of 500 messages. Call once at startup.
func SetProduction(on bool) {
	production.Store(on)
}

// WriteError maps err to an HTTP status code and writes {"error": message}.
// Uses errors.Is() so wrapped domain errors are matched by kind.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, production.Load()))
}

// StatusFor returns the HTTP status for err's kind.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		return http.StatusBadRequest // 400
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, apperror.ErrConflict):
		return http.StatusConflict // 409
	default:
		return http.StatusInternalServerError // 500
	}
}

// WriteStatus writes a message with an explicit status, for transport-level
// failures that have no domain kind (413, 502).
func WriteStatus(w http.ResponseWriter, status int, message string) {
	httpx.JSONError(w, status, message)
}
