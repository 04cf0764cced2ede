package httpx

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/shareit/pkg/apperror"
)

// SharerHeader identifies the calling user. No authentication scheme exists;
// the value is trusted as-is.
const SharerHeader = "X-Sharer-User-Id"

// Pagination defaults applied when from/size are absent from the query string.
const (
	DefaultFrom = 0
	DefaultSize = 10
)

var (
	errMissingSharer = apperror.Invalid("header " + SharerHeader + " is required")
	errInvalidSharer = apperror.Invalid("header " + SharerHeader + " must be a positive integer")
	errInvalidFrom   = apperror.Invalid("from must be a non-negative integer")
	errInvalidSize   = apperror.Invalid("size must be a positive integer")
)

// Page is an offset/limit window over an ordered result set.
type Page struct {
	From int // zero-based offset of the first row
	Size int // maximum number of rows
}

// SharerID returns the caller's user ID from the X-Sharer-User-Id header.
func SharerID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.Header.Get(SharerHeader))
	if raw == "" {
		return 0, errMissingSharer
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidSharer
	}
	return id, nil
}

// PathID parses the chi URL parameter name as a positive int64. Malformed
// values are a validation error. A well-formed id below 1 can never match a
// row, so it reports not found the same way a missing entity does.
func PathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.Invalid(name + " must be a positive integer")
	}
	if id <= 0 {
		return 0, apperror.NotFound(strings.TrimSuffix(name, "ID") + " not found")
	}
	return id, nil
}

// ParsePage reads the from/size query parameters, applying defaults for
// absent values and rejecting from < 0 or size <= 0.
func ParsePage(r *http.Request) (Page, error) {
	q := r.URL.Query()
	page := Page{From: DefaultFrom, Size: DefaultSize}

	if q.Has("from") {
		v, err := strconv.Atoi(q.Get("from"))
		if err != nil || v < 0 {
			return Page{}, errInvalidFrom
		}
		page.From = v
	}
	if q.Has("size") {
		v, err := strconv.Atoi(q.Get("size"))
		if err != nil || v <= 0 {
			return Page{}, errInvalidSize
		}
		page.Size = v
	}
	return page, nil
}
