package handlers

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ghuser/shareit/pkg/apperror"
	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/httpx"
	pkgvalidator "github.com/ghuser/shareit/pkg/validator"
	bookingmodels "github.com/ghuser/shareit/services/booking/domain/models"
)

var (
	errMissingText   = apperror.Invalid("text is required")
	errApprovedParam = apperror.Invalid("approved must be true or false")
)

// Forward collects what a request sends upstream once every check passes.
type Forward struct {
	Query url.Values
	Body  []byte
}

// Check validates one aspect of r. On failure it writes the error response
// and returns false.
type Check func(w http.ResponseWriter, r *http.Request, fwd *Forward) bool

// Body decodes and validates the JSON body as T, then forwards the original bytes.
func Body[T any]() Check {
	return func(w http.ResponseWriter, r *http.Request, fwd *Forward) bool {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			errhttp.WriteStatus(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		r.Body = io.NopCloser(bytes.NewReader(raw))
		if _, ok := pkgvalidator.ValidateRequest[T](w, r); !ok {
			return false
		}
		fwd.Body = raw
		return true
	}
}

// PathIDs requires each named chi URL parameter to be a positive integer.
func PathIDs(names ...string) Check {
	return func(w http.ResponseWriter, r *http.Request, _ *Forward) bool {
		for _, name := range names {
			if _, err := httpx.PathID(r, name); err != nil {
				errhttp.WriteError(w, err)
				return false
			}
		}
		return true
	}
}

// Paged validates from/size and forwards them with defaults filled in.
func Paged() Check {
	return func(w http.ResponseWriter, r *http.Request, fwd *Forward) bool {
		page, err := httpx.ParsePage(r)
		if err != nil {
			errhttp.WriteError(w, err)
			return false
		}
		fwd.Query.Set("from", strconv.Itoa(page.From))
		fwd.Query.Set("size", strconv.Itoa(page.Size))
		return true
	}
}

// SearchText requires the text parameter, which may be blank.
func SearchText() Check {
	return func(w http.ResponseWriter, r *http.Request, fwd *Forward) bool {
		q := r.URL.Query()
		if !q.Has("text") {
			errhttp.WriteError(w, errMissingText)
			return false
		}
		fwd.Query.Set("text", q.Get("text"))
		return true
	}
}

// BookingState validates state and forwards it upper-cased, defaulting to ALL.
func BookingState() Check {
	return func(w http.ResponseWriter, r *http.Request, fwd *Forward) bool {
		state, err := bookingmodels.ParseState(r.URL.Query().Get("state"))
		if err != nil {
			errhttp.WriteError(w, err)
			return false
		}
		fwd.Query.Set("state", string(state))
		return true
	}
}

// Approved requires approved=true|false.
func Approved() Check {
	return func(w http.ResponseWriter, r *http.Request, fwd *Forward) bool {
		approved, err := strconv.ParseBool(strings.TrimSpace(r.URL.Query().Get("approved")))
		if err != nil {
			errhttp.WriteError(w, errApprovedParam)
			return false
		}
		fwd.Query.Set("approved", strconv.FormatBool(approved))
		return true
	}
}
