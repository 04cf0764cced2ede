package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/shareit/pkg/apperror"
)

var (
	errThingMissing = apperror.NotFound("thing not found")
	errThingTaken   = apperror.Conflict("thing already taken")
	errThingBad     = apperror.Invalid("thing is malformed")
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", errThingMissing, http.StatusNotFound, "thing not found"},
		{"conflict", errThingTaken, http.StatusConflict, "thing already taken"},
		{"validation", errThingBad, http.StatusBadRequest, "thing is malformed"},
		{"wrapped not found", fmt.Errorf("get thing 4: %w", errThingMissing), http.StatusNotFound, "thing not found"},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError, "something unexpected"},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError, "context: db down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			var body ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("response body is not valid JSON: %v", err)
			}
			if body.Error != tt.wantMsg {
				t.Fatalf("expected message %q, got %q", tt.wantMsg, body.Error)
			}
		})
	}
}

func TestWriteError_ProductionMasksInternal(t *testing.T) {
	SetProduction(true)
	t.Cleanup(func() { SetProduction(false) })

	w := httptest.NewRecorder()
	WriteError(w, errors.New("pq: password authentication failed"))
	if got := w.Body.String(); got != "{\"error\":\"Internal Server Error\"}\n" {
		t.Fatalf("unexpected body %q", got)
	}

	w = httptest.NewRecorder()
	WriteError(w, errThingMissing)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, errThingMissing)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
