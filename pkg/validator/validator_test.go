package validator_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ghuser/shareit/pkg/apperror"
	"github.com/ghuser/shareit/pkg/httpx"
	pkgvalidator "github.com/ghuser/shareit/pkg/validator"
)

type sampleStruct struct {
	Name  string `validate:"required,min=1,max=10"`
	Email string `validate:"omitempty,email"`
	Note  string `validate:"omitempty,notblank"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{Name: "hello", Email: "a@b.io"}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		in    sampleStruct
		field string
		want  string
	}{
		{"required", sampleStruct{}, "Name", "This field is required"},
		{"max", sampleStruct{Name: "12345678901"}, "Name", "Maximum length is 10"},
		{"email", sampleStruct{Name: "ok", Email: "nope"}, "Email", "Must be a valid email address"},
		{"notblank", sampleStruct{Name: "ok", Note: "   "}, "Note", "Must not be blank"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&tt.in))
			if m[tt.field] != tt.want {
				t.Errorf("%s: got %q, want %q", tt.field, m[tt.field], tt.want)
			}
		})
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

type window struct {
	Start time.Time `json:"start" validate:"required,notpast"`
	End   time.Time `json:"end"   validate:"required,notpast,gtfield=Start"`
}

func TestValidate_timeWindow(t *testing.T) {
	now := time.Now()

	ok := window{Start: now.Add(time.Hour), End: now.Add(2 * time.Hour)}
	if err := pkgvalidator.Validate(&ok); err != nil {
		t.Fatalf("expected valid window, got %v", err)
	}

	past := window{Start: now.Add(-time.Hour), End: now.Add(time.Hour)}
	m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&past))
	if m["start"] != "Must not be in the past" {
		t.Errorf("start: got %q", m["start"])
	}

	inverted := window{Start: now.Add(2 * time.Hour), End: now.Add(time.Hour)}
	m = pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&inverted))
	if m["end"] != "Must be after start" {
		t.Errorf("end: got %q", m["end"])
	}
}

// --- ValidateRequest ---

type userReq struct {
	Name  string `json:"name"  validate:"required,notblank"`
	Email string `json:"email" validate:"required,email"`
}

func TestValidateRequest_valid(t *testing.T) {
	body := `{"name":"Ann","email":"ann@example.com"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[userReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Name != "Ann" {
		t.Errorf("unexpected Name: %q", req.Name)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[userReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	body := `{"name":"Ann"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[userReq](w, r)
	if ok {
		t.Fatal("expected ok=false for missing email")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "email: This field is required") {
		t.Errorf("expected email field message in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_tooLarge(t *testing.T) {
	body := `{"name":"` + strings.Repeat("a", 64) + `","email":"ann@example.com"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	h := httpx.RequestBodyLimit(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pkgvalidator.ValidateRequest[userReq](w, r)
	}))
	h.ServeHTTP(w, r)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", w.Code)
	}
}

func TestDecode_kind(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"  ","email":"ann@example.com"}`))
	_, err := pkgvalidator.Decode[userReq](r)
	if !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("expected validation kind, got %v", err)
	}
	if got := apperror.Message(err); got != "Validation failed: name: Must not be blank" {
		t.Errorf("unexpected message %q", got)
	}
}
