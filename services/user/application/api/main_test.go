package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/shareit/pkg/logger"
	appsvcs "github.com/ghuser/shareit/services/user/application/services"
	"github.com/ghuser/shareit/services/user/infrastructure/persistence/memory"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	Mount(r, &appsvcs.Services{User: appsvcs.NewUserService(memory.NewUserRepository(), logger.Nop())})
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestUserRoutes_Lifecycle(t *testing.T) {
	h := newTestRouter(t)

	rr := do(t, h, http.MethodPost, "/users", `{"name":"Ann","email":"ann@example.com"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.EqualValues(t, 1, created["id"])

	rr = do(t, h, http.MethodPatch, "/users/1", `{"name":"Anna"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"name":"Anna"`)
	assert.Contains(t, rr.Body.String(), `"email":"ann@example.com"`)

	rr = do(t, h, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":1`)

	rr = do(t, h, http.MethodDelete, "/users/1", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, h, http.MethodGet, "/users/1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"user not found"}`, rr.Body.String())
}

func TestUserRoutes_Errors(t *testing.T) {
	h := newTestRouter(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/users", `{"name":"Ann","email":"ann@example.com"}`).Code)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"invalid email", http.MethodPost, "/users", `{"name":"Bob","email":"nope"}`, http.StatusBadRequest},
		{"missing name", http.MethodPost, "/users", `{"email":"bob@example.com"}`, http.StatusBadRequest},
		{"duplicate email", http.MethodPost, "/users", `{"name":"Bob","email":"ann@example.com"}`, http.StatusConflict},
		{"bad id", http.MethodGet, "/users/abc", "", http.StatusBadRequest},
		{"delete missing", http.MethodDelete, "/users/42", "", http.StatusNotFound},
		{"patch missing", http.MethodPatch, "/users/42", `{"name":"x"}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			assert.Contains(t, rr.Body.String(), `"error"`)
		})
	}
}
