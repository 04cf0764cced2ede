package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/shareit/pkg/httpx"
	"github.com/ghuser/shareit/pkg/logger"
	itemsvcs "github.com/ghuser/shareit/services/item/application/services"
	itemmemory "github.com/ghuser/shareit/services/item/infrastructure/persistence/memory"
	appsvcs "github.com/ghuser/shareit/services/request/application/services"
	"github.com/ghuser/shareit/services/request/infrastructure/persistence/memory"
	usermodels "github.com/ghuser/shareit/services/user/domain/models"
	usermemory "github.com/ghuser/shareit/services/user/infrastructure/persistence/memory"
)

type testEnv struct {
	router http.Handler
	items  *itemsvcs.ItemService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	users := usermemory.NewUserRepository()
	for _, u := range []*usermodels.User{
		{Name: "Ann", Email: "ann@example.com"},
		{Name: "Bob", Email: "bob@example.com"},
	} {
		require.NoError(t, users.Save(context.Background(), u))
	}

	requests := memory.NewRequestRepository()
	itemRepo := itemmemory.NewItemRepository()
	items := itemsvcs.NewItemService(itemRepo, itemmemory.NewCommentRepository(),
		itemmemory.NewBookingReader(), requests, users, logger.Nop())

	r := chi.NewRouter()
	Mount(r, &appsvcs.Services{
		Request: appsvcs.NewRequestService(requests, itemRepo, users, logger.Nop()),
	}, logger.Nop())
	return &testEnv{router: r, items: items}
}

func (e *testEnv) do(t *testing.T, method, path string, userID int64, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if userID > 0 {
		req.Header.Set(httpx.SharerHeader, strconv.FormatInt(userID, 10))
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func TestRequestRoutes_Lifecycle(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/requests", 1, `{"description":"Need a ladder"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.EqualValues(t, 1, created["id"])
	assert.EqualValues(t, 1, created["requesterId"])
	assert.Equal(t, []any{}, created["items"])
	assert.NotEmpty(t, created["created"])

	rid := int64(1)
	_, err := env.items.Create(context.Background(), 2, itemsvcs.CreateItemInput{
		Name: "Ladder", Description: "3m aluminium", Available: true, RequestID: &rid,
	})
	require.NoError(t, err)

	rr = env.do(t, http.MethodGet, "/requests/1", 2, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var got struct {
		Items []struct {
			Name      string `json:"name"`
			RequestID int64  `json:"requestId"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Ladder", got.Items[0].Name)
	assert.EqualValues(t, 1, got.Items[0].RequestID)

	rr = env.do(t, http.MethodGet, "/requests", 1, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var own []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &own))
	assert.Len(t, own, 1)

	rr = env.do(t, http.MethodGet, "/requests/all", 1, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = env.do(t, http.MethodGet, "/requests/all?from=0&size=5", 2, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var others []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &others))
	assert.Len(t, others, 1)
}

func TestRequestRoutes_Errors(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		method string
		path   string
		user   int64
		body   string
		status int
	}{
		{"missing header", http.MethodGet, "/requests", 0, "", http.StatusBadRequest},
		{"blank description", http.MethodPost, "/requests", 1, `{"description":"   "}`, http.StatusBadRequest},
		{"unknown user", http.MethodPost, "/requests", 42, `{"description":"tent"}`, http.StatusNotFound},
		{"unknown request", http.MethodGet, "/requests/7", 1, "", http.StatusNotFound},
		{"bad request id", http.MethodGet, "/requests/abc", 1, "", http.StatusBadRequest},
		{"negative from", http.MethodGet, "/requests/all?from=-1", 1, "", http.StatusBadRequest},
		{"zero size", http.MethodGet, "/requests/all?size=0", 1, "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(t, tt.method, tt.path, tt.user, tt.body)
			assert.Equal(t, tt.status, rr.Code, rr.Body.String())
			assert.Contains(t, rr.Body.String(), `"error"`)
		})
	}
}
