package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/shareit/pkg/httpx"
	"github.com/ghuser/shareit/pkg/logger"
	"github.com/ghuser/shareit/services/gateway/application/handlers"
	"github.com/ghuser/shareit/services/gateway/infrastructure/upstream"
)

// recorder captures forwarded requests and replies with a fixed response.
type recorder struct {
	calls []upstream.Request
	resp  *upstream.Response
	err   error
}

func (u *recorder) Do(_ context.Context, req upstream.Request) (*upstream.Response, error) {
	u.calls = append(u.calls, req)
	if u.err != nil {
		return nil, u.err
	}
	return u.resp, nil
}

func newGateway(up handlers.Upstream) http.Handler {
	r := chi.NewRouter()
	Mount(r, handlers.NewProxy(up, logger.Nop()), logger.Nop())
	return r
}

func send(h http.Handler, method, path string, userID int64, body string) *httptest.ResponseRecorder {
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
	h.ServeHTTP(rr, req)
	return rr
}

func okUpstream() *recorder {
	return &recorder{resp: &upstream.Response{Status: http.StatusOK, ContentType: "application/json", Body: []byte(`[]`)}}
}

func TestGateway_ForwardsValidRequests(t *testing.T) {
	future := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	later := time.Now().Add(2 * time.Hour).UTC().Format(time.RFC3339)

	tests := []struct {
		name      string
		method    string
		path      string
		user      int64
		body      string
		wantQuery string
	}{
		{"create user", http.MethodPost, "/users", 0, `{"name":"Ann","email":"ann@example.com"}`, ""},
		{"list users", http.MethodGet, "/users", 0, "", ""},
		{"patch user", http.MethodPatch, "/users/1", 0, `{"name":"Anna"}`, ""},
		{"create item", http.MethodPost, "/items", 1, `{"name":"Drill","description":"d","available":true}`, ""},
		{"list items defaults", http.MethodGet, "/items", 1, "", "from=0&size=10"},
		{"search", http.MethodGet, "/items/search?text=dr&size=5", 1, "", "from=0&size=5&text=dr"},
		{"blank search", http.MethodGet, "/items/search?text=", 1, "", "from=0&size=10&text="},
		{"comment", http.MethodPost, "/items/1/comment", 2, `{"text":"great"}`, ""},
		{"create booking", http.MethodPost, "/bookings", 2, `{"itemId":1,"start":"` + future + `","end":"` + later + `"}`, ""},
		{"approve", http.MethodPatch, "/bookings/1?approved=true", 1, "", "approved=true"},
		{"booker list state", http.MethodGet, "/bookings?state=waiting", 2, "", "from=0&size=10&state=WAITING"},
		{"owner list default", http.MethodGet, "/bookings/owner", 1, "", "from=0&size=10&state=ALL"},
		{"create request", http.MethodPost, "/requests", 1, `{"description":"ladder"}`, ""},
		{"all requests", http.MethodGet, "/requests/all?from=3", 1, "", "from=3&size=10"},
		{"get request", http.MethodGet, "/requests/4", 1, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up := okUpstream()
			rr := send(newGateway(up), tt.method, tt.path, tt.user, tt.body)

			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
			assert.Equal(t, `[]`, rr.Body.String())
			require.Len(t, up.calls, 1)

			call := up.calls[0]
			assert.Equal(t, tt.method, call.Method)
			assert.Equal(t, strings.SplitN(tt.path, "?", 2)[0], call.Path)
			assert.Equal(t, tt.user, call.UserID)
			assert.Equal(t, tt.wantQuery, call.Query.Encode())
			assert.Equal(t, tt.body, string(call.Body))
		})
	}
}

func TestGateway_RejectsInvalidRequests(t *testing.T) {
	past := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
	future := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)

	tests := []struct {
		name    string
		method  string
		path    string
		user    int64
		body    string
		wantMsg string
	}{
		{"user without email", http.MethodPost, "/users", 0, `{"name":"Ann"}`, ""},
		{"user bad email", http.MethodPost, "/users", 0, `{"name":"Ann","email":"nope"}`, ""},
		{"patch user bad email", http.MethodPatch, "/users/1", 0, `{"email":"nope"}`, ""},
		{"bad user id", http.MethodGet, "/users/x", 0, "", ""},
		{"missing header", http.MethodGet, "/items", 0, "", ""},
		{"item blank name", http.MethodPost, "/items", 1, `{"name":" ","description":"d","available":true}`, ""},
		{"item without available", http.MethodPost, "/items", 1, `{"name":"n","description":"d"}`, ""},
		{"search without text", http.MethodGet, "/items/search", 1, "", "text is required"},
		{"negative from", http.MethodGet, "/items?from=-1", 1, "", ""},
		{"zero size", http.MethodGet, "/requests/all?size=0", 1, "", ""},
		{"blank comment", http.MethodPost, "/items/1/comment", 1, `{"text":""}`, ""},
		{"booking in past", http.MethodPost, "/bookings", 1, `{"itemId":1,"start":"` + past + `","end":"` + future + `"}`, ""},
		{"booking end before start", http.MethodPost, "/bookings", 1, `{"itemId":1,"start":"` + future + `","end":"` + future + `"}`, ""},
		{"booking without item", http.MethodPost, "/bookings", 1, `{"start":"` + future + `"}`, ""},
		{"unknown state", http.MethodGet, "/bookings?state=SOMETIME&from=-1", 1, "", "Unknown state: UNSUPPORTED_STATUS"},
		{"owner unknown state", http.MethodGet, "/bookings/owner?state=x", 1, "", "Unknown state: UNSUPPORTED_STATUS"},
		{"approved missing", http.MethodPatch, "/bookings/1", 1, "", "approved must be true or false"},
		{"blank request", http.MethodPost, "/requests", 1, `{"description":"  "}`, ""},
		{"malformed json", http.MethodPost, "/requests", 1, `{`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up := okUpstream()
			rr := send(newGateway(up), tt.method, tt.path, tt.user, tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())
			assert.Empty(t, up.calls, "invalid requests must not reach the server")
			if tt.wantMsg != "" {
				assert.JSONEq(t, `{"error":"`+tt.wantMsg+`"}`, rr.Body.String())
			}
		})
	}
}

func TestGateway_RelaysUpstreamErrors(t *testing.T) {
	up := &recorder{resp: &upstream.Response{
		Status:      http.StatusNotFound,
		ContentType: "application/json",
		Body:        []byte(`{"error":"item not found"}`),
	}}
	rr := send(newGateway(up), http.MethodGet, "/items/9", 1, "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"item not found"}`, rr.Body.String())
}

func TestGateway_TransportFailureIs500(t *testing.T) {
	up := &recorder{err: errors.New("connection refused")}
	rr := send(newGateway(up), http.MethodGet, "/users", 0, "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), `"error"`)
}

func TestGateway_EndToEndWithHTTPUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/owner", r.URL.Path)
		assert.Equal(t, "CURRENT", r.URL.Query().Get("state"))
		assert.Equal(t, "3", r.Header.Get(httpx.SharerHeader))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"id":1}]`))
	}))
	defer server.Close()

	client, err := upstream.NewClient(server.URL, time.Second)
	require.NoError(t, err)

	rr := send(newGateway(client), http.MethodGet, "/bookings/owner?state=current", 3, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":1}]`, rr.Body.String())
}
