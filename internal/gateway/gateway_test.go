package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"shareit/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upstream struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string
	bodies   []string
	status   int
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	u := &upstream{status: http.StatusOK}
	u.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		u.mu.Lock()
		u.requests = append(u.requests, r.Method+" "+r.URL.RequestURI()+" user="+r.Header.Get(middleware.SharerUserHeader))
		u.bodies = append(u.bodies, string(body))
		status := u.status
		u.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))
	t.Cleanup(u.Close)
	return u
}

func (u *upstream) seen() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.requests...)
}

func send(t *testing.T, app *fiber.App, method, path, userID, body string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if userID != "" {
		req.Header.Set(middleware.SharerUserHeader, userID)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp, out
}

func future(d time.Duration) string {
	return time.Now().Add(d).UTC().Format(time.RFC3339)
}

func TestValidRequestsAreForwardedUnchanged(t *testing.T) {
	up := newUpstream(t)
	app := NewApp(Config{ServerURL: up.URL + "/"})

	body := `{"email":"a@example.com","name":"Alice"}`
	resp, out := send(t, app, http.MethodPost, "/users", "", body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), out["id"])

	resp, _ = send(t, app, http.MethodGet, "/bookings/owner?state=current&from=0&size=5", "7", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = send(t, app, http.MethodGet, "/items/search?text=", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, []string{
		"POST /users user=",
		"GET /bookings/owner?state=current&from=0&size=5 user=7",
		"GET /items/search?text= user=",
	}, up.seen())
	assert.Equal(t, body, up.bodies[0])
}

func TestInvalidRequestsNeverReachServer(t *testing.T) {
	up := newUpstream(t)
	app := NewApp(Config{ServerURL: up.URL})

	tests := []struct {
		name   string
		method string
		path   string
		userID string
		body   string
	}{
		{"bad email", http.MethodPost, "/users", "", `{"email":"nope","name":"A"}`},
		{"blank name", http.MethodPost, "/users", "", `{"email":"a@example.com","name":"  "}`},
		{"negative from", http.MethodGet, "/items?from=-1", "1", ""},
		{"zero size", http.MethodGet, "/requests/all?size=0", "1", ""},
		{"missing caller", http.MethodGet, "/requests", "", ""},
		{"non numeric caller", http.MethodGet, "/requests", "abc", ""},
		{"non numeric id", http.MethodGet, "/items/abc", "1", ""},
		{"long description", http.MethodPost, "/items", "1",
			`{"name":"x","description":"` + strings.Repeat("d", 201) + `","available":true}`},
		{"missing available", http.MethodPost, "/items", "1", `{"name":"x","description":"y"}`},
		{"long comment", http.MethodPost, "/items/1/comment", "1", `{"text":"` + strings.Repeat("c", 301) + `"}`},
		{"unknown state", http.MethodGet, "/bookings?state=SOMETIME", "1", ""},
		{"approved not boolean", http.MethodPatch, "/bookings/1?approved=maybe", "1", ""},
		{"approved missing", http.MethodPatch, "/bookings/1", "1", ""},
		{"blank request", http.MethodPost, "/requests", "1", `{"description":""}`},
		{"start in past", http.MethodPost, "/bookings", "1",
			`{"itemId":1,"start":"` + future(-time.Hour) + `","end":"` + future(time.Hour) + `"}`},
		{"end before start", http.MethodPost, "/bookings", "1",
			`{"itemId":1,"start":"` + future(2*time.Hour) + `","end":"` + future(time.Hour) + `"}`},
		{"malformed json", http.MethodPost, "/requests", "1", `{"description":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, out := send(t, app, tt.method, tt.path, tt.userID, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, float64(http.StatusBadRequest), out["status"])
			assert.NotEmpty(t, out["time"])
		})
	}

	assert.Empty(t, up.seen())
}

func TestUnknownStateMessage(t *testing.T) {
	app := NewApp(Config{ServerURL: "http://127.0.0.1:1"})

	_, out := send(t, app, http.MethodGet, "/bookings?state=SOMETIME", "1", "")
	assert.Equal(t, "Unknown state: SOMETIME", out["message"])
}

func TestServerErrorsPassThrough(t *testing.T) {
	up := newUpstream(t)
	up.status = http.StatusNotFound
	app := NewApp(Config{ServerURL: up.URL})

	resp, _ := send(t, app, http.MethodGet, "/users/42", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServerUnavailable(t *testing.T) {
	app := NewApp(Config{ServerURL: "http://127.0.0.1:1"})

	resp, out := send(t, app, http.MethodGet, "/users", "", "")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "gateway.upstream_unavailable", out["code"])
}

func TestRateLimit(t *testing.T) {
	up := newUpstream(t)
	app := NewApp(Config{ServerURL: up.URL, RateLimit: 1})

	resp, _ := send(t, app, http.MethodGet, "/users", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, out := send(t, app, http.MethodGet, "/users", "", "")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "gateway.rate_limited", out["code"])
	assert.Len(t, up.seen(), 1)
}
