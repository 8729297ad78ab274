package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shareit/infra/memory"
	"shareit/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type client struct {
	t   *testing.T
	app *fiber.App
}

func newClient(t *testing.T) *client {
	t.Helper()
	return &client{t: t, app: NewApp(Config{Repository: memory.NewStore()})}
}

func (c *client) do(method, path string, userID int64, body any, out any) int {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if userID != 0 {
		req.Header.Set(middleware.SharerUserHeader, fmt.Sprint(userID))
	}

	resp, err := c.app.Test(req, -1)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type idBody struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type errorBody struct {
	Time    string `json:"time"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *client) createUser(email string) int64 {
	c.t.Helper()
	var u idBody
	status := c.do(http.MethodPost, "/users", 0, map[string]any{"email": email, "name": email}, &u)
	require.Equal(c.t, http.StatusOK, status)
	return u.ID
}

func (c *client) createItem(ownerID int64, name string, available bool) int64 {
	c.t.Helper()
	var it idBody
	status := c.do(http.MethodPost, "/items", ownerID, map[string]any{
		"name": name, "description": name + " for rent", "available": available,
	}, &it)
	require.Equal(c.t, http.StatusOK, status)
	return it.ID
}

func period(from, to time.Duration) map[string]any {
	now := time.Now()
	return map[string]any{
		"start": now.Add(from).Format(time.RFC3339),
		"end":   now.Add(to).Format(time.RFC3339),
	}
}

func TestBookingScenario(t *testing.T) {
	c := newClient(t)
	const day = 24 * time.Hour

	u1 := c.createUser("u1@example.com")
	u2 := c.createUser("u2@example.com")
	u3 := c.createUser("u3@example.com")
	i1 := c.createItem(u1, "ladder", true)

	body := period(day, 2*day)
	body["itemId"] = i1
	var b1 idBody
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/bookings", u2, body, &b1))
	assert.Equal(t, "WAITING", b1.Status)

	var approved idBody
	path := fmt.Sprintf("/bookings/%d?approved=true", b1.ID)
	require.Equal(t, http.StatusOK, c.do(http.MethodPatch, path, u1, nil, &approved))
	assert.Equal(t, "APPROVED", approved.Status)

	var conflict errorBody
	assert.Equal(t, http.StatusConflict, c.do(http.MethodPatch, path, u1, nil, &conflict))
	assert.Equal(t, http.StatusConflict, conflict.Status)

	overlap := period(day+day/2, 2*day+day/2)
	overlap["itemId"] = i1
	var overlapErr errorBody
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/bookings", u2, overlap, &overlapErr))
	assert.NotEmpty(t, overlapErr.Time)

	later := period(3*day, 4*day)
	later["itemId"] = i1
	assert.Equal(t, http.StatusOK, c.do(http.MethodPost, "/bookings", u3, later, nil))

	var owned []idBody
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/bookings/owner?state=future", u1, nil, &owned))
	assert.Len(t, owned, 2)

	var unknown errorBody
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/bookings?state=SOMETIME", u2, nil, &unknown))
	assert.Equal(t, "Unknown state: SOMETIME", unknown.Message)
}

func TestUnavailableItemRejectsBookings(t *testing.T) {
	c := newClient(t)

	owner := c.createUser("owner@example.com")
	booker := c.createUser("booker@example.com")
	item := c.createItem(owner, "drill", false)

	body := period(time.Hour, 2*time.Hour)
	body["itemId"] = item
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/bookings", booker, body, nil))
}

func TestItemRoutes(t *testing.T) {
	c := newClient(t)

	var empty []idBody
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/items?from=0&size=10", 0, nil, &empty))
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	owner := c.createUser("owner@example.com")
	c.createItem(owner, "Kayak", true)
	c.createItem(owner, "Broken tent", false)

	var anonymous []idBody
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/items?from=0&size=10", 0, nil, &anonymous))
	assert.Len(t, anonymous, 2, "unavailable items are listed for anonymous callers")

	var missing errorBody
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/items/search", owner, nil, &missing))

	var blank []idBody
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/items/search?text=", owner, nil, &blank))
	assert.Empty(t, blank)

	var found []idBody
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/items/search?text=kAYa", owner, nil, &found))
	assert.Len(t, found, 1)

	var badPage errorBody
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/items?from=-1", owner, nil, &badPage))

	var badID errorBody
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/items/abc", owner, nil, &badID))
	assert.Equal(t, "request.invalid_path_params", badID.Code)
}

func TestUserRoutes(t *testing.T) {
	c := newClient(t)

	id := c.createUser("a@example.com")

	var missing errorBody
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodPatch, "/users/999", 0, map[string]any{}, &missing))

	var dup errorBody
	assert.Equal(t, http.StatusConflict, c.do(http.MethodPost, "/users", 0,
		map[string]any{"email": "a@example.com", "name": "again"}, &dup))

	var updated struct {
		Name string `json:"name"`
	}
	require.Equal(t, http.StatusOK, c.do(http.MethodPatch, fmt.Sprintf("/users/%d", id), 0,
		map[string]any{"name": "Alice"}, &updated))
	assert.Equal(t, "Alice", updated.Name)

	var deleted struct {
		Message string `json:"message"`
	}
	require.Equal(t, http.StatusOK, c.do(http.MethodDelete, fmt.Sprintf("/users/%d", id), 0, nil, &deleted))
	assert.NotEmpty(t, deleted.Message)

	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, fmt.Sprintf("/users/%d", id), 0, nil, nil))
}

func TestRequestRoutes(t *testing.T) {
	c := newClient(t)

	author := c.createUser("author@example.com")
	other := c.createUser("other@example.com")

	var created idBody
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/requests", author,
		map[string]any{"description": "need a tent"}, &created))

	var all []idBody
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/requests/all", other, nil, &all))
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)

	var own []idBody
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/requests", author, nil, &own))
	assert.Len(t, own, 1)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/requests", 0, nil, nil))
}

func TestHealth(t *testing.T) {
	app := NewApp(Config{
		Repository: memory.NewStore(),
		HealthChecks: map[string]HealthCheck{
			"storage": func(context.Context) (map[string]any, error) { return map[string]any{"open": 1}, nil },
		},
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	app = NewApp(Config{
		Repository: memory.NewStore(),
		HealthChecks: map[string]HealthCheck{
			"broker": func(context.Context) (map[string]any, error) { return nil, errors.New("closed") },
		},
	})

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var body healthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, statusDown, body.Components["broker"].Status)
}
