package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"shareit/pkg/ctxutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(NewRequestIDMiddleware(), NewAccessLogMiddleware(), NewSharerUserMiddleware())
	app.Get("/whoami", func(c *fiber.Ctx) error {
		userID, ok := ctxutil.UserIDFromCtx(c.UserContext())
		return c.JSON(fiber.Map{
			"userId":    userID,
			"known":     ok,
			"requestId": ctxutil.RequestIDFromCtx(c.UserContext()),
		})
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("database is on fire")
	})
	return app
}

func decode(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestSharerUserMiddleware(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name   string
		header string
		status int
		known  bool
	}{
		{"absent", "", http.StatusOK, false},
		{"valid", "42", http.StatusOK, true},
		{"not a number", "abc", http.StatusBadRequest, false},
		{"negative", "-1", http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set(SharerUserHeader, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			body := decode(t, resp.Body)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.known, body["known"])
				return
			}
			assert.Equal(t, float64(tt.status), body["status"])
			assert.Equal(t, "shareit.sharer_user.invalid", body["code"])
			assert.NotEmpty(t, body["time"])
		})
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))
	assert.Equal(t, "abc-123", decode(t, resp.Body)["requestId"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
}

func TestErrorHandlerHidesUnexpectedErrors(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := decode(t, resp.Body)
	assert.Equal(t, "internal_server_error", body["code"])
	assert.NotContains(t, body["message"], "fire")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "route.not_found", decode(t, resp.Body)["code"])
}
