package middleware

import (
	"shareit/pkg/ctxutil"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// NewRequestIDMiddleware reuses an incoming X-Request-Id or generates one, and
// echoes it on the response.
func NewRequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
			c.Request().Header.Set(RequestIDHeader, id)
		}
		c.Set(RequestIDHeader, id)
		c.SetUserContext(ctxutil.WithRequestID(c.UserContext(), id))
		return c.Next()
	}
}
