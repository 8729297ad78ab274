package middleware

import (
	"context"
	"strconv"
	"strings"

	"shareit/pkg/ctxutil"
	"shareit/pkg/httperror"

	"github.com/gofiber/fiber/v2"
)

const SharerUserHeader = "X-Sharer-User-Id"

// NewSharerUserMiddleware puts the caller id from X-Sharer-User-Id into the
// request context. The header is optional. A value that is not a positive
// integer is rejected.
func NewSharerUserMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Get(SharerUserHeader))
		if raw == "" {
			return c.Next()
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			return httperror.BadRequest(
				"shareit.sharer_user.invalid",
				SharerUserHeader+" must be a positive integer",
				fiber.Map{"value": raw},
			)
		}

		userCtx := c.UserContext()
		if userCtx == nil {
			userCtx = context.Background()
		}
		c.SetUserContext(ctxutil.WithUserID(userCtx, userID))

		return c.Next()
	}
}
