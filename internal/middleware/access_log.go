package middleware

import (
	"time"

	"shareit/pkg/ctxutil"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewAccessLogMiddleware logs one line per request once the response is known.
func NewAccessLogMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()
		if err != nil {
			// let the error handler set the final status before logging
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.String("requestId", ctxutil.RequestIDFromCtx(c.UserContext())),
		}
		if userID, ok := ctxutil.UserIDFromCtx(c.UserContext()); ok {
			fields = append(fields, zap.Int64("userId", userID))
		}

		if status >= fiber.StatusInternalServerError {
			zap.L().Error("http.request", fields...)
		} else {
			zap.L().Info("http.request", fields...)
		}
		return nil
	}
}
