package middleware

import (
	"errors"
	"time"

	"shareit/pkg/httperror"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler writes every error as a {time, status, code, message} body.
// Server errors keep their cause in the log and out of the response.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var httpErr *httperror.Error
	if !errors.As(err, &httpErr) {
		httpErr = fromUnknown(err)
	}

	fields := []zap.Field{
		zap.String("code", httpErr.Code),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	}
	if httpErr.Status >= fiber.StatusInternalServerError {
		zap.L().Error("Handler returned server error", fields...)
	} else {
		zap.L().Warn("Handler returned client error", fields...)
	}

	return c.Status(httpErr.Status).JSON(httpErr.Response(time.Now()))
}

func fromUnknown(err error) *httperror.Error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code := "request.invalid"
		if fiberErr.Code == fiber.StatusNotFound {
			code = "route.not_found"
		}
		return httperror.New(fiberErr.Code, code, fiberErr.Message, nil)
	}
	return httperror.InternalServerError("internal_server_error", "Internal server error.", err)
}
