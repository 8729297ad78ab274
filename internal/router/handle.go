package router

import (
	"context"
	"errors"

	"shareit/pkg/httperror"

	"github.com/gofiber/fiber/v2"
)

type Request any
type Response any

type HandlerInterface[R Request, Res Response] interface {
	Handle(ctx context.Context, req *R) (*Res, error)
}

// defaulter is implemented by requests whose optional query parameters have
// non-zero defaults. Parsers only overwrite what the client actually sent.
type defaulter interface {
	Defaults()
}

// Binder fills request fields the struct tag parsers cannot express.
type Binder[R Request] func(c *fiber.Ctx, req *R) error

func handle[R Request, Res Response](handler HandlerInterface[R, Res], binders ...Binder[R]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req R

		if d, ok := any(&req).(defaulter); ok {
			d.Defaults()
		}

		if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
			return httperror.BadRequest(
				"request.invalid_body",
				"Invalid body",
				fiber.Map{"error": err.Error()},
			)
		}

		if err := c.ParamsParser(&req); err != nil {
			return httperror.BadRequest(
				"request.invalid_path_params",
				"Invalid path params",
				fiber.Map{"error": err.Error()},
			)
		}

		if err := c.QueryParser(&req); err != nil {
			return httperror.BadRequest(
				"request.invalid_query_params",
				"Invalid query params",
				fiber.Map{"error": err.Error()},
			)
		}

		for _, bind := range binders {
			if err := bind(c, &req); err != nil {
				return err
			}
		}

		res, err := handler.Handle(c.UserContext(), &req)
		if err != nil {
			return err
		}

		return c.JSON(res)
	}
}
