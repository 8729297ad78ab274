// Package gateway validates incoming requests and forwards the valid ones to
// the shareit server unchanged. It holds no business rules.
package gateway

import (
	"errors"
	"strings"
	"time"

	"shareit/app"
	"shareit/internal/middleware"
	"shareit/pkg/httperror"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/proxy"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

type Config struct {
	ServerURL string
	// RateLimit is the number of requests per minute allowed from one IP. Zero disables it.
	RateLimit int
}

type gateway struct {
	serverURL string
	now       func() time.Time
}

type defaulter interface {
	Defaults()
}

// checker runs rules that struct tags cannot express.
type checker interface {
	check(now time.Time) error
}

func NewApp(cfg Config) *fiber.App {
	g := &gateway{
		serverURL: strings.TrimRight(cfg.ServerURL, "/"),
		now:       time.Now,
	}

	fiberApp := fiber.New(fiber.Config{
		IdleTimeout:  5 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: middleware.ErrorHandler,
	})

	fiberApp.Use(
		recover.New(),
		middleware.NewRequestIDMiddleware(),
		middleware.NewAccessLogMiddleware(),
	)
	if cfg.RateLimit > 0 {
		fiberApp.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit,
			Expiration: time.Minute,
			LimitReached: func(c *fiber.Ctx) error {
				return httperror.TooManyRequests("gateway.rate_limited", "Too many requests", nil)
			},
		}))
	}

	users := fiberApp.Group("/users")
	users.Get("/", g.forward)
	users.Get("/:id", forwardValid[pathID](g, "gateway.user.get"))
	users.Post("/", forwardValid[createUserDto](g, "gateway.user.create"))
	users.Patch("/:id", forwardValid[updateUserDto](g, "gateway.user.update"))
	users.Delete("/:id", forwardValid[pathID](g, "gateway.user.delete"))

	items := fiberApp.Group("/items")
	items.Get("/", forwardValid[listItemsDto](g, "gateway.item.index"))
	items.Get("/search", forwardValid[searchItemsDto](g, "gateway.item.search"))
	items.Get("/:id", forwardValid[resourceDto](g, "gateway.item.get"))
	items.Post("/", forwardValid[createItemDto](g, "gateway.item.create"))
	items.Patch("/:id", forwardValid[updateItemDto](g, "gateway.item.update"))
	items.Delete("/:id", forwardValid[resourceDto](g, "gateway.item.delete"))
	items.Get("/:id/comments", forwardValid[commentsDto](g, "gateway.comment.index"))
	items.Post("/:id/comment", forwardValid[commentDto](g, "gateway.comment.create"))

	bookings := fiberApp.Group("/bookings")
	bookings.Get("/", forwardValid[listBookingsDto](g, "gateway.booking.index"))
	bookings.Get("/owner", forwardValid[listBookingsDto](g, "gateway.booking.owner"))
	bookings.Get("/:id", forwardValid[resourceDto](g, "gateway.booking.get"))
	bookings.Post("/", forwardValid[createBookingDto](g, "gateway.booking.create"))
	bookings.Patch("/:id", forwardValid[approveBookingDto](g, "gateway.booking.approve"))
	bookings.Delete("/:id", forwardValid[resourceDto](g, "gateway.booking.delete"))

	requests := fiberApp.Group("/requests")
	requests.Get("/", forwardValid[caller](g, "gateway.request.own"))
	requests.Get("/all", forwardValid[otherRequestsDto](g, "gateway.request.all"))
	requests.Get("/:id", forwardValid[resourceDto](g, "gateway.request.get"))
	requests.Post("/", forwardValid[createRequestDto](g, "gateway.request.create"))
	requests.Delete("/:id", forwardValid[resourceDto](g, "gateway.request.delete"))

	return fiberApp
}

// forwardValid parses the request into R, validates it and forwards it.
func forwardValid[R any](g *gateway, code string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var dto R

		if d, ok := any(&dto).(defaulter); ok {
			d.Defaults()
		}

		if err := c.BodyParser(&dto); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
			return httperror.BadRequest(code+".invalid_body", "Invalid body", fiber.Map{"error": err.Error()})
		}
		if err := c.ParamsParser(&dto); err != nil {
			return httperror.BadRequest(code+".invalid_path_params", "Invalid path params", fiber.Map{"error": err.Error()})
		}
		if err := c.QueryParser(&dto); err != nil {
			return httperror.BadRequest(code+".invalid_query_params", "Invalid query params", fiber.Map{"error": err.Error()})
		}
		if err := c.ReqHeaderParser(&dto); err != nil {
			return httperror.BadRequest(code+".invalid_headers", "Invalid headers", fiber.Map{"error": err.Error()})
		}

		if err := app.Validate(code, &dto); err != nil {
			return err
		}
		if ch, ok := any(&dto).(checker); ok {
			if err := ch.check(g.now()); err != nil {
				return err
			}
		}

		return g.forward(c)
	}
}

func (g *gateway) forward(c *fiber.Ctx) error {
	target := g.serverURL + c.OriginalURL()
	if err := proxy.Do(c, target); err != nil {
		zap.L().Error("Failed to reach shareit server", zap.String("target", target), zap.Error(err))
		return httperror.BadGateway("gateway.upstream_unavailable", "Server is unavailable", err)
	}
	return nil
}
