// Package router assembles the shareit REST API on fiber.
package router

import (
	"time"

	"shareit/app/booking"
	"shareit/app/item"
	"shareit/app/request"
	"shareit/app/user"
	"shareit/internal/middleware"
	"shareit/pkg/events"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Repository is every storage port the API needs. Both storage adapters satisfy it.
type Repository interface {
	user.Repository
	item.Repository
	booking.Repository
	request.Repository
}

type Config struct {
	Repository Repository
	// Publisher may be nil, in which case no events are sent.
	Publisher    events.Publisher
	HealthChecks map[string]HealthCheck
}

func NewApp(cfg Config) *fiber.App {
	app := fiber.New(fiber.Config{
		IdleTimeout:  5 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		Concurrency:  256 * 1024,
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(
		recover.New(),
		middleware.NewRequestIDMiddleware(),
		middleware.NewAccessLogMiddleware(),
		middleware.NewSharerUserMiddleware(),
	)

	app.Get("/health", healthHandler(cfg.HealthChecks))

	registerUserRoutes(app, cfg.Repository)
	registerItemRoutes(app, cfg.Repository, cfg.Publisher)
	registerBookingRoutes(app, cfg.Repository, cfg.Publisher)
	registerRequestRoutes(app, cfg.Repository, cfg.Publisher)

	return app
}

func registerUserRoutes(app fiber.Router, repo user.Repository) {
	users := app.Group("/users")
	users.Get("/", handle[user.ListUsersRequest, user.ListUsersResponse](user.NewListUsersHandler(repo)))
	users.Get("/:id", handle[user.GetUserRequest, user.GetUserResponse](user.NewGetUserHandler(repo)))
	users.Post("/", handle[user.CreateUserRequest, user.CreateUserResponse](user.NewCreateUserHandler(repo)))
	users.Patch("/:id", handle[user.UpdateUserRequest, user.UpdateUserResponse](user.NewUpdateUserHandler(repo)))
	users.Delete("/:id", handle[user.DeleteUserRequest, user.DeleteUserResponse](user.NewDeleteUserHandler(repo)))
}

func registerItemRoutes(app fiber.Router, repo item.Repository, publisher events.Publisher) {
	items := app.Group("/items")
	items.Get("/", handle[item.GetItemsRequest, item.GetItemsResponse](item.NewGetItemsHandler(repo)))
	// registered before /:id so "search" is not read as an id
	items.Get("/search", handle[item.SearchItemsRequest, item.SearchItemsResponse](
		item.NewSearchItemsHandler(repo), bindSearchText,
	))
	items.Get("/:id", handle[item.GetItemRequest, item.GetItemResponse](item.NewGetItemHandler(repo)))
	items.Post("/", handle[item.CreateItemRequest, item.CreateItemResponse](item.NewCreateItemHandler(repo, publisher)))
	items.Patch("/:id", handle[item.UpdateItemRequest, item.UpdateItemResponse](item.NewUpdateItemHandler(repo, publisher)))
	items.Delete("/:id", handle[item.DeleteItemRequest, item.DeleteItemResponse](item.NewDeleteItemHandler(repo, publisher)))

	items.Get("/:id/comments", handle[item.GetCommentsRequest, item.GetCommentsResponse](item.NewGetCommentsHandler(repo)))
	items.Post("/:id/comment", handle[item.CreateCommentRequest, item.CreateCommentResponse](item.NewCreateCommentHandler(repo, publisher)))
}

func registerBookingRoutes(app fiber.Router, repo booking.Repository, publisher events.Publisher) {
	bookings := app.Group("/bookings")
	bookings.Get("/", handle[booking.ListBookingsRequest, booking.ListBookingsResponse](booking.NewListBookerBookingsHandler(repo)))
	bookings.Get("/owner", handle[booking.ListBookingsRequest, booking.ListBookingsResponse](booking.NewListOwnerBookingsHandler(repo)))
	bookings.Get("/:id", handle[booking.GetBookingRequest, booking.GetBookingResponse](booking.NewGetBookingHandler(repo)))
	bookings.Post("/", handle[booking.CreateBookingRequest, booking.CreateBookingResponse](booking.NewCreateBookingHandler(repo, publisher)))
	bookings.Patch("/:id", handle[booking.ApproveBookingRequest, booking.ApproveBookingResponse](booking.NewApproveBookingHandler(repo, publisher)))
	bookings.Delete("/:id", handle[booking.DeleteBookingRequest, booking.DeleteBookingResponse](booking.NewDeleteBookingHandler(repo, publisher)))
}

func registerRequestRoutes(app fiber.Router, repo request.Repository, publisher events.Publisher) {
	requests := app.Group("/requests")
	requests.Get("/", handle[request.ListOwnRequestsRequest, request.ListOwnRequestsResponse](request.NewListOwnRequestsHandler(repo)))
	requests.Get("/all", handle[request.ListOtherRequestsRequest, request.ListOtherRequestsResponse](request.NewListOtherRequestsHandler(repo)))
	requests.Get("/:id", handle[request.GetRequestRequest, request.GetRequestResponse](request.NewGetRequestHandler(repo)))
	requests.Post("/", handle[request.CreateRequestRequest, request.CreateRequestResponse](request.NewCreateRequestHandler(repo, publisher)))
	requests.Delete("/:id", handle[request.DeleteRequestRequest, request.DeleteRequestResponse](request.NewDeleteRequestHandler(repo, publisher)))
}

// bindSearchText tells a missing text parameter apart from an empty one.
func bindSearchText(c *fiber.Ctx, req *item.SearchItemsRequest) error {
	if c.Context().QueryArgs().Has("text") {
		text := c.Query("text")
		req.Text = &text
	}
	return nil
}
