package item

import (
	"context"
	"time"

	"shareit/app"
	"shareit/domain"
)

type Repository interface {
	app.Transactor
	GetUser(ctx context.Context, id int64) (domain.User, error)
	GetRequest(ctx context.Context, id int64) (domain.ItemRequest, error)

	// ListItems orders by id ascending.
	ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error)
	GetItem(ctx context.Context, id int64) (domain.Item, error)
	// SearchItems matches text case-insensitively against name or description
	// of available items.
	SearchItems(ctx context.Context, text string, limit, offset int) ([]domain.Item, error)
	CreateItem(ctx context.Context, item domain.Item) (domain.Item, error)
	UpdateItem(ctx context.Context, item domain.Item) (domain.Item, error)
	DeleteItem(ctx context.Context, id int64) error

	ListBookingsForItems(ctx context.Context, itemIDs []int64) ([]domain.Booking, error)
	// HasStartedBooking reports whether any booking of the item starts before now.
	HasStartedBooking(ctx context.Context, itemID int64, now time.Time) (bool, error)

	// ListCommentsForItems returns comments with AuthorName set, oldest first.
	ListCommentsForItems(ctx context.Context, itemIDs []int64) ([]domain.Comment, error)
	ListComments(ctx context.Context, itemID int64, limit, offset int) ([]domain.Comment, error)
	CountComments(ctx context.Context, itemID int64) (int, error)
	CreateComment(ctx context.Context, comment domain.Comment) (domain.Comment, error)
}
