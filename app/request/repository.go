package request

import (
	"context"

	"shareit/app"
	"shareit/domain"
)

type Repository interface {
	app.Transactor
	GetUser(ctx context.Context, id int64) (domain.User, error)

	// ListRequestsByRequester orders by creation time ascending.
	ListRequestsByRequester(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error)
	// ListOtherRequests returns requests not made by requesterID, newest first.
	ListOtherRequests(ctx context.Context, requesterID int64, limit, offset int) ([]domain.ItemRequest, error)
	GetRequest(ctx context.Context, id int64) (domain.ItemRequest, error)
	CreateRequest(ctx context.Context, request domain.ItemRequest) (domain.ItemRequest, error)
	DeleteRequest(ctx context.Context, id int64) error

	// ListItemsForRequests returns the items created in answer to the requests.
	ListItemsForRequests(ctx context.Context, requestIDs []int64) ([]domain.Item, error)
}
