package item

import (
	"context"
	"time"

	"shareit/app"
	"shareit/domain"
	"shareit/pkg/ctxutil"
)

type GetItemsHandler struct {
	repository Repository
}

func NewGetItemsHandler(repository Repository) *GetItemsHandler {
	return &GetItemsHandler{
		repository: repository,
	}
}

type GetItemsRequest struct {
	From int `query:"from"`
	Size int `query:"size"`
}

func (r *GetItemsRequest) Defaults() {
	r.Size = domain.DefaultPageSize
}

type GetItemsResponse []ItemResponse

// Handle lists the caller's own items. An anonymous caller gets every item.
func (h GetItemsHandler) Handle(ctx context.Context, req *GetItemsRequest) (*GetItemsResponse, error) {
	page, err := app.Page("item.index", req.From, req.Size)
	if err != nil {
		return nil, err
	}

	filter := domain.ItemFilter{
		Limit:  page.Limit(),
		Offset: page.Offset(),
	}

	var res GetItemsResponse
	err = h.repository.RunInReadOnlyTx(ctx, func(ctx context.Context) error {
		if viewerID, ok := ctxutil.UserIDFromCtx(ctx); ok {
			if _, err := h.repository.GetUser(ctx, viewerID); err != nil {
				return app.LookupError(err, "item.index.user", "User", viewerID)
			}
			filter.OwnerID = &viewerID
		}

		items, err := h.repository.ListItems(ctx, filter)
		if err != nil {
			return err
		}

		ids := itemIDs(items)
		bookings, err := h.repository.ListBookingsForItems(ctx, ids)
		if err != nil {
			return err
		}
		comments, err := h.repository.ListCommentsForItems(ctx, ids)
		if err != nil {
			return err
		}

		res = attach(items, bookings, comments, true, time.Now())
		return nil
	})
	if err != nil {
		return nil, app.StorageError(err, "item.index.failed", "Failed to retrieve items")
	}

	return &res, nil
}
