package item

import (
	"context"
	"time"

	"shareit/app"
	"shareit/domain"
	"shareit/pkg/httperror"
)

type GetItemHandler struct {
	repository Repository
}

func NewGetItemHandler(repository Repository) *GetItemHandler {
	return &GetItemHandler{
		repository: repository,
	}
}

type GetItemRequest struct {
	ItemID int64 `params:"id"`
}

type GetItemResponse struct {
	ItemResponse
}

// Handle hides unavailable items from everyone but the owner. Last and next
// bookings are shown to the owner only.
func (h GetItemHandler) Handle(ctx context.Context, req *GetItemRequest) (*GetItemResponse, error) {
	viewerID, err := app.CallerID(ctx, "item.show")
	if err != nil {
		return nil, err
	}

	var res GetItemResponse
	err = h.repository.RunInReadOnlyTx(ctx, func(ctx context.Context) error {
		if _, err := h.repository.GetUser(ctx, viewerID); err != nil {
			return app.LookupError(err, "item.show.user", "User", viewerID)
		}

		item, err := h.repository.GetItem(ctx, req.ItemID)
		if err != nil {
			return app.LookupError(err, "item.show", "Item", req.ItemID)
		}
		if !item.VisibleTo(viewerID) {
			return httperror.NotFound("item.show.not_found", "Item not found", nil)
		}

		ids := []int64{item.ID}
		isOwner := item.OwnerID == viewerID

		var bookings []domain.Booking
		if isOwner {
			bookings, err = h.repository.ListBookingsForItems(ctx, ids)
			if err != nil {
				return err
			}
		}
		comments, err := h.repository.ListCommentsForItems(ctx, ids)
		if err != nil {
			return err
		}

		res.ItemResponse = attach([]domain.Item{item}, bookings, comments, isOwner, time.Now())[0]
		return nil
	})
	if err != nil {
		return nil, app.StorageError(err, "item.show.failed", "Failed to retrieve item")
	}

	return &res, nil
}
