package item

import (
	"context"
	"fmt"
	"time"

	"shareit/app"
	"shareit/domain"
	"shareit/pkg/events"
	"shareit/pkg/httperror"

	"go.uber.org/zap"
)

type DeleteItemHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

func NewDeleteItemHandler(repository Repository, eventPublisher events.Publisher) *DeleteItemHandler {
	return &DeleteItemHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

type DeleteItemRequest struct {
	ItemID int64 `params:"id"`
}

type DeleteItemResponse struct {
	Message string `json:"message"`
}

func (h DeleteItemHandler) Handle(ctx context.Context, req *DeleteItemRequest) (*DeleteItemResponse, error) {
	ownerID, err := app.CallerID(ctx, "item.destroy")
	if err != nil {
		return nil, err
	}

	var item domain.Item
	err = h.repository.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := h.repository.GetUser(ctx, ownerID); err != nil {
			return app.LookupError(err, "item.destroy.owner", "User", ownerID)
		}

		var err error
		item, err = h.repository.GetItem(ctx, req.ItemID)
		if err != nil {
			return app.LookupError(err, "item.destroy", "Item", req.ItemID)
		}
		if item.OwnerID != ownerID {
			return httperror.NotFound("item.destroy.not_found", "Item not found", nil)
		}

		if err := h.repository.DeleteItem(ctx, item.ID); err != nil {
			return app.LookupError(err, "item.destroy", "Item", item.ID)
		}
		return nil
	})
	if err != nil {
		return nil, app.StorageError(err, "item.destroy.failed", "Failed to delete item")
	}

	zap.L().Info("Item deleted", zap.Int64("itemId", item.ID), zap.Int64("userId", ownerID))
	h.publishEvent(ctx, item)

	return &DeleteItemResponse{
		Message: fmt.Sprintf("Item with id %d deleted", item.ID),
	}, nil
}

func (h DeleteItemHandler) publishEvent(ctx context.Context, item domain.Item) {
	events.Emit(ctx, h.eventPublisher, events.ItemExchange, events.ItemDeletedEvent, events.ItemDeletedPayload{
		ID:        item.ID,
		OwnerID:   item.OwnerID,
		DeletedAt: time.Now().UTC(),
	})
}
