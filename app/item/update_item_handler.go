package item

import (
	"context"
	"strings"

	"shareit/app"
	"shareit/domain"
	"shareit/pkg/events"
	"shareit/pkg/httperror"

	"go.uber.org/zap"
)

type UpdateItemHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

type UpdateItemRequest struct {
	ItemID      int64   `params:"id"`
	BodyID      *int64  `json:"id,omitempty"`
	Name        *string `json:"name,omitempty" validate:"omitempty,notblank"`
	Description *string `json:"description,omitempty" validate:"omitempty,notblank,max=200"`
	Available   *bool   `json:"available,omitempty"`
	RequestID   *int64  `json:"requestId,omitempty"`
}

type UpdateItemResponse struct {
	ItemResponse
}

func NewUpdateItemHandler(repository Repository, eventPublisher events.Publisher) *UpdateItemHandler {
	return &UpdateItemHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

func (h UpdateItemHandler) Handle(ctx context.Context, req *UpdateItemRequest) (*UpdateItemResponse, error) {
	ownerID, err := app.CallerID(ctx, "item.update")
	if err != nil {
		return nil, err
	}

	if req.BodyID != nil && *req.BodyID != req.ItemID {
		return nil, httperror.BadRequest(
			"item.update.id_mismatch",
			"Item id in the body does not match the path",
			nil,
		)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}
	if err := app.Validate("item.update", req); err != nil {
		return nil, err
	}

	var item domain.Item
	err = h.repository.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := h.repository.GetUser(ctx, ownerID); err != nil {
			return app.LookupError(err, "item.update.owner", "User", ownerID)
		}

		var err error
		item, err = h.repository.GetItem(ctx, req.ItemID)
		if err != nil {
			return app.LookupError(err, "item.update", "Item", req.ItemID)
		}
		if item.OwnerID != ownerID {
			return httperror.NotFound("item.update.not_found", "Item not found", nil)
		}

		if req.Name == nil && req.Description == nil && req.Available == nil {
			return httperror.BadRequest(
				"item.update.empty",
				"At least one of name, description or available must be provided",
				nil,
			)
		}

		if req.Name != nil {
			item.Name = *req.Name
		}
		if req.Description != nil {
			item.Description = *req.Description
		}
		if req.Available != nil {
			item.Available = *req.Available
		}
		if req.RequestID != nil {
			requestID, err := resolveRequest(ctx, h.repository, req.RequestID)
			if err != nil {
				return err
			}
			if requestID != nil {
				item.RequestID = requestID
			}
		}

		item, err = h.repository.UpdateItem(ctx, item)
		return err
	})
	if err != nil {
		return nil, app.StorageError(err, "item.update.update_failed", "An error occurred while updating the item")
	}

	zap.L().Info("Item updated", zap.Int64("itemId", item.ID), zap.Int64("userId", ownerID))
	publishItemEvent(ctx, h.eventPublisher, events.ItemUpdatedEvent, item)

	return &UpdateItemResponse{
		ItemResponse: ItemResponse{Item: item, Comments: []CommentResponse{}},
	}, nil
}
