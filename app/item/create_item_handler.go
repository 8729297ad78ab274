package item

import (
	"context"
	"errors"
	"strings"
	"time"

	"shareit/app"
	"shareit/domain"
	"shareit/pkg/events"

	"go.uber.org/zap"
)

type CreateItemHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

type CreateItemRequest struct {
	Name        string `json:"name" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank,max=200"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

type CreateItemResponse struct {
	ItemResponse
}

func NewCreateItemHandler(repository Repository, eventPublisher events.Publisher) *CreateItemHandler {
	return &CreateItemHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

func (h CreateItemHandler) Handle(ctx context.Context, req *CreateItemRequest) (*CreateItemResponse, error) {
	ownerID, err := app.CallerID(ctx, "item.create")
	if err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := app.Validate("item.create", req); err != nil {
		return nil, err
	}

	var item domain.Item
	err = h.repository.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := h.repository.GetUser(ctx, ownerID); err != nil {
			return app.LookupError(err, "item.create.owner", "User", ownerID)
		}

		requestID, err := resolveRequest(ctx, h.repository, req.RequestID)
		if err != nil {
			return err
		}

		item, err = h.repository.CreateItem(ctx, domain.Item{
			OwnerID:     ownerID,
			Name:        req.Name,
			Description: req.Description,
			Available:   *req.Available,
			RequestID:   requestID,
			CreatedAt:   time.Now().UTC(),
		})
		return err
	})
	if err != nil {
		return nil, app.StorageError(err, "item.create.create_failed", "An error occurred while creating the item")
	}

	zap.L().Info("Item created", zap.Int64("itemId", item.ID), zap.Int64("userId", ownerID))
	publishItemEvent(ctx, h.eventPublisher, events.ItemCreatedEvent, item)

	return &CreateItemResponse{
		ItemResponse: ItemResponse{Item: item, Comments: []CommentResponse{}},
	}, nil
}

// resolveRequest drops a reference to a request that does not exist.
func resolveRequest(ctx context.Context, repository Repository, requestID *int64) (*int64, error) {
	if requestID == nil {
		return nil, nil
	}
	request, err := repository.GetRequest(ctx, *requestID)
	if errors.Is(err, domain.ErrNotFound) {
		zap.L().Debug("Ignoring unknown item request", zap.Int64("requestId", *requestID))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &request.ID, nil
}
