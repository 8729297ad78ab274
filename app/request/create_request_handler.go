package request

import (
	"context"
	"strings"
	"time"

	"shareit/app"
	"shareit/domain"
	"shareit/pkg/events"

	"go.uber.org/zap"
)

type CreateRequestHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

func NewCreateRequestHandler(repository Repository, eventPublisher events.Publisher) *CreateRequestHandler {
	return &CreateRequestHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

type CreateRequestRequest struct {
	Description string `json:"description" validate:"required,notblank"`
}

type CreateRequestResponse struct {
	RequestResponse
}

func (h CreateRequestHandler) Handle(ctx context.Context, req *CreateRequestRequest) (*CreateRequestResponse, error) {
	userID, err := app.CallerID(ctx, "request.create")
	if err != nil {
		return nil, err
	}

	req.Description = strings.TrimSpace(req.Description)
	if err := app.Validate("request.create", req); err != nil {
		return nil, err
	}

	var request domain.ItemRequest
	err = h.repository.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := h.repository.GetUser(ctx, userID); err != nil {
			return app.LookupError(err, "request.create.user", "User", userID)
		}

		var err error
		request, err = h.repository.CreateRequest(ctx, domain.ItemRequest{
			RequesterID: userID,
			Description: req.Description,
			CreatedAt:   time.Now().UTC(),
		})
		return err
	})
	if err != nil {
		return nil, app.StorageError(err, "request.create.create_failed", "An error occurred while creating the request")
	}

	zap.L().Info("Item request created", zap.Int64("requestId", request.ID), zap.Int64("userId", userID))
	events.Emit(ctx, h.eventPublisher, events.RequestExchange, events.RequestCreatedEvent, events.RequestPayload{
		ID:          request.ID,
		RequesterID: request.RequesterID,
		Description: request.Description,
		At:          request.CreatedAt,
	})

	return &CreateRequestResponse{
		RequestResponse: toRequestResponse(request, nil),
	}, nil
}
