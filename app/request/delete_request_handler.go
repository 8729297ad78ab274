package request

import (
	"context"
	"fmt"
	"time"

	"shareit/app"
	"shareit/pkg/events"
	"shareit/pkg/httperror"

	"go.uber.org/zap"
)

type DeleteRequestHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

func NewDeleteRequestHandler(repository Repository, eventPublisher events.Publisher) *DeleteRequestHandler {
	return &DeleteRequestHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

type DeleteRequestRequest struct {
	RequestID int64 `params:"id"`
}

type DeleteRequestResponse struct {
	Message string `json:"message"`
}

// Handle deletes a request on behalf of its author. Items created for it stay
// listed and lose the reference.
func (h DeleteRequestHandler) Handle(ctx context.Context, req *DeleteRequestRequest) (*DeleteRequestResponse, error) {
	userID, err := app.CallerID(ctx, "request.destroy")
	if err != nil {
		return nil, err
	}

	err = h.repository.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := h.repository.GetUser(ctx, userID); err != nil {
			return app.LookupError(err, "request.destroy.user", "User", userID)
		}

		request, err := h.repository.GetRequest(ctx, req.RequestID)
		if err != nil {
			return app.LookupError(err, "request.destroy", "Request", req.RequestID)
		}
		if request.RequesterID != userID {
			return httperror.BadRequest(
				"request.destroy.not_author",
				"Only the author can delete a request",
				nil,
			)
		}

		if err := h.repository.DeleteRequest(ctx, request.ID); err != nil {
			return app.LookupError(err, "request.destroy", "Request", request.ID)
		}
		return nil
	})
	if err != nil {
		return nil, app.StorageError(err, "request.destroy.failed", "Failed to delete request")
	}

	zap.L().Info("Item request deleted", zap.Int64("requestId", req.RequestID), zap.Int64("userId", userID))
	events.Emit(ctx, h.eventPublisher, events.RequestExchange, events.RequestDeletedEvent, events.RequestPayload{
		ID:          req.RequestID,
		RequesterID: userID,
		At:          time.Now().UTC(),
	})

	return &DeleteRequestResponse{
		Message: fmt.Sprintf("Request with id %d deleted", req.RequestID),
	}, nil
}
