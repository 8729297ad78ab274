package request

import (
	"context"

	"shareit/app"
)

type ListOwnRequestsHandler struct {
	repository Repository
}

func NewListOwnRequestsHandler(repository Repository) *ListOwnRequestsHandler {
	return &ListOwnRequestsHandler{
		repository: repository,
	}
}

type ListOwnRequestsRequest struct{}

type ListOwnRequestsResponse []RequestResponse

func (h ListOwnRequestsHandler) Handle(ctx context.Context, _ *ListOwnRequestsRequest) (*ListOwnRequestsResponse, error) {
	userID, err := app.CallerID(ctx, "request.index")
	if err != nil {
		return nil, err
	}

	var res ListOwnRequestsResponse
	err = h.repository.RunInReadOnlyTx(ctx, func(ctx context.Context) error {
		if _, err := h.repository.GetUser(ctx, userID); err != nil {
			return app.LookupError(err, "request.index.user", "User", userID)
		}

		requests, err := h.repository.ListRequestsByRequester(ctx, userID)
		if err != nil {
			return err
		}

		res, err = withItems(ctx, h.repository, requests)
		return err
	})
	if err != nil {
		return nil, app.StorageError(err, "request.index.failed", "Failed to retrieve requests")
	}

	return &res, nil
}
