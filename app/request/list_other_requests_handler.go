package request

import (
	"context"

	"shareit/app"
	"shareit/domain"
)

type ListOtherRequestsHandler struct {
	repository Repository
}

func NewListOtherRequestsHandler(repository Repository) *ListOtherRequestsHandler {
	return &ListOtherRequestsHandler{
		repository: repository,
	}
}

type ListOtherRequestsRequest struct {
	From int `query:"from"`
	Size int `query:"size"`
}

func (r *ListOtherRequestsRequest) Defaults() {
	r.Size = domain.DefaultPageSize
}

type ListOtherRequestsResponse []RequestResponse

func (h ListOtherRequestsHandler) Handle(ctx context.Context, req *ListOtherRequestsRequest) (*ListOtherRequestsResponse, error) {
	userID, err := app.CallerID(ctx, "request.all")
	if err != nil {
		return nil, err
	}

	page, err := app.Page("request.all", req.From, req.Size)
	if err != nil {
		return nil, err
	}

	var res ListOtherRequestsResponse
	err = h.repository.RunInReadOnlyTx(ctx, func(ctx context.Context) error {
		if _, err := h.repository.GetUser(ctx, userID); err != nil {
			return app.LookupError(err, "request.all.user", "User", userID)
		}

		requests, err := h.repository.ListOtherRequests(ctx, userID, page.Limit(), page.Offset())
		if err != nil {
			return err
		}

		res, err = withItems(ctx, h.repository, requests)
		return err
	})
	if err != nil {
		return nil, app.StorageError(err, "request.all.failed", "Failed to retrieve requests")
	}

	return &res, nil
}
