package request

import (
	"context"

	"shareit/app"
	"shareit/domain"
)

type GetRequestHandler struct {
	repository Repository
}

func NewGetRequestHandler(repository Repository) *GetRequestHandler {
	return &GetRequestHandler{
		repository: repository,
	}
}

type GetRequestRequest struct {
	RequestID int64 `params:"id"`
}

type GetRequestResponse struct {
	RequestResponse
}

func (h GetRequestHandler) Handle(ctx context.Context, req *GetRequestRequest) (*GetRequestResponse, error) {
	userID, err := app.CallerID(ctx, "request.show")
	if err != nil {
		return nil, err
	}

	var res GetRequestResponse
	err = h.repository.RunInReadOnlyTx(ctx, func(ctx context.Context) error {
		if _, err := h.repository.GetUser(ctx, userID); err != nil {
			return app.LookupError(err, "request.show.user", "User", userID)
		}

		request, err := h.repository.GetRequest(ctx, req.RequestID)
		if err != nil {
			return app.LookupError(err, "request.show", "Request", req.RequestID)
		}

		annotated, err := withItems(ctx, h.repository, []domain.ItemRequest{request})
		if err != nil {
			return err
		}
		res.RequestResponse = annotated[0]
		return nil
	})
	if err != nil {
		return nil, app.StorageError(err, "request.show.failed", "Failed to retrieve request")
	}

	return &res, nil
}
