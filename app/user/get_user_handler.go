package user

import (
	"context"

	"shareit/app"
	"shareit/domain"
)

type GetUserHandler struct {
	repository Repository
}

func NewGetUserHandler(repository Repository) *GetUserHandler {
	return &GetUserHandler{
		repository: repository,
	}
}

type GetUserRequest struct {
	UserID int64 `params:"id"`
}

type GetUserResponse struct {
	domain.User
}

func (h GetUserHandler) Handle(ctx context.Context, req *GetUserRequest) (*GetUserResponse, error) {
	var user domain.User
	err := h.repository.RunInReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = h.repository.GetUser(ctx, req.UserID)
		return err
	})
	if err != nil {
		return nil, app.LookupError(err, "user.show", "User", req.UserID)
	}

	return &GetUserResponse{User: user}, nil
}
