package user

import (
	"context"
	"fmt"

	"shareit/app"

	"go.uber.org/zap"
)

type DeleteUserHandler struct {
	repository Repository
}

func NewDeleteUserHandler(repository Repository) *DeleteUserHandler {
	return &DeleteUserHandler{
		repository: repository,
	}
}

type DeleteUserRequest struct {
	UserID int64 `params:"id"`
}

type DeleteUserResponse struct {
	Message string `json:"message"`
}

func (h DeleteUserHandler) Handle(ctx context.Context, req *DeleteUserRequest) (*DeleteUserResponse, error) {
	err := h.repository.RunInTx(ctx, func(ctx context.Context) error {
		return h.repository.DeleteUser(ctx, req.UserID)
	})
	if err != nil {
		return nil, app.LookupError(err, "user.destroy", "User", req.UserID)
	}

	zap.L().Info("User deleted", zap.Int64("userId", req.UserID))

	return &DeleteUserResponse{
		Message: fmt.Sprintf("User with id %d deleted", req.UserID),
	}, nil
}
