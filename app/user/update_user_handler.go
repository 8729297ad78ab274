package user

import (
	"context"
	"errors"
	"strings"

	"shareit/app"
	"shareit/domain"
	"shareit/pkg/httperror"

	"go.uber.org/zap"
)

type UpdateUserHandler struct {
	repository Repository
}

func NewUpdateUserHandler(repository Repository) *UpdateUserHandler {
	return &UpdateUserHandler{
		repository: repository,
	}
}

type UpdateUserRequest struct {
	UserID int64   `params:"id"`
	Email  *string `json:"email,omitempty" validate:"omitempty,email"`
	Name   *string `json:"name,omitempty" validate:"omitempty,notblank"`
}

type UpdateUserResponse struct {
	domain.User
}

func (h UpdateUserHandler) Handle(ctx context.Context, req *UpdateUserRequest) (*UpdateUserResponse, error) {
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		req.Email = &email
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}

	if err := app.Validate("user.update", req); err != nil {
		return nil, err
	}

	var user domain.User
	err := h.repository.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = h.repository.GetUser(ctx, req.UserID)
		if err != nil {
			return app.LookupError(err, "user.update", "User", req.UserID)
		}

		if req.Email == nil && req.Name == nil {
			return httperror.BadRequest(
				"user.update.empty",
				"At least one of email or name must be provided",
				nil,
			)
		}

		if req.Email != nil {
			user.Email = *req.Email
		}
		if req.Name != nil {
			user.Name = *req.Name
		}

		user, err = h.repository.UpdateUser(ctx, user)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, httperror.Conflict(
				"user.update.email_taken",
				"Email "+*req.Email+" is already in use",
				nil,
			)
		}
		return nil, app.StorageError(err, "user.update.update_failed", "An error occurred while updating the user")
	}

	zap.L().Info("User updated", zap.Int64("userId", user.ID))

	return &UpdateUserResponse{User: user}, nil
}
