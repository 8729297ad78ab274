package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"shareit/app"
	"shareit/domain"
	"shareit/pkg/httperror"

	"go.uber.org/zap"
)

type CreateUserHandler struct {
	repository Repository
}

func NewCreateUserHandler(repository Repository) *CreateUserHandler {
	return &CreateUserHandler{
		repository: repository,
	}
}

type CreateUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,notblank"`
}

type CreateUserResponse struct {
	domain.User
}

func (h CreateUserHandler) Handle(ctx context.Context, req *CreateUserRequest) (*CreateUserResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)

	if err := app.Validate("user.create", req); err != nil {
		return nil, err
	}

	var user domain.User
	err := h.repository.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = h.repository.CreateUser(ctx, domain.User{
			Email:        req.Email,
			Name:         req.Name,
			RegisteredAt: time.Now().UTC(),
		})
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, httperror.Conflict(
				"user.create.email_taken",
				"Email "+req.Email+" is already in use",
				nil,
			)
		}
		return nil, app.StorageError(err, "user.create.create_failed", "An error occurred while creating the user")
	}

	zap.L().Info("User created", zap.Int64("userId", user.ID))

	return &CreateUserResponse{User: user}, nil
}
