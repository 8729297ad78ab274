package user

import (
	"context"

	"shareit/app"
	"shareit/domain"
)

type ListUsersHandler struct {
	repository Repository
}

func NewListUsersHandler(repository Repository) *ListUsersHandler {
	return &ListUsersHandler{
		repository: repository,
	}
}

type ListUsersRequest struct{}

type ListUsersResponse []domain.User

func (h ListUsersHandler) Handle(ctx context.Context, _ *ListUsersRequest) (*ListUsersResponse, error) {
	var users []domain.User
	err := h.repository.RunInReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		users, err = h.repository.ListUsers(ctx)
		return err
	})
	if err != nil {
		return nil, app.StorageError(err, "user.index.failed", "Failed to retrieve users")
	}

	res := ListUsersResponse(users)
	if res == nil {
		res = ListUsersResponse{}
	}
	return &res, nil
}
