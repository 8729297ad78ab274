package user

import (
	"context"

	"shareit/app"
	"shareit/domain"
)

type Repository interface {
	app.Transactor
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int64) (domain.User, error)
	// CreateUser returns domain.ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	// UpdateUser returns domain.ErrAlreadyExists when the email belongs to another user.
	UpdateUser(ctx context.Context, user domain.User) (domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
