package postgres

import (
	"context"

	"shareit/domain"

	sq "github.com/Masterminds/squirrel"
)

var userColumns = []string{"id", "email", "name", "registered_at"}

func (r *PgRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0)
	err := r.selectAll(ctx, &users, psql.Select(userColumns...).From("users").OrderBy("id"))
	return users, err
}

func (r *PgRepository) GetUser(ctx context.Context, id int64) (domain.User, error) {
	var u domain.User
	err := r.get(ctx, &u, psql.Select(userColumns...).From("users").Where(sq.Eq{"id": id}))
	return u, err
}

func (r *PgRepository) GetUsersByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	users := make([]domain.User, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}
	err := r.selectAll(ctx, &users, psql.Select(userColumns...).From("users").Where(sq.Eq{"id": ids}))
	return users, err
}

func (r *PgRepository) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	qb := psql.Insert("users").
		Columns("email", "name", "registered_at").
		Values(user.Email, user.Name, user.RegisteredAt).
		Suffix("RETURNING id")

	err := r.get(ctx, &user.ID, qb)
	return user, err
}

func (r *PgRepository) UpdateUser(ctx context.Context, user domain.User) (domain.User, error) {
	qb := psql.Update("users").
		Set("email", user.Email).
		Set("name", user.Name).
		Where(sq.Eq{"id": user.ID})

	return user, r.exec(ctx, qb)
}

func (r *PgRepository) DeleteUser(ctx context.Context, id int64) error {
	return r.exec(ctx, psql.Delete("users").Where(sq.Eq{"id": id}))
}
