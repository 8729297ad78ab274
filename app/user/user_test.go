package user_test

import (
	"context"
	"net/http"
	"testing"

	"shareit/app/user"
	"shareit/infra/memory"
	"shareit/pkg/httperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var httpErr *httperror.Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, status, httpErr.Status, httpErr.Code)
}

func create(t *testing.T, store *memory.Store, email, name string) *user.CreateUserResponse {
	t.Helper()
	res, err := user.NewCreateUserHandler(store).Handle(context.Background(), &user.CreateUserRequest{Email: email, Name: name})
	require.NoError(t, err)
	return res
}

func TestCreateUser(t *testing.T) {
	store := memory.NewStore()
	h := user.NewCreateUserHandler(store)
	ctx := context.Background()

	res, err := h.Handle(ctx, &user.CreateUserRequest{Email: " ann@example.com ", Name: "Ann"})
	require.NoError(t, err)
	assert.NotZero(t, res.ID)
	assert.Equal(t, "ann@example.com", res.Email)
	assert.False(t, res.RegisteredAt.IsZero())

	_, err = h.Handle(ctx, &user.CreateUserRequest{Email: "ann@example.com", Name: "Other"})
	requireStatus(t, err, http.StatusConflict)

	_, err = h.Handle(ctx, &user.CreateUserRequest{Email: "not-an-email", Name: "Bob"})
	requireStatus(t, err, http.StatusBadRequest)

	_, err = h.Handle(ctx, &user.CreateUserRequest{Email: "bob@example.com", Name: "   "})
	requireStatus(t, err, http.StatusBadRequest)
}

func TestUpdateUser(t *testing.T) {
	store := memory.NewStore()
	ann := create(t, store, "ann@example.com", "Ann")
	create(t, store, "bob@example.com", "Bob")
	h := user.NewUpdateUserHandler(store)
	ctx := context.Background()

	tests := []struct {
		name   string
		req    user.UpdateUserRequest
		status int
	}{
		{"nothing to change", user.UpdateUserRequest{UserID: ann.ID}, http.StatusBadRequest},
		{"unknown user", user.UpdateUserRequest{UserID: 999, Name: ptr("X")}, http.StatusNotFound},
		{"unknown user with nothing to change", user.UpdateUserRequest{UserID: 999}, http.StatusNotFound},
		{"email of another user", user.UpdateUserRequest{UserID: ann.ID, Email: ptr("bob@example.com")}, http.StatusConflict},
		{"malformed email", user.UpdateUserRequest{UserID: ann.ID, Email: ptr("nope")}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Handle(ctx, &tt.req)
			requireStatus(t, err, tt.status)
		})
	}

	t.Run("own email and new name", func(t *testing.T) {
		res, err := h.Handle(ctx, &user.UpdateUserRequest{UserID: ann.ID, Email: ptr("ann@example.com"), Name: ptr("Annie")})
		require.NoError(t, err)
		assert.Equal(t, "Annie", res.Name)
		assert.Equal(t, "ann@example.com", res.Email)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		res, err := h.Handle(ctx, &user.UpdateUserRequest{UserID: ann.ID, Email: ptr("ann@new.example.com")})
		require.NoError(t, err)
		assert.Equal(t, "Annie", res.Name)
		assert.Equal(t, "ann@new.example.com", res.Email)
	})
}

func TestDeleteUser(t *testing.T) {
	store := memory.NewStore()
	ann := create(t, store, "ann@example.com", "Ann")
	ctx := context.Background()

	res, err := user.NewDeleteUserHandler(store).Handle(ctx, &user.DeleteUserRequest{UserID: ann.ID})
	require.NoError(t, err)
	assert.Contains(t, res.Message, "deleted")

	_, err = user.NewGetUserHandler(store).Handle(ctx, &user.GetUserRequest{UserID: ann.ID})
	requireStatus(t, err, http.StatusNotFound)

	_, err = user.NewDeleteUserHandler(store).Handle(ctx, &user.DeleteUserRequest{UserID: ann.ID})
	requireStatus(t, err, http.StatusNotFound)
}

func TestListUsers(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	res, err := user.NewListUsersHandler(store).Handle(ctx, &user.ListUsersRequest{})
	require.NoError(t, err)
	assert.Empty(t, *res)
	assert.NotNil(t, *res)

	create(t, store, "ann@example.com", "Ann")
	create(t, store, "bob@example.com", "Bob")

	res, err = user.NewListUsersHandler(store).Handle(ctx, &user.ListUsersRequest{})
	require.NoError(t, err)
	require.Len(t, *res, 2)
	assert.Equal(t, "Ann", (*res)[0].Name)
}
