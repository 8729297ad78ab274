package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"shareit/domain"
	"shareit/pkg/ctxutil"
	"shareit/pkg/httperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var httpErr *httperror.Error
	require.True(t, errors.As(err, &httpErr), "expected *httperror.Error, got %T", err)
	return httpErr.Status
}

func TestLookupError(t *testing.T) {
	notFound := LookupError(fmt.Errorf("user 7: %w", domain.ErrNotFound), "user.show", "user", 7)
	assert.Equal(t, http.StatusNotFound, statusOf(t, notFound))
	assert.Contains(t, notFound.Error(), "user with id 7 not found")

	internal := LookupError(errors.New("boom"), "user.show", "user", 7)
	assert.Equal(t, http.StatusInternalServerError, statusOf(t, internal))

	passthrough := httperror.BadRequest("x", "y", nil)
	assert.Same(t, passthrough, LookupError(passthrough, "user.show", "user", 7))
}

func TestCallerID(t *testing.T) {
	_, err := CallerID(context.Background(), "item.create")
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	id, err := CallerID(ctxutil.WithUserID(context.Background(), 3), "item.create")
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestPage(t *testing.T) {
	_, err := Page("item.index", -1, 10)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	page, err := Page("item.index", 20, 10)
	require.NoError(t, err)
	assert.Equal(t, 20, page.Offset())
}

type sample struct {
	Name  string `validate:"notblank"`
	Email string `validate:"required,email"`
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("user.create", &sample{Name: "Ann", Email: "ann@example.com"}))

	err := Validate("user.create", &sample{Name: "   ", Email: "ann@example.com"})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	err = Validate("user.create", &sample{Name: "Ann", Email: "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}
