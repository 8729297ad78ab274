package app

import (
	"context"
	"errors"
	"fmt"

	"shareit/domain"
	"shareit/pkg/ctxutil"
	"shareit/pkg/httperror"
)

// LookupError converts a failed lookup of entity id into a 404 or a 500.
func LookupError(err error, code, entity string, id int64) error {
	var httpErr *httperror.Error
	if errors.As(err, &httpErr) {
		return err
	}
	if errors.Is(err, domain.ErrNotFound) {
		return httperror.NotFound(
			code+".not_found",
			fmt.Sprintf("%s with id %d not found", entity, id),
			nil,
		)
	}
	return httperror.InternalServerError(
		code+".failed",
		fmt.Sprintf("Failed to retrieve %s", entity),
		err,
	)
}

// StorageError wraps an unexpected storage failure. HTTP errors pass through.
func StorageError(err error, code, message string) error {
	var httpErr *httperror.Error
	if errors.As(err, &httpErr) {
		return err
	}
	return httperror.InternalServerError(code, message, err)
}

// CallerID returns the X-Sharer-User-Id identity or a 400 when it is absent.
func CallerID(ctx context.Context, code string) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, httperror.BadRequest(
			code+".missing_user",
			"X-Sharer-User-Id header is required",
			nil,
		)
	}
	return userID, nil
}
