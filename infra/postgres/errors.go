package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"shareit/domain"

	"github.com/lib/pq"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// mapError converts driver errors into domain sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, pqErr.Constraint)
		case foreignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrNotFound, pqErr.Constraint)
		}
	}
	return fmt.Errorf("postgres: %w", err)
}
