package app

import (
	"errors"
	"strings"

	"shareit/domain"
	"shareit/pkg/httperror"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Validator returns the shared validator with the notblank rule registered.
func Validator() *validator.Validate {
	return validate
}

// Validate checks req against its struct tags and returns a 400 on failure.
func Validate(code string, req any) error {
	if err := validate.Struct(req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return httperror.BadRequest(
				code+".validation_failed",
				"Validation failed for the request",
				ve.Error(),
			)
		}

		return httperror.InternalServerError(
			code+".validation_error",
			"An unexpected validation error occurred",
			err,
		)
	}
	return nil
}

// Page validates from/size and returns the storage window.
func Page(code string, from, size int) (domain.Page, error) {
	page, err := domain.NewPage(from, size)
	if err != nil {
		return domain.Page{}, httperror.BadRequest(code+".invalid_page", err.Error(), nil)
	}
	return page, nil
}
