// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	domainerrors "wander/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the request validator
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct tags and reports every failed field as a
// VALIDATION_FAILED error
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, fieldErr.Namespace()+" failed "+fieldErr.Tag())
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(fields, "; "))
}
