package service

import (
	"errors"
	"fmt"
	"strings"

	apperrors "org-management-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validationError converts validator failures into the API validation error
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}

	fe := fieldErrs[0]
	field := toSnakeCase(fe.Field())
	switch fe.Tag() {
	case "required":
		return apperrors.NewValidationError(field, "is required")
	case "email":
		return apperrors.NewValidationError(field, "must be a valid email address")
	case "max":
		return apperrors.NewValidationError(field, fmt.Sprintf("must be at most %s characters", fe.Param()))
	case "min":
		return apperrors.NewValidationError(field, fmt.Sprintf("must be at least %s characters", fe.Param()))
	}
	return apperrors.NewValidationError(field, fmt.Sprintf("failed on %q", fe.Tag()))
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
