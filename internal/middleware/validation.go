package middleware

import (
	"github.com/go-playground/validator/v10"

	"github.com/peerconnect/peerconnect/internal/app/models/dto"
)

var validate = validator.New()

// ValidateStruct runs the `validate` tags of a bound request body and maps
// the first failure to an ErrorDetail. Returns nil when the struct passes.
func ValidateStruct(obj interface{}) *dto.ErrorDetail {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
		e := fieldErrors[0]
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, formatValidationError(e)).WithField(e.Field())
	}

	return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
