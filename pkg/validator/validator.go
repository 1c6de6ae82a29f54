package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/kasirhub/kasir-pos/pkg/apperror"
)

var validate = validator.New()

func init() {
	// Discount percentages live in [0,100]; >100 must be rejected at the
	// boundary, never clamped downstream.
	validate.RegisterValidation("discount_percent", func(fl validator.FieldLevel) bool {
		v := fl.Field().Float()
		return v >= 0 && v <= 100
	})
}

// ValidateStruct validates a struct using its `validate` tags and returns
// field errors suitable for an API response.
func ValidateStruct(data interface{}) []apperror.FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var fieldErrors []apperror.FieldError
	for _, ve := range err.(validator.ValidationErrors) {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   ve.Field(),
			Message: "failed on " + ve.Tag(),
		})
	}
	return fieldErrors
}
