package utils

import (
	stdErrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// NewValidator returns a validator that reports JSON field names and knows
// the notblank tag.
func NewValidator() *validator.Validate {

	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("registering notblank validation: %v", err))
	}

	return validate
}

// ValidateStruct converts validator failures into a single validation
// AppError. Missing required fields are reported together.
func ValidateStruct(validate *validator.Validate, data any) error {

	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !stdErrors.As(err, &validationErrs) {
		return errors.InternalError("Unexpected validation error").WithError(err)
	}

	var missing []string

	for _, fieldErr := range validationErrs {
		if fieldErr.Tag() == "required" {
			missing = append(missing, fieldErr.Field())
		}
	}

	if len(missing) > 0 {
		return errors.MissingFieldsError(missing).WithError(err)
	}

	first := validationErrs[0]

	return errors.AddValidationError(first.Field(), fieldReason(first)).WithError(err)
}

func fieldReason(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "notblank":
		return "must not be blank"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fieldErr.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fieldErr.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fieldErr.Param())
	default:
		return fmt.Sprintf("failed the '%s' check", fieldErr.Tag())
	}
}
