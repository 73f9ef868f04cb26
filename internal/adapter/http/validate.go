package adapthttp

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateStruct returns per-field messages for any failed validation
// tags, or nil when the payload is valid.
func validateStruct(payload any) map[string]string {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			name := strings.ToLower(fieldError.Field())
			switch fieldError.Tag() {
			case "required":
				fieldErrors[name] = fmt.Sprintf("the %s field is required", name)
			case "email":
				fieldErrors[name] = "the email must be a valid email address"
			case "min":
				fieldErrors[name] = fmt.Sprintf("the %s must be at least %s characters", name, fieldError.Param())
			default:
				fieldErrors[name] = fmt.Sprintf("the %s field is invalid", name)
			}
		}
	}

	return fieldErrors
}
