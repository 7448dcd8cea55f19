package apierrors

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// buildValidationMessage joins one message per failed field
func buildValidationMessage(validationErrs validator.ValidationErrors) string {
	switch len(validationErrs) {
	case 0:
		return "Invalid request"
	case 1:
		return getValidationMessage(validationErrs[0])
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, getValidationMessage(fieldErr))
	}
	return "Validation failed: " + strings.Join(messages, "; ")
}

// getValidationMessage names the field the way clients send it (send_at, not SendAt)
func getValidationMessage(fieldErr validator.FieldError) string {
	field := snakeCase(fieldErr.Field())
	unit := ""
	if fieldErr.Kind() == reflect.String {
		unit = " characters"
	} else if fieldErr.Kind() == reflect.Slice {
		unit = " entries"
	}

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", field, fieldErr.Param(), unit)
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", field, fieldErr.Param(), unit)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fieldErr.Param())
	case "dive":
		return fmt.Sprintf("%s contains an invalid entry", field)
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fieldErr.Tag())
	}
}

func snakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
