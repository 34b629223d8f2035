package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindingErrorMessage turns a gin binding error into a client-facing message.
// Validator failures list the offending fields; everything else (malformed
// JSON, type mismatches) gets a generic message.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request format: " + err.Error()
	}

	parts := make([]string, len(verrs))
	for i, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts[i] = fmt.Sprintf("%s is required", fe.Field())
		case "datetime":
			parts[i] = fmt.Sprintf("%s must be a YYYY-MM-DD date", fe.Field())
		case "len", "alpha":
			parts[i] = fmt.Sprintf("%s must be a 3-letter currency code", fe.Field())
		case "oneof":
			parts[i] = fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
		default:
			parts[i] = fmt.Sprintf("%s failed validation (%s)", fe.Field(), fe.Tag())
		}
	}
	return strings.Join(parts, "; ")
}
