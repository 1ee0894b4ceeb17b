// ripple/utils/validate/validate.go
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,4}$`)

var instance = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("email_format", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})
	return v
}

// Struct runs the shared validator over a request struct.
func Struct(v any) error {
	return instance.Struct(v)
}

// Email reports whether s looks like a valid email address.
func Email(s string) bool {
	return emailRegex.MatchString(s)
}

// Messages flattens validator field errors into one client-facing string.
func Messages(err error) string {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required!", fe.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters long!", fe.Field(), fe.Param()))
		case "email_format":
			msgs = append(msgs, "Invalid email address!")
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid!", fe.Field()))
		}
	}
	return strings.Join(msgs, ", ")
}
