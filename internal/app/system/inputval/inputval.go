// Package inputval validates login and registration form input before
// the backend is called. The backend clients do not re-validate; this
// is the single pre-validation point.
package inputval

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoginInput is the login form contract: RFC-shape email, password of
// at least 8 characters.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

// RegisterInput is the registration form contract.
type RegisterInput struct {
	InvitationToken string `validate:"required"`
	FirstName       string `validate:"required,max=100"`
	LastName        string `validate:"required,max=100"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=8"`
	Phone           string `validate:"omitempty,max=32"`
}

// Check validates a form struct and returns a user-facing message for
// the first offending field, or "" when the input is acceptable.
func Check(s any) string {
	err := validate.Struct(s)
	if err == nil {
		return ""
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "Invalid form data."
	}
	return messageFor(verrs[0])
}

func messageFor(fe validator.FieldError) string {
	field := humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", field)
	case "email":
		return "Please enter a valid email address."
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", field)
	}
}

// humanize turns a field name like "InvitationToken" into
// "Invitation token".
func humanize(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
