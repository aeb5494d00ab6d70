package core

// validation.go checks a BookRequest before it is allowed to reach the store.
//
// Only field constraints are checked here. Presence and type of the fields are
// enforced by the transport's decode step, which produces a DecodeError
// instead. Page counts are deliberately not bounded.

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Name length bounds, counted in characters.
const (
	NameMinLength = 3
	NameMaxLength = 100
)

var validate = newValidator()

// newValidator reports field names by their form key so that errors match
// what the user sees in the form.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks req against its field constraints.
// It returns nil or a *ValidationError for the first failing field.
func Validate(req BookRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate book request: %w", err)
	}

	fe := fieldErrs[0]
	return &ValidationError{
		Field:  fe.Field(),
		Value:  fmt.Sprint(fe.Value()),
		Reason: reasonFor(fe),
	}
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed the %q check", fe.Tag())
	}
}
