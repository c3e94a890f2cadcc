// Package validate wraps go-playground/validator for the scalar checks the
// lecture models perform on every mutation.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidArgument is the sentinel every validation failure unwraps to.
var ErrInvalidArgument = errors.New("invalid argument")

// ValidationError reports which field was rejected and why.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }

// v is safe for concurrent use; validator caches parsed tags internally.
var v = validator.New()

// check runs a single validator tag against value and converts a failure
// into a ValidationError.
func check(field string, value any, tag, msg string) error {
	if err := v.Var(value, tag); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return &ValidationError{Field: field, Message: msg}
		}
		// InvalidValidationError: the tag itself is malformed.
		return fmt.Errorf("validating %s: %w", field, err)
	}
	return nil
}

// NonEmpty rejects the empty string. Whitespace is accepted.
func NonEmpty(field, value string) error {
	return check(field, value, "required", "cannot be empty")
}

// NonBlank rejects strings that are empty after trimming whitespace.
func NonBlank(field, value string) error {
	return check(field, strings.TrimSpace(value), "required", "cannot be blank")
}

// NonNegative rejects values below zero.
func NonNegative[T int | float64](field string, value T) error {
	return check(field, value, "gte=0", "cannot be negative")
}

// Between rejects ints outside [lo, hi].
func Between(field string, value, lo, hi int) error {
	tag := fmt.Sprintf("gte=%d,lte=%d", lo, hi)
	return check(field, value, tag, fmt.Sprintf("must be between %d and %d", lo, hi))
}
