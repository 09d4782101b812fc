package validator

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidPattern is returned when a regex constraint declares a pattern
	// that does not compile.
	ErrInvalidPattern = errors.New("invalid regular expression")

	// ErrUnexpectedType is returned when a constraint is declared on a type it
	// cannot validate.
	ErrUnexpectedType = errors.New("unexpected type for constraint")

	// ErrInvalidTarget is returned by Struct when the value is not a struct or
	// a non-nil pointer to one.
	ErrInvalidTarget = errors.New("validation target must be a struct")
)

// ConfigError reports a broken constraint declaration. It is a programming
// error, never a validation failure, and is kept apart from ValidationErrors.
type ConfigError struct {
	Type       reflect.Type
	Field      string
	Constraint string
	Err        error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Type != nil && e.Field != "":
		return fmt.Sprintf("validator: %s constraint on %s.%s: %v", e.Constraint, e.Type, e.Field, e.Err)
	case e.Field != "":
		return fmt.Sprintf("validator: %s constraint on %s: %v", e.Constraint, e.Field, e.Err)
	default:
		return fmt.Sprintf("validator: %s constraint: %v", e.Constraint, e.Err)
	}
}

func (e *ConfigError) Unwrap() error { return e.Err }

// UnexpectedTypeError names the type a constraint was declared on.
type UnexpectedTypeError struct {
	Type reflect.Type
}

func (e *UnexpectedTypeError) Error() string {
	if e.Type == nil {
		return "unexpected type <nil>: expected a character sequence"
	}
	return fmt.Sprintf("unexpected type %s: expected a character sequence", e.Type)
}

func (e *UnexpectedTypeError) Unwrap() error { return ErrUnexpectedType }

// IsConfigError reports whether err carries a *ConfigError.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
