// Package validation provides the constrained-value type and the predicate
// catalog used to enforce PayPal's field-level formats on model construction,
// mutation and decode.
package validation

import (
	"fmt"

	"go.uber.org/multierr"
)

// FieldError is returned when a value fails the predicate attached to a field.
// It always names the offending field and the violated constraint.
type FieldError struct {
	Field      string
	Constraint string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field [%s] violates constraint: %s", e.Field, e.Constraint)
}

// NewFieldError creates a FieldError for the given field and constraint description.
func NewFieldError(field, constraint string) *FieldError {
	return &FieldError{Field: field, Constraint: constraint}
}

// DecodeError is returned when incoming JSON does not match the expected
// shape: a missing required key, a wrong JSON type, an unrecognised enum
// string or an unparseable composite format.
type DecodeError struct {
	Type   string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error decoding %s: [%s]", e.Type, e.Reason)
}

// NewDecodeError creates a DecodeError for the given wire type.
func NewDecodeError(wireType, format string, args ...interface{}) *DecodeError {
	return &DecodeError{Type: wireType, Reason: fmt.Sprintf(format, args...)}
}

// EncodeError is returned when a value cannot be represented in the wire
// format, e.g. an unsupported patch value type.
type EncodeError struct {
	Type   string
	Reason string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("error encoding %s: [%s]", e.Type, e.Reason)
}

// NewEncodeError creates an EncodeError for the given wire type.
func NewEncodeError(wireType, format string, args ...interface{}) *EncodeError {
	return &EncodeError{Type: wireType, Reason: fmt.Sprintf(format, args...)}
}

// Combine aggregates the validation failures of independent fields so that a
// decode reports every offending field at once rather than the first.
func Combine(errs ...error) error {
	return multierr.Combine(errs...)
}
