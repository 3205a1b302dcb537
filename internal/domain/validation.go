package domain

import (
	"fmt"
	"strings"
)

// NonFieldErrors is the pseudo field name used for cross-field rules.
const NonFieldErrors = "non_field_errors"

// ValidationError describes a single rule violation on one field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field violations for one request.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

// ByField groups messages under their field name, the shape the API
// returns to clients.
func (e ValidationErrors) ByField() map[string][]string {
	grouped := make(map[string][]string, len(e))
	for _, v := range e {
		grouped[v.Field] = append(grouped[v.Field], v.Message)
	}
	return grouped
}

// NewFieldError creates a validation error bound to a named field.
func NewFieldError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}

// NewNonFieldError creates a validation error for a cross-field rule.
func NewNonFieldError(message string) ValidationError {
	return ValidationError{Field: NonFieldErrors, Message: message}
}

// NewMissingFieldError creates a validation error for a required field.
func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "This field is required."}
}

// NewOutOfRangeError creates a validation error for a value outside its
// allowed range.
func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("Value %d is out of range [%d, %d]", value, min, max),
	}
}

// NewInvalidFormatError creates a validation error for a malformed value.
func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("Invalid format: %s", value)}
}

// FieldErrors wraps one or more violations into an error value.
func FieldErrors(errs ...ValidationError) ValidationErrors {
	return ValidationErrors(errs)
}
