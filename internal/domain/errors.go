package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrValidation       = errors.New("validation error")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidReference = errors.New("invalid reference")
	ErrAlreadyLent      = errors.New("book is already lent out")
	ErrNotCurrentlyLent = errors.New("book is not currently lent out")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		if e.Errors[0].Field == "" {
			return "validation: " + e.Errors[0].Message
		}
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ReferenceError reports a genre or format id that does not resolve.
type ReferenceError struct {
	Kind string // "genre" or "format"
	ID   int64
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("invalid %s id %d", e.Kind, e.ID)
}

func (e *ReferenceError) Unwrap() error { return ErrInvalidReference }

// Messages renders err as the human-readable list returned to API clients.
// Field errors are expanded one message per field; a field error without a
// field name renders as its bare message.
func Messages(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			if fe.Field == "" {
				msgs = append(msgs, fe.Message)
				continue
			}
			msgs = append(msgs, fe.Field+": "+fe.Message)
		}
		return msgs
	}

	var re *ReferenceError
	if errors.As(err, &re) {
		switch re.Kind {
		case "genre":
			return []string{"Invalid GenreId."}
		case "format":
			return []string{"Invalid FormatId."}
		}
	}

	switch {
	case errors.Is(err, ErrAlreadyLent):
		return []string{"Book is already lent out"}
	case errors.Is(err, ErrNotCurrentlyLent):
		return []string{"Book is not currently lent out"}
	case errors.Is(err, ErrNotFound):
		return []string{"Not found"}
	case errors.Is(err, ErrForbidden):
		return []string{"Forbidden"}
	case errors.Is(err, ErrUnauthorized):
		return []string{"Unauthorized"}
	}
	return []string{"Internal server error"}
}
