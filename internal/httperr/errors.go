package httperr

import (
	"errors"
	"fmt"
	"strings"
)

// BusinessError is a rejected request identified only by a stable code,
// e.g. image_storage_disabled.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	return errors.As(err, &be) && be.Code == code
}

// FieldError is a violated validation rule on a single input field.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func InvalidField(field, reason string) error {
	return FieldError{Field: field, Reason: reason}
}

// FieldErrors groups several FieldError values reported together.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return strings.Join(parts, "; ")
}

type NotFoundError struct {
	Entity string
	ID     uint
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func ErrNotFound(entity string, id uint) error {
	return NotFoundError{Entity: entity, ID: id}
}

// ConstraintError reports a uniqueness or required-reference violation on write.
type ConstraintError struct {
	Entity string
	Field  string
	Reason string
}

func (e ConstraintError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Entity, e.Field, e.Reason)
}

func ErrConstraint(entity, field, reason string) error {
	return ConstraintError{Entity: entity, Field: field, Reason: reason}
}

// ScopeError is returned when a narrow update payload carries fields outside its scope.
type ScopeError struct {
	Allowed []string
	Fields  []string
}

func (e ScopeError) Error() string {
	return fmt.Sprintf(
		"only %s may be updated here, got %s",
		strings.Join(e.Allowed, ", "),
		strings.Join(e.Fields, ", "),
	)
}

func ErrScope(allowed, fields []string) error {
	return ScopeError{Allowed: allowed, Fields: fields}
}
