package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrUnknown            = errors.New("unknown error")
	ErrValidation         = errors.New("validation error")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)
	ErrConflict           = errors.New("conflict")

	ErrDueAlreadyPaid = fmt.Errorf("%w: due already paid", ErrConflict)
)

// ValidationError ошибка валидации конкретного поля. errors.Is(err, ErrValidation) для нее истинно.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ForbiddenError сообщает, что участник аутентифицирован, но не имеет права на операцию.
type ForbiddenError struct {
	Reason string
}

func NewForbiddenError(reason string) error {
	return &ForbiddenError{Reason: reason}
}

func (e *ForbiddenError) Error() string {
	return e.Reason
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}
