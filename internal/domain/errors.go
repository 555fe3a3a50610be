package domain

import (
	"errors"
	"fmt"
)

// Kind sentinels. Every leaf error below unwraps to exactly one of them.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
	ErrTransfer   = errors.New("transfer error")
)

// Error is a named failure that belongs to one of the kind sentinels.
type Error struct {
	kind error
	msg  string
}

func newError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

// Validation failures. Always returned before any state change.
var (
	ErrInvalidName            = newError(ErrValidation, "invalid name")
	ErrInvalidPrice           = newError(ErrValidation, "invalid price")
	ErrZeroDuration           = newError(ErrValidation, "duration must be positive")
	ErrDurationTooLong        = newError(ErrValidation, "duration too long")
	ErrInvalidBuyer           = newError(ErrValidation, "invalid buyer")
	ErrInvalidAccount         = newError(ErrValidation, "invalid account")
	ErrIncorrectPaymentAmount = newError(ErrValidation, "incorrect payment amount")
	ErrPercentageExceeded     = newError(ErrValidation, "percentage exceeds 100")
	ErrUsedExceedsTotal       = newError(ErrValidation, "used days exceed total days")
	ErrAmountOverflow         = newError(ErrValidation, "amount overflows")
)

// Not-found failures.
var (
	ErrCategoryNotFound = newError(ErrNotFound, "category not found")
	ErrRequestNotFound  = newError(ErrNotFound, "request not found")
)

// Authorization failures.
var (
	ErrUnauthorized = newError(ErrForbidden, "unauthorized")
	ErrNotBuyer     = newError(ErrForbidden, "caller is not the buyer")
)

// State conflicts.
var (
	ErrCategoryInactive     = newError(ErrConflict, "category inactive")
	ErrAlreadyInactive      = newError(ErrConflict, "category already inactive")
	ErrRequestNotPending    = newError(ErrConflict, "request not pending")
	ErrPermissionNotGranted = newError(ErrConflict, "permission not granted")
	ErrAlreadyExists        = newError(ErrConflict, "already exists")
)

// ErrTransferFailed is the only retriable failure: the payee refused funds.
var ErrTransferFailed = newError(ErrTransfer, "transfer failed")

// IsRetryable reports whether err may succeed when the same call is retried
// after the payee issue is addressed.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTransfer)
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
	// Err is the tagged leaf error, e.g. ErrInvalidPrice.
	Err error
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

// Unwrap exposes ErrValidation plus every tagged leaf so errors.Is matches both.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Errors)+1)
	errs = append(errs, ErrValidation)
	for _, fe := range e.Errors {
		if fe.Err != nil {
			errs = append(errs, fe.Err)
		}
	}
	return errs
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: err.Error(), Err: err}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
