package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation conflicts with the current state of the resource.
var ErrConflict = errors.New("resource state conflict")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrIntegrity indicates that the ledger itself is inconsistent (e.g. trial
// balance debits != credits, or a cached balance diverging from its postings).
// It is never caller-caused; operations that detect it must roll back and the
// condition must be logged, never swallowed.
var ErrIntegrity = errors.New("ledger integrity fault")

// Validation errors raised by the ledger core. All wrap ErrValidation so
// handlers can classify them with a single errors.Is check.
var (
	ErrDuplicateCode           = fmt.Errorf("%w: account code already in use", ErrValidation)
	ErrTypeMismatch            = fmt.Errorf("%w: account type must match parent type", ErrValidation)
	ErrAccountInactive         = fmt.Errorf("%w: account is inactive", ErrValidation)
	ErrManualEntriesDisallowed = fmt.Errorf("%w: account does not accept manual entries", ErrValidation)
	ErrSystemAccountProtected  = fmt.Errorf("%w: system account code and type cannot be changed", ErrValidation)
	ErrInsufficientLines       = fmt.Errorf("%w: journal entry requires at least two lines", ErrValidation)
	ErrAmbiguousLine           = fmt.Errorf("%w: journal line must have exactly one non-zero side", ErrValidation)
	ErrUnbalanced              = fmt.Errorf("%w: journal entry debits and credits do not balance", ErrValidation)
	ErrPeriodNotFound          = fmt.Errorf("%w: no accounting period covers the entry date", ErrValidation)
	ErrPeriodClosed            = fmt.Errorf("%w: accounting period is closed", ErrValidation)
	ErrPeriodOverlap           = fmt.Errorf("%w: accounting period overlaps an existing period", ErrValidation)
	ErrPeriodAlreadyClosed     = fmt.Errorf("%w: accounting period is already closed", ErrValidation)
	ErrUnpostedEntriesExist    = fmt.Errorf("%w: draft entries exist inside the period", ErrValidation)
	ErrAlreadyPosted           = fmt.Errorf("%w: journal entry is not a draft", ErrValidation)
	ErrNotPosted               = fmt.Errorf("%w: journal entry is not posted", ErrValidation)
	ErrAlreadyReversed         = fmt.Errorf("%w: journal entry has already been reversed", ErrValidation)
)

// AppError carries an HTTP-ish status code alongside a message and cause.
// Repositories use it for failures that are not one of the sentinel errors.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with the given code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
