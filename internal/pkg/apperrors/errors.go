package apperrors

import "errors"

// Storage and schema errors
var (
	// ErrConnectionUnavailable means a database handle could not be opened
	// or kept alive.
	ErrConnectionUnavailable = errors.New("database connection unavailable")

	// ErrSchemaPatchFailed marks a non-idempotent failure while applying a
	// startup schema patch. Patches are best effort; this is logged, never
	// fatal.
	ErrSchemaPatchFailed = errors.New("schema patch failed")

	// ErrCascadeDeleteFailed means a step of a multi-table delete failed and
	// the whole transaction was rolled back.
	ErrCascadeDeleteFailed = errors.New("cascade delete failed")
)

// Input validation errors
var (
	ErrInvalidScore = errors.New("invalid score")
	ErrInvalidInput = errors.New("invalid input")
)

// Entity errors
var (
	// ErrSentinelProtected rejects deletion of the reserved default rows
	// (department 1 "General", academic year 1 "Default").
	ErrSentinelProtected = errors.New("sentinel row cannot be deleted")

	ErrDuplicateEntity = errors.New("entity already exists")
	ErrNotFound        = errors.New("resource not found")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account is locked")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrPermissionDenied   = errors.New("permission denied")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrNotFound,
		Message: message,
	}
}

// NewDuplicateError creates a duplicate-entity error with a message
func NewDuplicateError(message string) error {
	return &CustomError{
		Err:     ErrDuplicateEntity,
		Message: message,
	}
}
