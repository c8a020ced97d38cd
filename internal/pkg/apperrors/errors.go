// Package apperrors defines the error taxonomy shared by the liveride and
// tracking services. Every mutating operation returns one of these
// sentinels (wrapped with %w) so callers can branch with errors.Is.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the session, request or track does not exist
	ErrNotFound = errors.New("record not found")

	// ErrPermissionDenied indicates the caller is not entitled to the
	// record or the target's privacy settings forbid the operation
	ErrPermissionDenied = errors.New("permission denied")

	// ErrAlreadyExists indicates a duplicate pending request or duplicate
	// active track for a user pair
	ErrAlreadyExists = errors.New("record already exists")

	// ErrAlreadyActive indicates the rider already has a non-completed
	// live ride session
	ErrAlreadyActive = errors.New("rider already has an active session")

	// ErrInvalidState indicates an operation on a completed, rejected,
	// cancelled or inactive record
	ErrInvalidState = errors.New("invalid state for operation")

	// ErrInvalidArgument indicates a malformed or self-targeting request
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTransient indicates a network or store I/O failure that is safe
	// to retry
	ErrTransient = errors.New("transient failure")
)

// NotFoundf wraps ErrNotFound with detail
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// PermissionDeniedf wraps ErrPermissionDenied with detail
func PermissionDeniedf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrPermissionDenied, fmt.Sprintf(format, args...))
}

// AlreadyExistsf wraps ErrAlreadyExists with detail
func AlreadyExistsf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrAlreadyExists, fmt.Sprintf(format, args...))
}

// InvalidStatef wraps ErrInvalidState with detail
func InvalidStatef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

// InvalidArgumentf wraps ErrInvalidArgument with detail
func InvalidArgumentf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Transientf wraps ErrTransient with detail and the underlying cause
func Transientf(err error, op string) error {
	return fmt.Errorf("%w: %s: %v", ErrTransient, op, err)
}
