package errors

import (
	"errors"
	"fmt"
)

// InvalidTransitionError is returned when the requested action has no rule for
// the entity's current state, including any action attempted from a terminal state.
type InvalidTransitionError struct {
	State  string
	Action string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("no transition defined for action %q from state %q", e.Action, e.State)
}

// Is enables errors.Is() comparison for InvalidTransitionError
func (e *InvalidTransitionError) Is(target error) bool {
	_, ok := target.(*InvalidTransitionError)
	return ok
}

// UnauthorizedError is returned when the acting role does not match the role
// required by the transition rule.
type UnauthorizedError struct {
	Action       string
	Role         string
	RequiredRole string
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("role %q is not allowed to perform %q (requires %q)", e.Role, e.Action, e.RequiredRole)
}

// Is enables errors.Is() comparison for UnauthorizedError
func (e *UnauthorizedError) Is(target error) bool {
	_, ok := target.(*UnauthorizedError)
	return ok
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// PersistenceError wraps a storage failure. AfterWrite reports whether the
// failure happened after the state write was issued: callers may safely retry
// only when AfterWrite is false; otherwise they must re-fetch current state
// before retrying.
type PersistenceError struct {
	Op         string
	AfterWrite bool
	Err        error
}

func (e *PersistenceError) Error() string {
	phase := "before write"
	if e.AfterWrite {
		phase = "after write, outcome unknown"
	}
	return fmt.Sprintf("persistence failure during %s (%s): %v", e.Op, phase, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the caller may retry the operation as-is.
func (e *PersistenceError) Retryable() bool {
	return !e.AfterWrite
}

// Entity Not Found Errors
var (
	ErrRequestNotFound      = &NotFoundError{Entity: "booking request"}
	ErrCallsheetNotFound    = &NotFoundError{Entity: "call sheet"}
	ErrNotificationNotFound = &NotFoundError{Entity: "notification"}
)

// Workflow Errors
var (
	// ErrVersionConflict signals an optimistic-lock failure: the entity changed
	// between read and write. The write did not happen.
	ErrVersionConflict = errors.New("entity version conflict")

	// ErrNotificationFailed marks a best-effort publish failure. It is logged,
	// never surfaced as an overall operation failure.
	ErrNotificationFailed = errors.New("notification publish failed")
)

// Authentication Errors
var (
	ErrMissingAuthHeader = errors.New("authorization header is required")
	ErrInvalidToken      = errors.New("invalid token")
	ErrUnknownActor      = errors.New("actor has no resolvable role")
)

// Helper Functions

// IsInvalidTransition checks if an error is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var e *InvalidTransitionError
	return errors.As(err, &e)
}

// IsUnauthorized checks if an error is an UnauthorizedError
func IsUnauthorized(err error) bool {
	var e *UnauthorizedError
	return errors.As(err, &e)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var e *PersistenceError
	return errors.As(err, &e)
}

// IsRetryablePersistence reports whether err is a persistence failure that
// happened before the write was issued.
func IsRetryablePersistence(err error) bool {
	var e *PersistenceError
	return errors.As(err, &e) && e.Retryable()
}
