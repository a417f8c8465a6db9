package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrObjectNotFound         = errors.New("object not found")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrLimitExceeded          = errors.New("spending limit exceeded")
	ErrInvalidCredential      = errors.New("invalid credential")
	ErrValueIsRequired        = errors.New("value is required")
	ErrValueIsInvalid         = errors.New("value is invalid")
)

// sanitize strips newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that no entity exists for the given identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// UnauthorizedError indicates that the caller is not the party the operation requires.
type UnauthorizedError struct {
	Operation string
	Caller    string
}

// NewUnauthorizedError creates an UnauthorizedError naming the operation and the caller.
func NewUnauthorizedError(operation, caller string) *UnauthorizedError {
	return &UnauthorizedError{Operation: operation, Caller: caller}
}

func (e *UnauthorizedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s is not allowed to %s", ErrUnauthorized, e.Caller, e.Operation))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// InvalidStateTransitionError indicates that the current order status does not
// match the precondition of the requested operation.
type InvalidStateTransitionError struct {
	Operation string
	Status    string
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError for an
// operation attempted from a disallowed status.
func NewInvalidStateTransitionError(operation, status string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{Operation: operation, Status: status}
}

func (e *InvalidStateTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: cannot %s from status %s", ErrInvalidStateTransition, e.Operation, e.Status))
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// LimitExceededError indicates that a requested amount exceeds the spending
// limit declared with the presented credential.
type LimitExceededError struct {
	Amount string
	Limit  string
}

// NewLimitExceededError creates a LimitExceededError with the offending values.
func NewLimitExceededError(amount, limit string) *LimitExceededError {
	return &LimitExceededError{Amount: amount, Limit: limit}
}

func (e *LimitExceededError) Error() string {
	return sanitize(fmt.Sprintf("%s: amount %s exceeds declared limit %s", ErrLimitExceeded, e.Amount, e.Limit))
}

func (e *LimitExceededError) Unwrap() error {
	return ErrLimitExceeded
}

// InvalidCredentialError indicates that a credential reference or identifier is
// syntactically unusable (e.g. empty).
type InvalidCredentialError struct {
	ParamName string
}

// NewInvalidCredentialError creates an InvalidCredentialError for the named parameter.
func NewInvalidCredentialError(paramName string) *InvalidCredentialError {
	return &InvalidCredentialError{ParamName: paramName}
}

func (e *InvalidCredentialError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrInvalidCredential, e.ParamName))
}

func (e *InvalidCredentialError) Unwrap() error {
	return ErrInvalidCredential
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a provided value is invalid.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}
