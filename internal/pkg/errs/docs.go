// Package errs provides standardized error types for the procurement application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure taxonomy of the purchase-order
// workflow:
//   - ObjectNotFoundError: an entity does not exist for the given identifier
//   - UnauthorizedError: the caller is not the party required by the operation
//   - InvalidStateTransitionError: the order status does not permit the operation
//   - LimitExceededError: the requested amount exceeds the declared spending limit
//   - InvalidCredentialError: a credential reference or identifier is malformed
//   - ValueIsRequiredError / ValueIsInvalidError: input validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Every failure is fatal to the enclosing operation: callers abort the whole
// call, roll back any open transaction, and propagate the error unchanged.
package errs
