// Package errs provides standardized error types for the freight service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for common failure scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a value lies outside its bounds
//   - ObjectNotFoundError: for when a record cannot be found
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error classification with errors.Is
//
// Note that repositories in this codebase treat absence as a value: a point
// lookup of a missing record returns a nil entity, not an error. The
// ObjectNotFoundError type is used one level up, by use cases that require
// the record to exist.
package errs
