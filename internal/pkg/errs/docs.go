// Package errs provides standardized error types for the freight matching
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify the error by sentinel
//
// Business-rule failures of the offer protocol (an offer that is no longer
// active, an unknown action) are not defined here; they live as sentinel
// errors next to the offer domain model.
package errs
