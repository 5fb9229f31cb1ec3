// Package errs provides standardized error types for the orders application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the error kinds the service reports:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but malformed
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//   - ObjectNotFoundError: a lookup by identifier found nothing
//   - StatusTransitionError: a lifecycle operation was attempted from a
//     state that does not permit it
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// The HTTP adapter maps these sentinels onto response statuses: not-found
// errors become 404 problem bodies and status-transition errors become 405.
package errs
