// Package errs provides standardized error types for the food ordering
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package covers the application's error taxonomy:
//   - ObjectNotFoundError: a referenced id does not exist
//   - DuplicateKeyError: a creation attempt reused an existing id
//   - ValueIsInvalidError: a value violates a domain rule
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ValueIsRequiredError: a required value is missing
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Callers classify failures with errors.Is against the sentinels rather
// than inspecting messages.
package errs
