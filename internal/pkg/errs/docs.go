// Package errs provides standardized error types for the consolidator application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ObjectNotFoundError: for when an object cannot be found (e.g. an order
//     unknown to the remote provider)
//   - ValueIsInvalidError: for when a value is invalid (e.g. a bad job status
//     transition)
//   - ValueIsRequiredError: for when a required value is missing
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// The sentinel-based classification matters at the job boundary: the processor
// never inspects error strings, it only records them into the job queue, while
// the consolidation engine distinguishes terminal not-found conditions from
// retriable transport failures via errors.Is.
package errs
