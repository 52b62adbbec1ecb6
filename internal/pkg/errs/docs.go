// Package errs provides the error types shared by the domain model,
// application layer, and adapters.
//
// Error scenarios covered:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is out of its allowed range or form
//   - ValueIsOutOfRangeError: a numeric value violates its bounds
//   - ObjectNotFoundError: an aggregate cannot be found by id
//   - VersionIsInvalidError: an entity version check failed
//
// Each error type follows the same pattern: a sentinel error variable
// (e.g. ErrValueIsRequired) for errors.Is checks, a struct carrying the
// error details, constructor functions with and without a cause, and
// Error/Unwrap methods for formatting and unwrapping.
package errs
