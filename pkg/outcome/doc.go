// Package outcome provides immutable success/failure values for operations
// that report failure as ordinary data instead of an error return or panic.
//
// Two types are exported:
// - Outcome: success, or failure with a non-empty message
// - Of[T]: an Outcome that also carries a payload of type T on success
//
// Outcomes are built only through factories (Success, Failure, SuccessOf,
// FailureOf) or the conversion helpers From and FromError, which delegate to
// them. Misuse is a programmer error: building a failure without a message
// or a success with a nil payload panics with ErrInvalidState, and reading
// the payload of a failure panics with ErrInvalidAccess. New and NewOf report
// the same misuse as an error instead.
package outcome
