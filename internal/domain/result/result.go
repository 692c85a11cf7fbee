// Copyright (c) 2026 F3 Nation. All rights reserved.

/*
Package result defines the outcome algebra shared by every domain service.

A service operation returns a [Result]: either success carrying a value, or
failure carrying a structured [*Error] with a domain-level [Code]. Domain
codes are business conditions, NOT HTTP statuses — the HTTP boundary owns the
mapping from codes to response statuses.

Failures are returned as data, never raised: handlers can always pattern-match
deterministically. [Result.MustValue] is the only escape hatch and is reserved
for top-level and test code.
*/
package result

import (
	"errors"
	"fmt"
)

// Code is a machine-readable domain error identifier.
type Code string

// The closed domain error enumeration. Grouping is contractual: validation,
// not-found, conflict, business-rule, authorization.
const (
	// Validation
	CodeMissingRequiredField Code = "MISSING_REQUIRED_FIELD"
	CodeInvalidFieldValue    Code = "INVALID_FIELD_VALUE"
	CodeValidationFailed     Code = "VALIDATION_FAILED"

	// Not found
	CodePaxNotFound      Code = "PAX_NOT_FOUND"
	CodeOrgNotFound      Code = "ORG_NOT_FOUND"
	CodeEventNotFound    Code = "EVENT_NOT_FOUND"
	CodeLocationNotFound Code = "LOCATION_NOT_FOUND"
	CodeResourceNotFound Code = "RESOURCE_NOT_FOUND"

	// Conflict
	CodeDuplicateEntry Code = "DUPLICATE_ENTRY"
	CodeAlreadyExists  Code = "ALREADY_EXISTS"

	// Business rules
	CodeBusinessRuleViolation Code = "BUSINESS_RULE_VIOLATION"

	// Authorization
	CodeNotAuthorized   Code = "NOT_AUTHORIZED"
	CodeForbiddenAction Code = "FORBIDDEN_ACTION"
)

// CodeUnexpected marks a failure that is not a recognized domain condition
// (typically a storage-engine error). It is deliberately OUTSIDE the closed
// enumeration above, so the HTTP boundary's default clause turns it into a
// generic 500 without the core ever classifying storage exceptions.
const CodeUnexpected Code = "UNEXPECTED_ERROR"

// Error is the failure payload of a [Result].
//
// # Security
//
// Message is always domain-authored and safe for clients. The wrapped cause
// (when present) is for server-side logging only and is never serialized.
type Error struct {
	// Code identifies the domain condition.
	Code Code
	// Message is a human-readable, client-safe description.
	Message string
	// Field names the offending field for validation failures.
	Field string
	// Details is an optional free-form payload echoed to the client.
	Details any

	cause error
}

// Error implements the error interface. It returns the client-safe message.
func (e *Error) Error() string { return string(e.Code) + ": " + e.Message }

// Unwrap exposes the underlying cause to [errors.Is] and [errors.As].
func (e *Error) Unwrap() error { return e.cause }

// Result is the two-variant outcome of a domain operation.
//
// The zero value is a success carrying T's zero value; construct results only
// via [Success] and [Failure].
type Result[T any] struct {
	value T
	err   *Error
}

// Success wraps a value in a successful Result.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure wraps a domain error in a failed Result.
func Failure[T any](err *Error) Result[T] {
	return Result[T]{err: err}
}

// Ok reports whether the result is a success.
func (r Result[T]) Ok() bool { return r.err == nil }

// Value returns the success value, or T's zero value on failure.
// Callers must check [Result.Ok] (or use [Result.Unpack]) first.
func (r Result[T]) Value() T { return r.value }

// Err returns the domain error, or nil on success.
func (r Result[T]) Err() *Error { return r.err }

// Unpack splits the result into its value and error for two-valued handling.
func (r Result[T]) Unpack() (T, *Error) { return r.value, r.err }

// MustValue returns the success value or panics on failure.
//
// Reserved for top-level wiring and tests — request-handling code must
// pattern-match instead.
func (r Result[T]) MustValue() T {
	if r.err != nil {
		panic(fmt.Sprintf("result: unwrapped failure %s: %s", r.err.Code, r.err.Message))
	}
	return r.value
}

// # Constructor Helpers
//
// Call sites never hand-build Error values; every failure category has a
// constructor so messages stay uniform across services.

// MissingField reports a required field that was absent or empty.
func MissingField(field string) *Error {
	return &Error{
		Code:    CodeMissingRequiredField,
		Message: field + " is required",
		Field:   field,
	}
}

// InvalidField reports a field whose value is present but unusable.
func InvalidField(field, reason string) *Error {
	return &Error{
		Code:    CodeInvalidFieldValue,
		Message: field + ": " + reason,
		Field:   field,
	}
}

// ValidationFailed reports a validation failure not tied to one field.
func ValidationFailed(message string) *Error {
	return &Error{Code: CodeValidationFailed, Message: message}
}

// NotFound reports a missing entity with the generic code.
func NotFound(resource, id string) *Error {
	message := resource + " not found"
	if id != "" {
		message += ": " + id
	}
	return &Error{Code: CodeResourceNotFound, Message: message}
}

// PaxNotFound reports a missing PAX.
func PaxNotFound(id string) *Error {
	return &Error{Code: CodePaxNotFound, Message: "PAX not found: " + id}
}

// OrgNotFound reports a missing Organization.
func OrgNotFound(id string) *Error {
	return &Error{Code: CodeOrgNotFound, Message: "Org not found: " + id}
}

// EventNotFound reports a missing Event Instance.
func EventNotFound(id string) *Error {
	return &Error{Code: CodeEventNotFound, Message: "Event not found: " + id}
}

// LocationNotFound reports a missing Location.
func LocationNotFound(id string) *Error {
	return &Error{Code: CodeLocationNotFound, Message: "Location not found: " + id}
}

// Duplicate reports a uniqueness violation surfaced by the storage layer.
func Duplicate(message string) *Error {
	return &Error{Code: CodeDuplicateEntry, Message: message}
}

// AlreadyExists reports a create that targets an existing resource.
func AlreadyExists(resource, identifier string) *Error {
	message := resource + " already exists"
	if identifier != "" {
		message += ": " + identifier
	}
	return &Error{Code: CodeAlreadyExists, Message: message}
}

// BusinessRule reports a named domain invariant violation.
func BusinessRule(message string) *Error {
	return &Error{Code: CodeBusinessRuleViolation, Message: message}
}

// NotAuthorized reports a request with no (valid) identity.
func NotAuthorized(message string) *Error {
	return &Error{Code: CodeNotAuthorized, Message: message}
}

// Forbidden reports an authenticated caller lacking permission.
func Forbidden(message string) *Error {
	return &Error{Code: CodeForbiddenAction, Message: message}
}

// Unexpected wraps a non-domain failure (storage, I/O) behind a generic
// client-safe message. The cause is retained for logging only.
func Unexpected(cause error) *Error {
	return &Error{
		Code:    CodeUnexpected,
		Message: "An unexpected error occurred",
		cause:   cause,
	}
}

// FromError converts an arbitrary error into a domain [*Error]: pass-through
// when err already is one, [Unexpected] otherwise. Services use this on every
// repository failure so unrecognized storage errors surface via the HTTP
// boundary's catch-all.
func FromError(err error) *Error {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return Unexpected(err)
}
