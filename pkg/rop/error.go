package rop

import "fmt"

// Default messages used by the Error factories.
const (
	DefaultFailureMessage             = "Operation failure."
	DefaultValidationMessage          = "Validation error."
	DefaultNotFoundMessage            = "The requested resource was not found."
	DefaultCreationMessage            = "Failed to create a resource."
	DefaultUnauthorizedMessage        = "The user is not logged in."
	DefaultForbiddenMessage           = "Access is denied."
	DefaultInternalServerErrorMessage = "Internal server error"

	// CanceledMessage is used when a pending computation was cancelled.
	CanceledMessage = "The operation was canceled."
)

// Error is an expected failure cause carried by a failed Result or Outcome.
// It is a comparable value: two errors are equal when message and code match.
type Error struct {
	Message string
	Code    Code
}

// NewError creates an Error with CodeFailure unless a code is given.
func NewError(message string, code ...Code) Error {
	c := CodeFailure
	if len(code) > 0 {
		c = code[0]
	}
	return Error{Message: message, Code: c}
}

// Error implements the error interface so domain errors can travel through
// plain Go error paths (errors.Join, errors.As).
func (e Error) Error() string {
	return e.Message
}

// String formats the error with its code, e.g. "NotFound: user 7".
func (e Error) String() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func messageOr(message []string, def string) string {
	if len(message) > 0 {
		return message[0]
	}
	return def
}

// Failure creates a generic failure error.
func Failure(message ...string) Error {
	return NewError(messageOr(message, DefaultFailureMessage))
}

// Validation creates a validation error.
func Validation(message ...string) Error {
	return NewError(messageOr(message, DefaultValidationMessage), CodeValidation)
}

// NotFound creates a not-found error.
func NotFound(message ...string) Error {
	return NewError(messageOr(message, DefaultNotFoundMessage), CodeNotFound)
}

// Creation creates a resource-creation error.
func Creation(message ...string) Error {
	return NewError(messageOr(message, DefaultCreationMessage), CodeCreation)
}

// Conflict creates a conflict error. There is no sensible default message.
func Conflict(message string) Error {
	return NewError(message, CodeConflict)
}

// Unauthorized creates an unauthorized error.
func Unauthorized(message ...string) Error {
	return NewError(messageOr(message, DefaultUnauthorizedMessage), CodeUnauthorized)
}

// Forbidden creates a forbidden error.
func Forbidden(message ...string) Error {
	return NewError(messageOr(message, DefaultForbiddenMessage), CodeForbidden)
}

// InternalServerError creates an internal server error.
func InternalServerError(message ...string) Error {
	return NewError(messageOr(message, DefaultInternalServerErrorMessage), CodeInternalServerError)
}
