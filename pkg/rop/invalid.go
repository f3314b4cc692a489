package rop

import (
	"errors"
	"fmt"
)

// Sentinels for caller misuse. These never travel inside a Result.
var (
	ErrInvalidOperation = errors.New("invalid operation")
	ErrInvalidArgument  = errors.New("invalid argument")
)

// InvalidOperationError reports a call made in the wrong state, such as
// reading Value of a failed Result.
type InvalidOperationError struct {
	Message string
}

func (e *InvalidOperationError) Error() string {
	return e.Message
}

func (e *InvalidOperationError) Unwrap() error {
	return ErrInvalidOperation
}

// NewInvalidOperation formats an InvalidOperationError.
func NewInvalidOperation(format string, args ...any) *InvalidOperationError {
	return &InvalidOperationError{Message: fmt.Sprintf(format, args...)}
}

// ArgumentError reports an argument or option set that failed validation.
type ArgumentError struct {
	Argument string
	Message  string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// NewArgumentError creates an ArgumentError for the named argument.
func NewArgumentError(argument, message string) *ArgumentError {
	return &ArgumentError{Argument: argument, Message: message}
}

// PanicError carries a value recovered from a panic.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(e.Value)
}

func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}
