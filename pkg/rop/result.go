package rop

import (
	"fmt"
	"iter"
	"slices"
)

// Result is the outcome of an operation that yields a value of type T on
// success and one or more Errors on failure. Exactly one of Value and Errors
// is readable.
type Result[T any] struct {
	state
	value T
}

// Success wraps v in a successful Result.
func Success[T any](v T) Result[T] {
	return Result[T]{state: newState(true, nil), value: v}
}

// Fail creates a failed Result carrying errs in the given order.
func Fail[T any](errs ...Error) Result[T] {
	return Result[T]{state: newState(false, errs)}
}

// FailSeq creates a failed Result from a sequence of errors.
func FailSeq[T any](errs iter.Seq[Error]) Result[T] {
	return Fail[T](slices.Collect(errs)...)
}

// FromError converts a single Error into a failed Result.
func FromError[T any](err Error) Result[T] {
	return Fail[T](err)
}

// FromErrors converts a list of Errors into a failed Result.
func FromErrors[T any](errs []Error) Result[T] {
	return Fail[T](errs...)
}

// Propagate re-types a failed Result for the next stage, keeping its errors
// and identity. It panics when from is a success.
func Propagate[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{state: failedFrom(from.state)}
}

// PropagateOutcome re-types a failed Outcome into a failed Result[Out].
func PropagateOutcome[Out any](from Outcome) Result[Out] {
	return Result[Out]{state: failedFrom(from.state)}
}

// Value returns the carried value. It panics with an *InvalidOperationError
// when the Result is a failure; check IsSuccess first.
func (r Result[T]) Value() T {
	if r.IsFailure() {
		panic(NewInvalidOperation("value can not be accessed when IsSuccess is false"))
	}
	return r.value
}

// Get returns the value and true on success, or the zero value and false.
func (r Result[T]) Get() (T, bool) {
	if r.IsFailure() {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Outcome drops the value, keeping the success flag and errors.
func (r Result[T]) Outcome() Outcome {
	if r.IsSuccess() {
		return Done()
	}
	return Outcome{state: failedFrom(r.state)}
}

func (r Result[T]) String() string {
	if r.IsSuccess() {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.errors)
}
