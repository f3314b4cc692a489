package chain

import (
	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/solo"
)

// Chain wraps a rop.Result to enable fluent chaining
type Chain[T any] struct {
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](result rop.Result[T]) *Chain[T] {
	return &Chain[T]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{result: rop.Success(value)}
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], next func(T) rop.Result[U]) *Chain[U] {
	return &Chain[U]{result: solo.Then(c.result, next)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(T) (U, error)) *Chain[U] {
	return &Chain[U]{result: solo.Try(c.result, tryOnSuccess)}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], transform func(T) U) *Chain[U] {
	return &Chain[U]{result: solo.Map(c.result, transform)}
}

func (c *Chain[T]) Ensure(predicate func(T) bool, onFailure ...rop.Error) *Chain[T] {
	return &Chain[T]{result: solo.Ensure(c.result, predicate, onFailure...)}
}

func (c *Chain[T]) Validate(validate func(T) (isValid bool, errMsg string)) *Chain[T] {
	return &Chain[T]{result: solo.Validate(c.result, validate)}
}

func (c *Chain[T]) ValidateAll(breakOnError bool, validators ...func(T) rop.Result[T]) *Chain[T] {
	return &Chain[T]{result: solo.ValidateAll(c.result, breakOnError, validators...)}
}

// OnSuccess performs a side effect without changing the result
func (c *Chain[T]) OnSuccess(action func(T)) *Chain[T] {
	return &Chain[T]{result: solo.OnSuccess(c.result, action)}
}

func (c *Chain[T]) OnFailure(action func([]rop.Error)) *Chain[T] {
	return &Chain[T]{result: solo.OnFailure(c.result, action)}
}

func (c *Chain[T]) Match(onSuccess func(T), onFailure func([]rop.Error)) *Chain[T] {
	return &Chain[T]{result: solo.Match(c.result, onSuccess, onFailure)}
}

func (c *Chain[T]) OrElse(alternative func() rop.Result[T]) *Chain[T] {
	return &Chain[T]{result: solo.OrElse(c.result, alternative)}
}

func (c *Chain[T]) Unwrap() T {
	return solo.Unwrap(c.result)
}

func (c *Chain[T]) UnwrapOrDefault(fallback T) T {
	return solo.UnwrapOrDefault(c.result, fallback)
}

// Finally collapses the chain into a final value using solo.MatchValue
func Finally[T, U any](c *Chain[T], onSuccess func(T) U, onFailure func([]rop.Error) U) U {
	return solo.MatchValue(c.result, onSuccess, onFailure)
}
