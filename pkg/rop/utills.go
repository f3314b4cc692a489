package rop

import (
	"context"
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// GetErrors flattens err into domain errors. Errors joined with errors.Join
// (or anything with Unwrap() []error) are expanded in order. An Error or
// *Error is kept as is. A chain wrapping an Error keeps its Code and takes
// the message of the outermost error. Anything else becomes a generic
// failure with its message.
func GetErrors(err error) []Error {
	if IsNil(err) {
		return []Error{}
	}

	switch domain := err.(type) {
	case Error:
		return []Error{domain}
	case *Error:
		return []Error{*domain}
	}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		out := make([]Error, 0)
		for _, inner := range e.Unwrap() {
			out = append(out, GetErrors(inner)...)
		}
		return out
	}

	var domain Error
	if errors.As(err, &domain) {
		return []Error{NewError(err.Error(), domain.Code)}
	}
	var domainPtr *Error
	if errors.As(err, &domainPtr) && domainPtr != nil {
		return []Error{NewError(err.Error(), domainPtr.Code)}
	}

	return []Error{Failure(err.Error())}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
