package solo

import (
	"github.com/ib-77/railway/pkg/rop"
)

// Then invokes next with the value on success and returns its result
// verbatim. On failure next is skipped and the errors are re-typed.
func Then[In, Out any](input rop.Result[In], next func(r In) rop.Result[Out]) rop.Result[Out] {
	if input.IsSuccess() {
		return next(input.Value())
	}
	return rop.Propagate[In, Out](input)
}

// ThenOutcome is Then for a next step that yields no value.
func ThenOutcome[In any](input rop.Result[In], next func(r In) rop.Outcome) rop.Outcome {
	if input.IsSuccess() {
		return next(input.Value())
	}
	return rop.PropagateToOutcome(input)
}

// Map applies transform to a successful value. transform is never invoked
// on failure.
func Map[In, Out any](input rop.Result[In], transform func(r In) Out) rop.Result[Out] {
	if input.IsSuccess() {
		return rop.Success(transform(input.Value()))
	}
	return rop.Propagate[In, Out](input)
}

// Ensure keeps a success only when predicate holds; otherwise the result
// becomes a failure carrying onFailure, or rop.Failure() when none is given.
// A failed input passes through and predicate is not evaluated.
func Ensure[T any](input rop.Result[T], predicate func(r T) bool, onFailure ...rop.Error) rop.Result[T] {
	if input.IsSuccess() {
		if predicate(input.Value()) {
			return input
		}
		return rop.Fail[T](errorOr(onFailure))
	}
	return input
}

// ReplaceErrors swaps the errors of a failure for onFailure (or a generic
// failure). A success passes through.
func ReplaceErrors[T any](input rop.Result[T], onFailure ...rop.Error) rop.Result[T] {
	if input.IsSuccess() {
		return input
	}
	return rop.Fail[T](errorOr(onFailure))
}

// Validate fails with a validation error carrying errMsg when validate
// rejects the value.
func Validate[T any](input rop.Result[T], validate func(in T) (isValid bool, errMsg string)) rop.Result[T] {
	if input.IsSuccess() {
		if isValid, errMsg := validate(input.Value()); !isValid {
			return rop.Fail[T](rop.Validation(errMsg))
		}
	}
	return input
}

// ValidateAll runs every validator against the input. With breakOnError the
// first failure is returned; otherwise all failures are accumulated in order.
func ValidateAll[T any](input rop.Result[T], breakOnError bool,
	validators ...func(in T) rop.Result[T]) rop.Result[T] {

	if input.IsFailure() || len(validators) == 0 {
		return input
	}

	var errs []rop.Error
	for _, validate := range validators {
		current := validate(input.Value())
		if current.IsFailure() {
			if breakOnError {
				return current
			}
			errs = append(errs, current.Errors()...)
		}
	}

	if len(errs) > 0 {
		return rop.Fail[T](errs...)
	}
	return input
}

// Try invokes onTryExecute on success and converts a returned error into
// failure errors (see rop.GetErrors). A panic in onTryExecute is recovered
// as an *rop.PanicError and converted the same way.
func Try[In, Out any](input rop.Result[In], onTryExecute func(r In) (Out, error)) (result rop.Result[Out]) {
	if input.IsSuccess() {
		defer func() {
			if rec := recover(); rec != nil {
				result = rop.Fail[Out](rop.GetErrors(&rop.PanicError{Value: rec})...)
			}
		}()

		out, err := onTryExecute(input.Value())
		if err != nil {
			return rop.Fail[Out](rop.GetErrors(err)...)
		}
		return rop.Success(out)
	}
	return rop.Propagate[In, Out](input)
}

// Match runs onSuccess with the value or onFailure with the errors and
// returns the input unchanged.
func Match[T any](input rop.Result[T], onSuccess func(r T), onFailure func(errs []rop.Error)) rop.Result[T] {
	if input.IsSuccess() {
		onSuccess(input.Value())
	} else {
		onFailure(input.Errors())
	}
	return input
}

// MatchValue is the expression form of Match: it returns the value produced
// by whichever branch ran.
func MatchValue[T, Out any](input rop.Result[T], onSuccess func(r T) Out, onFailure func(errs []rop.Error) Out) Out {
	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return onFailure(input.Errors())
}

// OnSuccess runs action with the value on success.
func OnSuccess[T any](input rop.Result[T], action func(r T)) rop.Result[T] {
	if input.IsSuccess() {
		action(input.Value())
	}
	return input
}

// OnFailure runs action with the errors on failure.
func OnFailure[T any](input rop.Result[T], action func(errs []rop.Error)) rop.Result[T] {
	if input.IsFailure() {
		action(input.Errors())
	}
	return input
}

// OrElse discards a failure and returns alternative().
func OrElse[T any](input rop.Result[T], alternative func() rop.Result[T]) rop.Result[T] {
	if input.IsSuccess() {
		return input
	}
	return alternative()
}

// Unwrap returns the value of a success. A failure panics with an
// *rop.InvalidOperationError whose message is the error summary.
func Unwrap[T any](input rop.Result[T]) T {
	if input.IsSuccess() {
		return input.Value()
	}
	panic(&rop.InvalidOperationError{Message: input.SummaryErrorMessages()})
}

// UnwrapOrDefault returns the value of a success or fallback.
func UnwrapOrDefault[T any](input rop.Result[T], fallback T) T {
	if input.IsSuccess() {
		return input.Value()
	}
	return fallback
}

func errorOr(errs []rop.Error) rop.Error {
	if len(errs) > 0 {
		return errs[0]
	}
	return rop.Failure()
}
