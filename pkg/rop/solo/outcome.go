package solo

import (
	"github.com/ib-77/railway/pkg/rop"
)

// OutcomeThen invokes next on success; a failure is returned as is.
func OutcomeThen(input rop.Outcome, next func() rop.Outcome) rop.Outcome {
	if input.IsSuccess() {
		return next()
	}
	return input
}

// OutcomeThenResult invokes next on success; a failure is re-typed.
func OutcomeThenResult[Out any](input rop.Outcome, next func() rop.Result[Out]) rop.Result[Out] {
	if input.IsSuccess() {
		return next()
	}
	return rop.PropagateOutcome[Out](input)
}

// OutcomeEnsure keeps a success only when predicate holds.
func OutcomeEnsure(input rop.Outcome, predicate func() bool, onFailure ...rop.Error) rop.Outcome {
	if input.IsSuccess() {
		if predicate() {
			return input
		}
		return rop.Failed(errorOr(onFailure))
	}
	return input
}

// OutcomeReplaceErrors swaps the errors of a failure for onFailure.
func OutcomeReplaceErrors(input rop.Outcome, onFailure ...rop.Error) rop.Outcome {
	if input.IsSuccess() {
		return input
	}
	return rop.Failed(errorOr(onFailure))
}

// OutcomeMatch runs exactly one branch and returns the input unchanged.
func OutcomeMatch(input rop.Outcome, onSuccess func(), onFailure func(errs []rop.Error)) rop.Outcome {
	if input.IsSuccess() {
		onSuccess()
	} else {
		onFailure(input.Errors())
	}
	return input
}

// OutcomeMatchValue returns the value produced by whichever branch ran.
func OutcomeMatchValue[Out any](input rop.Outcome, onSuccess func() Out, onFailure func(errs []rop.Error) Out) Out {
	if input.IsSuccess() {
		return onSuccess()
	}
	return onFailure(input.Errors())
}

func OutcomeOnSuccess(input rop.Outcome, action func()) rop.Outcome {
	if input.IsSuccess() {
		action()
	}
	return input
}

func OutcomeOnFailure(input rop.Outcome, action func(errs []rop.Error)) rop.Outcome {
	if input.IsFailure() {
		action(input.Errors())
	}
	return input
}

func OutcomeOrElse(input rop.Outcome, alternative func() rop.Outcome) rop.Outcome {
	if input.IsSuccess() {
		return input
	}
	return alternative()
}

// OutcomeUnwrap panics with the error summary when input is a failure.
func OutcomeUnwrap(input rop.Outcome) {
	if input.IsFailure() {
		panic(&rop.InvalidOperationError{Message: input.SummaryErrorMessages()})
	}
}
