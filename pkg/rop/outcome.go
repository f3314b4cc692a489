package rop

import (
	"fmt"
	"iter"
	"slices"
)

// Outcome is a Result without a payload: it only records whether an
// operation completed and, if not, why.
type Outcome struct {
	state
}

// Done creates a successful Outcome.
func Done() Outcome {
	return Outcome{state: newState(true, nil)}
}

// Failed creates a failed Outcome carrying errs in the given order. Calling
// it with no errors is allowed and yields a failure with no stated cause.
func Failed(errs ...Error) Outcome {
	return Outcome{state: newState(false, errs)}
}

// FailedSeq creates a failed Outcome from a sequence of errors.
func FailedSeq(errs iter.Seq[Error]) Outcome {
	return Failed(slices.Collect(errs)...)
}

// OutcomeFromError converts a single Error into a failed Outcome.
func OutcomeFromError(err Error) Outcome {
	return Failed(err)
}

// OutcomeFromErrors converts a list of Errors into a failed Outcome.
func OutcomeFromErrors(errs []Error) Outcome {
	return Failed(errs...)
}

// PropagateToOutcome re-types a failed Result as a failed Outcome.
func PropagateToOutcome[In any](from Result[In]) Outcome {
	return Outcome{state: failedFrom(from.state)}
}

func (o Outcome) String() string {
	if o.IsSuccess() {
		return "Success"
	}
	return fmt.Sprintf("Failure(%v)", o.errors)
}
