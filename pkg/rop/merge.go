package rop

// MergeOutcomes succeeds only when every input succeeds. Otherwise the
// errors of every failed input are concatenated in input order.
func MergeOutcomes(outcomes ...Outcome) Outcome {
	errs := collectErrors(outcomes)
	if errs != nil {
		return Failed(errs...)
	}
	return Done()
}

// Merge collects the values of results in input order when all of them
// succeed. On any failure the values are dropped and the errors of every
// failed input are concatenated in input order.
func Merge[T any](results ...Result[T]) Result[[]T] {
	errs := collectErrors(results)
	if errs != nil {
		return Fail[[]T](errs...)
	}

	values := make([]T, len(results))
	for i, r := range results {
		values[i] = r.value
	}
	return Success(values)
}

// MergeAny merges results of different value types where only the pass/fail
// state and the errors matter.
func MergeAny(results ...Status) Outcome {
	errs := collectErrors(results)
	if errs != nil {
		return Failed(errs...)
	}
	return Done()
}

// collectErrors returns nil when every input succeeded.
func collectErrors[S Status](results []S) []Error {
	var errs []Error
	failed := false
	for _, r := range results {
		if r.IsFailure() {
			failed = true
			errs = append(errs, r.Errors()...)
		}
	}
	if failed && errs == nil {
		errs = []Error{}
	}
	return errs
}
