// Package solo contains the synchronous combinators over rop.Result[T] and
// rop.Outcome. Each one is a pure function of its input: on failure the
// success-only stages are skipped and the errors flow forward, re-typed to
// the next stage.
//
// Highlights:
// - Then/ThenOutcome/OutcomeThen/OutcomeThenResult: chain the next fallible step
// - Map: transform a successful value
// - Ensure/OutcomeEnsure: turn a success into a failure when a predicate fails
// - Validate/ValidateAll: run validators, optionally accumulating every failure
// - Try: call a function returning (Out, error) and convert the error
// - Match/MatchValue: run exactly one branch, statement or expression form
// - OnSuccess/OnFailure: side effects that never change the result
// - OrElse: replace a failure with an alternative result
// - Unwrap/UnwrapOrDefault: leave the railway with a plain value
//
// Functions prefixed with Outcome take an rop.Outcome input.
package solo
