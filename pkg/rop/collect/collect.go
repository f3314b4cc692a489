package collect

import (
	"context"
	"iter"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/async"
	"github.com/ib-77/railway/pkg/rop/core"
)

func Outcomes(outcomes []rop.Outcome) rop.Outcome {
	return rop.MergeOutcomes(outcomes...)
}

func Results[T any](results []rop.Result[T]) rop.Result[[]T] {
	return rop.Merge(results...)
}

func OutcomesSeq(outcomes iter.Seq[rop.Outcome]) rop.Outcome {
	return rop.MergeOutcomes(core.FromSeq(outcomes)...)
}

func ResultsSeq[T any](results iter.Seq[rop.Result[T]]) rop.Result[[]T] {
	return rop.Merge(core.FromSeq(results)...)
}

// OutcomesChan drains ch and merges what it received. If ctx ends before ch
// is closed, the merge fails with rop.CanceledMessage appended after the
// errors received so far.
func OutcomesChan(ctx context.Context, ch <-chan rop.Outcome) rop.Outcome {
	outcomes, complete := core.FromChanMany(ctx, ch)
	if !complete {
		outcomes = append(outcomes, rop.Failed(rop.Failure(rop.CanceledMessage)))
	}
	return rop.MergeOutcomes(outcomes...)
}

// ResultsChan is OutcomesChan for results carrying values.
func ResultsChan[T any](ctx context.Context, ch <-chan rop.Result[T]) rop.Result[[]T] {
	results, complete := core.FromChanMany(ctx, ch)
	if !complete {
		results = append(results, rop.Fail[T](rop.Failure(rop.CanceledMessage)))
	}
	return rop.Merge(results...)
}

// Futures awaits every future in order (see async.AwaitResult) and merges
// the results. The futures themselves may run concurrently; their order in
// the slice fixes the order of values and errors.
func Futures[T any](ctx context.Context, futures []*async.Future[rop.Result[T]]) rop.Result[[]T] {
	results := make([]rop.Result[T], len(futures))
	for i, f := range futures {
		results[i] = async.AwaitResult(ctx, f)
	}
	return rop.Merge(results...)
}

// OutcomeFutures is Futures for outcomes.
func OutcomeFutures(ctx context.Context, futures []*async.Future[rop.Outcome]) rop.Outcome {
	outcomes := make([]rop.Outcome, len(futures))
	for i, f := range futures {
		outcomes[i] = async.AwaitOutcome(ctx, f)
	}
	return rop.MergeOutcomes(outcomes...)
}
