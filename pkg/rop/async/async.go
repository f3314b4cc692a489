package async

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/solo"
)

// Then waits for input and applies solo.Then.
func Then[In, Out any](ctx context.Context, input *Future[rop.Result[In]],
	next func(r In) rop.Result[Out]) *Future[rop.Result[Out]] {
	return after(ctx, input, func(r rop.Result[In]) rop.Result[Out] {
		return solo.Then(r, next)
	})
}

// ThenFuture is Then for a continuation that starts asynchronous work.
func ThenFuture[In, Out any](ctx context.Context, input *Future[rop.Result[In]],
	next func(ctx context.Context, r In) *Future[rop.Result[Out]]) *Future[rop.Result[Out]] {
	return afterFuture(ctx, input, func(ctx context.Context, r rop.Result[In]) *Future[rop.Result[Out]] {
		if r.IsFailure() {
			return Resolved(rop.Propagate[In, Out](r))
		}
		return next(ctx, r.Value())
	})
}

// ThenOutcome waits for input and applies solo.ThenOutcome.
func ThenOutcome[In any](ctx context.Context, input *Future[rop.Result[In]],
	next func(r In) rop.Outcome) *Future[rop.Outcome] {
	return after(ctx, input, func(r rop.Result[In]) rop.Outcome {
		return solo.ThenOutcome(r, next)
	})
}

// ThenOutcomeFuture is ThenOutcome for a continuation returning a future.
func ThenOutcomeFuture[In any](ctx context.Context, input *Future[rop.Result[In]],
	next func(ctx context.Context, r In) *Future[rop.Outcome]) *Future[rop.Outcome] {
	return afterFuture(ctx, input, func(ctx context.Context, r rop.Result[In]) *Future[rop.Outcome] {
		if r.IsFailure() {
			return Resolved(rop.PropagateToOutcome(r))
		}
		return next(ctx, r.Value())
	})
}

func Map[In, Out any](ctx context.Context, input *Future[rop.Result[In]],
	transform func(r In) Out) *Future[rop.Result[Out]] {
	return after(ctx, input, func(r rop.Result[In]) rop.Result[Out] {
		return solo.Map(r, transform)
	})
}

func Ensure[T any](ctx context.Context, input *Future[rop.Result[T]],
	predicate func(r T) bool, onFailure ...rop.Error) *Future[rop.Result[T]] {
	return after(ctx, input, func(r rop.Result[T]) rop.Result[T] {
		return solo.Ensure(r, predicate, onFailure...)
	})
}

// Match runs exactly one branch once input settles. The branches run on the
// combinator goroutine and may block.
func Match[T any](ctx context.Context, input *Future[rop.Result[T]],
	onSuccess func(r T), onFailure func(errs []rop.Error)) *Future[rop.Result[T]] {
	return after(ctx, input, func(r rop.Result[T]) rop.Result[T] {
		return solo.Match(r, onSuccess, onFailure)
	})
}

func MatchValue[T, Out any](ctx context.Context, input *Future[rop.Result[T]],
	onSuccess func(r T) Out, onFailure func(errs []rop.Error) Out) *Future[Out] {
	return after(ctx, input, func(r rop.Result[T]) Out {
		return solo.MatchValue(r, onSuccess, onFailure)
	})
}

func OnSuccess[T any](ctx context.Context, input *Future[rop.Result[T]],
	action func(r T)) *Future[rop.Result[T]] {
	return after(ctx, input, func(r rop.Result[T]) rop.Result[T] {
		return solo.OnSuccess(r, action)
	})
}

func OnFailure[T any](ctx context.Context, input *Future[rop.Result[T]],
	action func(errs []rop.Error)) *Future[rop.Result[T]] {
	return after(ctx, input, func(r rop.Result[T]) rop.Result[T] {
		return solo.OnFailure(r, action)
	})
}

func OrElse[T any](ctx context.Context, input *Future[rop.Result[T]],
	alternative func() rop.Result[T]) *Future[rop.Result[T]] {
	return after(ctx, input, func(r rop.Result[T]) rop.Result[T] {
		return solo.OrElse(r, alternative)
	})
}

// OrElseFuture is OrElse for an alternative that starts asynchronous work.
func OrElseFuture[T any](ctx context.Context, input *Future[rop.Result[T]],
	alternative func(ctx context.Context) *Future[rop.Result[T]]) *Future[rop.Result[T]] {
	return afterFuture(ctx, input, func(ctx context.Context, r rop.Result[T]) *Future[rop.Result[T]] {
		if r.IsSuccess() {
			return Resolved(r)
		}
		return alternative(ctx)
	})
}

// Unwrap settles with the value of a success. A failure faults the returned
// future with an *rop.InvalidOperationError carrying the error summary.
func Unwrap[T any](ctx context.Context, input *Future[rop.Result[T]]) *Future[T] {
	return start(ctx, func(ctx context.Context) (T, error) {
		r, err := input.Wait(ctx)
		if err != nil {
			var zero T
			return zero, err
		}
		if r.IsFailure() {
			var zero T
			return zero, &rop.InvalidOperationError{Message: r.SummaryErrorMessages()}
		}
		return r.Value(), nil
	})
}

func UnwrapOrDefault[T any](ctx context.Context, input *Future[rop.Result[T]], fallback T) *Future[T] {
	return after(ctx, input, func(r rop.Result[T]) T {
		return solo.UnwrapOrDefault(r, fallback)
	})
}
