package async

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/solo"
)

func OutcomeThen(ctx context.Context, input *Future[rop.Outcome],
	next func() rop.Outcome) *Future[rop.Outcome] {
	return after(ctx, input, func(o rop.Outcome) rop.Outcome {
		return solo.OutcomeThen(o, next)
	})
}

func OutcomeThenFuture(ctx context.Context, input *Future[rop.Outcome],
	next func(ctx context.Context) *Future[rop.Outcome]) *Future[rop.Outcome] {
	return afterFuture(ctx, input, func(ctx context.Context, o rop.Outcome) *Future[rop.Outcome] {
		if o.IsFailure() {
			return Resolved(o)
		}
		return next(ctx)
	})
}

func OutcomeThenResult[Out any](ctx context.Context, input *Future[rop.Outcome],
	next func() rop.Result[Out]) *Future[rop.Result[Out]] {
	return after(ctx, input, func(o rop.Outcome) rop.Result[Out] {
		return solo.OutcomeThenResult(o, next)
	})
}

func OutcomeThenResultFuture[Out any](ctx context.Context, input *Future[rop.Outcome],
	next func(ctx context.Context) *Future[rop.Result[Out]]) *Future[rop.Result[Out]] {
	return afterFuture(ctx, input, func(ctx context.Context, o rop.Outcome) *Future[rop.Result[Out]] {
		if o.IsFailure() {
			return Resolved(rop.PropagateOutcome[Out](o))
		}
		return next(ctx)
	})
}

func OutcomeEnsure(ctx context.Context, input *Future[rop.Outcome],
	predicate func() bool, onFailure ...rop.Error) *Future[rop.Outcome] {
	return after(ctx, input, func(o rop.Outcome) rop.Outcome {
		return solo.OutcomeEnsure(o, predicate, onFailure...)
	})
}

func OutcomeMatch(ctx context.Context, input *Future[rop.Outcome],
	onSuccess func(), onFailure func(errs []rop.Error)) *Future[rop.Outcome] {
	return after(ctx, input, func(o rop.Outcome) rop.Outcome {
		return solo.OutcomeMatch(o, onSuccess, onFailure)
	})
}

func OutcomeMatchValue[Out any](ctx context.Context, input *Future[rop.Outcome],
	onSuccess func() Out, onFailure func(errs []rop.Error) Out) *Future[Out] {
	return after(ctx, input, func(o rop.Outcome) Out {
		return solo.OutcomeMatchValue(o, onSuccess, onFailure)
	})
}

func OutcomeOnSuccess(ctx context.Context, input *Future[rop.Outcome], action func()) *Future[rop.Outcome] {
	return after(ctx, input, func(o rop.Outcome) rop.Outcome {
		return solo.OutcomeOnSuccess(o, action)
	})
}

func OutcomeOnFailure(ctx context.Context, input *Future[rop.Outcome],
	action func(errs []rop.Error)) *Future[rop.Outcome] {
	return after(ctx, input, func(o rop.Outcome) rop.Outcome {
		return solo.OutcomeOnFailure(o, action)
	})
}

func OutcomeOrElse(ctx context.Context, input *Future[rop.Outcome],
	alternative func() rop.Outcome) *Future[rop.Outcome] {
	return after(ctx, input, func(o rop.Outcome) rop.Outcome {
		return solo.OutcomeOrElse(o, alternative)
	})
}

func OutcomeOrElseFuture(ctx context.Context, input *Future[rop.Outcome],
	alternative func(ctx context.Context) *Future[rop.Outcome]) *Future[rop.Outcome] {
	return afterFuture(ctx, input, func(ctx context.Context, o rop.Outcome) *Future[rop.Outcome] {
		if o.IsSuccess() {
			return Resolved(o)
		}
		return alternative(ctx)
	})
}
