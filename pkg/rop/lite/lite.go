package lite

import (
	"context"
	"sync"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/solo"
)

// Stage maps one result to the next.
type Stage[In, Out any] func(ctx context.Context, input rop.Result[In]) rop.Result[Out]

// Run feeds every result from inputCh through stage on lines workers. The
// output channel is closed once inputCh is drained or ctx ends.
func Run[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In], stage Stage[In, Out],
	lines int) <-chan rop.Result[Out] {

	if lines < 1 {
		panic(rop.NewArgumentError("lines", "at least one worker line is required"))
	}

	out := make(chan rop.Result[Out])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go line(ctx, inputCh, out, stage, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func line[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In], out chan<- rop.Result[Out],
	stage Stage[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case in, ok := <-inputCh:
			if !ok {
				return
			}
			select {
			case out <- stage(ctx, in):
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func Then[In, Out any](next func(ctx context.Context, r In) rop.Result[Out]) Stage[In, Out] {
	return func(ctx context.Context, input rop.Result[In]) rop.Result[Out] {
		return solo.Then(input, func(r In) rop.Result[Out] { return next(ctx, r) })
	}
}

func Map[In, Out any](transform func(ctx context.Context, r In) Out) Stage[In, Out] {
	return func(ctx context.Context, input rop.Result[In]) rop.Result[Out] {
		return solo.Map(input, func(r In) Out { return transform(ctx, r) })
	}
}

func Ensure[T any](predicate func(ctx context.Context, r T) bool, onFailure ...rop.Error) Stage[T, T] {
	return func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.Ensure(input, func(r T) bool { return predicate(ctx, r) }, onFailure...)
	}
}

func Validate[T any](validate func(ctx context.Context, in T) (isValid bool, errMsg string)) Stage[T, T] {
	return func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.Validate(input, func(in T) (bool, string) { return validate(ctx, in) })
	}
}

func Try[In, Out any](try func(ctx context.Context, r In) (Out, error)) Stage[In, Out] {
	return func(ctx context.Context, input rop.Result[In]) rop.Result[Out] {
		return solo.Try(input, func(r In) (Out, error) { return try(ctx, r) })
	}
}

// Tee runs sideEffect on every result that passes, success or failure.
func Tee[T any](sideEffect func(ctx context.Context, r rop.Result[T])) Stage[T, T] {
	return func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		sideEffect(ctx, input)
		return input
	}
}

// Compose joins two stages into one.
func Compose[In, Mid, Out any](first Stage[In, Mid], second Stage[Mid, Out]) Stage[In, Out] {
	return func(ctx context.Context, input rop.Result[In]) rop.Result[Out] {
		return second(ctx, first(ctx, input))
	}
}

// Finally collapses each result with solo.MatchValue.
func Finally[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, errs []rop.Error) Out) <-chan Out {

	out := make(chan Out)
	go func() {
		defer close(out)
		for {
			select {
			case r, ok := <-input:
				if !ok {
					return
				}
				v := solo.MatchValue(r,
					func(v In) Out { return onSuccess(ctx, v) },
					func(errs []rop.Error) Out { return onFailure(ctx, errs) })
				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
