package async

import (
	"context"
	"sync"

	"github.com/ib-77/railway/pkg/rop"
)

// Future is a pending computation of R.
type Future[R any] struct {
	done   chan struct{}
	once   sync.Once
	result R
	err    error
}

func newFuture[R any]() *Future[R] {
	return &Future[R]{done: make(chan struct{})}
}

func (f *Future[R]) settle(result R, err error) {
	f.once.Do(func() {
		f.result = result
		f.err = err
		close(f.done)
	})
}

// Go starts compute on a new goroutine. The future faults with ctx.Err() if
// ctx ends before compute returns, and with an *rop.PanicError if compute
// panics.
func Go[R any](ctx context.Context, compute func(ctx context.Context) R) *Future[R] {
	return start(ctx, func(ctx context.Context) (R, error) {
		return compute(ctx), nil
	})
}

func start[R any](ctx context.Context, compute func(ctx context.Context) (R, error)) *Future[R] {
	f := newFuture[R]()

	type settled struct {
		result R
		err    error
	}
	ch := make(chan settled, 1)

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				var zero R
				ch <- settled{result: zero, err: &rop.PanicError{Value: rec}}
			}
		}()

		if ctx.Err() != nil {
			var zero R
			ch <- settled{result: zero, err: ctx.Err()}
			return
		}

		r, err := compute(ctx)
		ch <- settled{result: r, err: err}
	}()

	go func() {
		select {
		case s := <-ch:
			f.settle(s.result, s.err)
		case <-ctx.Done():
			var zero R
			f.settle(zero, ctx.Err())
		}
	}()

	return f
}

// Resolved returns a future already settled with r.
func Resolved[R any](r R) *Future[R] {
	f := newFuture[R]()
	f.settle(r, nil)
	return f
}

// Faulted returns a future already settled with err.
func Faulted[R any](err error) *Future[R] {
	f := newFuture[R]()
	var zero R
	f.settle(zero, err)
	return f
}

// Canceled returns a future that faulted with context.Canceled.
func Canceled[R any]() *Future[R] {
	return Faulted[R](context.Canceled)
}

// FromChan adapts a channel that delivers at most one value. A channel
// closed without a value counts as cancelled.
func FromChan[R any](ctx context.Context, ch <-chan R) *Future[R] {
	return start(ctx, func(ctx context.Context) (R, error) {
		select {
		case r, ok := <-ch:
			if !ok {
				var zero R
				return zero, context.Canceled
			}
			return r, nil
		case <-ctx.Done():
			var zero R
			return zero, ctx.Err()
		}
	})
}

// Done is closed once the future has settled.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the future settles or ctx ends. The error is the fault,
// or ctx.Err() when ctx ended first.
func (f *Future[R]) Wait(ctx context.Context) (R, error) {
	select {
	case <-f.done:
		return f.result, f.err
	default:
	}

	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// after waits for upstream and applies step to its value on a new goroutine.
func after[In, Out any](ctx context.Context, upstream *Future[In], step func(in In) Out) *Future[Out] {
	return start(ctx, func(ctx context.Context) (Out, error) {
		in, err := upstream.Wait(ctx)
		if err != nil {
			var zero Out
			return zero, err
		}
		return step(in), nil
	})
}

// afterFuture is after for a step that returns another future.
func afterFuture[In, Out any](ctx context.Context, upstream *Future[In],
	step func(ctx context.Context, in In) *Future[Out]) *Future[Out] {
	return start(ctx, func(ctx context.Context) (Out, error) {
		in, err := upstream.Wait(ctx)
		if err != nil {
			var zero Out
			return zero, err
		}
		return step(ctx, in).Wait(ctx)
	})
}
