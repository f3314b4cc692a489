package core

import (
	"context"
	"iter"

	"github.com/ib-77/railway/pkg/rop"
)

// ToChanManyResults streams each value wrapped in a successful result, in
// order, stopping early when ctx ends. The channel is closed when done.
func ToChanManyResults[T any](ctx context.Context, values []T) <-chan rop.Result[T] {
	in := make(chan rop.Result[T])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			return
		}

		for _, v := range values {
			select {
			case in <- rop.Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// FromChanMany drains out into a slice in receive order. It stops at close
// or when ctx ends; complete reports whether the channel was fully drained.
func FromChanMany[T any](ctx context.Context, out <-chan T) (res []T, complete bool) {
	res = make([]T, 0)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res, true
			}
			res = append(res, v)
		case <-ctx.Done():
			return res, false
		}
	}
}

// FromSeq materializes a sequence into a slice, preserving order.
func FromSeq[T any](seq iter.Seq[T]) []T {
	res := make([]T, 0)
	for v := range seq {
		res = append(res, v)
	}
	return res
}
