package async

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
)

// AwaitResult blocks until input settles and returns its result. A
// cancelled computation (or ctx ending first) yields a failure with
// rop.CanceledMessage; any other fault yields a failure with the fault message.
func AwaitResult[T any](ctx context.Context, input *Future[rop.Result[T]]) rop.Result[T] {
	r, err := input.Wait(ctx)
	if err != nil {
		return rop.Fail[T](faultError(err))
	}
	return r
}

// AwaitOutcome is AwaitResult for an Outcome.
func AwaitOutcome(ctx context.Context, input *Future[rop.Outcome]) rop.Outcome {
	o, err := input.Wait(ctx)
	if err != nil {
		return rop.Failed(faultError(err))
	}
	return o
}

func faultError(err error) rop.Error {
	if rop.IsCancellationError(err) {
		return rop.Failure(rop.CanceledMessage)
	}
	return rop.Failure(err.Error())
}
