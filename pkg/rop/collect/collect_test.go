package collect

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/async"
)

func TestResults(t *testing.T) {
	t.Parallel()

	ok := Results([]rop.Result[int]{rop.Success(1), rop.Success(2), rop.Success(3)})
	assert.Equal(t, []int{1, 2, 3}, ok.Value())

	e1, e2 := rop.Failure("e1"), rop.NotFound("e2")
	failed := Results([]rop.Result[int]{rop.Success(1), rop.Fail[int](e1), rop.Fail[int](e2)})
	assert.Equal(t, []rop.Error{e1, e2}, failed.Errors())

	assert.Empty(t, Results[int](nil).Value())
}

func TestOutcomes(t *testing.T) {
	t.Parallel()

	assert.True(t, Outcomes([]rop.Outcome{rop.Done(), rop.Done()}).IsSuccess())
	assert.True(t, Outcomes(nil).IsSuccess())

	failed := Outcomes([]rop.Outcome{rop.Failed(rop.Failure("a")), rop.Done(), rop.Failed(rop.Failure("b"))})
	assert.Equal(t, "a\nb", failed.SummaryErrorMessages())
}

func TestSeq(t *testing.T) {
	t.Parallel()

	results := ResultsSeq(slices.Values([]rop.Result[string]{rop.Success("x"), rop.Success("y")}))
	assert.Equal(t, []string{"x", "y"}, results.Value())

	outcomes := OutcomesSeq(slices.Values([]rop.Outcome{rop.Done(), rop.Failed(rop.Forbidden())}))
	assert.Equal(t, []rop.Error{rop.Forbidden()}, outcomes.Errors())
}

func TestResultsChan(t *testing.T) {
	t.Parallel()

	ch := make(chan rop.Result[int], 3)
	ch <- rop.Success(1)
	ch <- rop.Success(2)
	ch <- rop.Success(3)
	close(ch)

	assert.Equal(t, []int{1, 2, 3}, ResultsChan(context.Background(), ch).Value())
}

func TestResultsChan_Canceled(t *testing.T) {
	t.Parallel()

	ch := make(chan rop.Result[int], 1)
	ch <- rop.Fail[int](rop.Failure("first"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	r := ResultsChan(ctx, ch)
	require.True(t, r.IsFailure())
	assert.Equal(t, []rop.Error{rop.Failure("first"), rop.Failure(rop.CanceledMessage)}, r.Errors())
}

func TestOutcomesChan(t *testing.T) {
	t.Parallel()

	ch := make(chan rop.Outcome, 2)
	ch <- rop.Done()
	ch <- rop.Done()
	close(ch)
	assert.True(t, OutcomesChan(context.Background(), ch).IsSuccess())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	o := OutcomesChan(ctx, make(chan rop.Outcome))
	assert.Equal(t, rop.CanceledMessage, o.SummaryErrorMessages())
}

func TestFutures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	futures := make([]*async.Future[rop.Result[int]], 0, 5)
	for i := range 5 {
		futures = append(futures, async.Go(ctx, func(context.Context) rop.Result[int] {
			time.Sleep(time.Duration(5-i) * time.Millisecond)
			return rop.Success(i * i)
		}))
	}

	assert.Equal(t, []int{0, 1, 4, 9, 16}, Futures(ctx, futures).Value())
}

func TestFutures_FaultsBecomeFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r := Futures(ctx, []*async.Future[rop.Result[int]]{
		async.Resolved(rop.Success(1)),
		async.Canceled[rop.Result[int]](),
		async.Resolved(rop.Fail[int](rop.Conflict("dup"))),
	})
	assert.Equal(t, []rop.Error{rop.Failure(rop.CanceledMessage), rop.Conflict("dup")}, r.Errors())

	o := OutcomeFutures(ctx, []*async.Future[rop.Outcome]{
		async.Resolved(rop.Done()),
		async.Go(ctx, func(context.Context) rop.Outcome { panic("down") }),
	})
	assert.Equal(t, "down", o.SummaryErrorMessages())
}
