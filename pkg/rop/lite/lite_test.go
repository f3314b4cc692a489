package lite

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/core"
)

func Test_Parallel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	source := []int{10, 5, 1, 20, 2}

	ch := Finally(
		ctx,
		Run(
			ctx,
			Run(
				ctx,
				core.ToChanManyResults(ctx, source),
				Validate(func(ctx context.Context, in int) (bool, string) {
					return in != 1, "value should not be 1"
				}),
				3),
			Then(func(ctx context.Context, r int) rop.Result[int] {
				return rop.Success(r + 1000)
			}),
			2),
		func(ctx context.Context, in int) int { return in },
		func(ctx context.Context, errs []rop.Error) int { return -1 })

	got, complete := core.FromChanMany(ctx, ch)
	require.True(t, complete)

	slices.Sort(got)
	assert.Equal(t, []int{-1, 1002, 1005, 1010, 1020}, got)
}

func TestRun_SingleLineKeepsOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	stage := Compose(
		Try(func(ctx context.Context, s string) (int, error) { return strconv.Atoi(s) }),
		Map(func(ctx context.Context, v int) int { return v * 2 }))

	out := Run(ctx, core.ToChanManyResults(ctx, []string{"1", "x", "3"}), stage, 1)
	got, _ := core.FromChanMany(ctx, out)

	require.Len(t, got, 3)
	assert.Equal(t, 2, got[0].Value())
	assert.True(t, got[1].IsFailure())
	assert.Equal(t, 6, got[2].Value())
}

func TestEnsureAndTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen atomic.Int32
	stage := Compose(
		Ensure(func(ctx context.Context, v int) bool { return v%2 == 0 }, rop.Validation("odd")),
		Tee(func(ctx context.Context, r rop.Result[int]) { seen.Add(1) }))

	got, _ := core.FromChanMany(ctx, Run(ctx, core.ToChanManyResults(ctx, []int{2, 3}), stage, 2))

	assert.Equal(t, int32(2), seen.Load())
	failures := 0
	for _, r := range got {
		if r.IsFailure() {
			failures++
			assert.Equal(t, []rop.Error{rop.Validation("odd")}, r.Errors())
		}
	}
	assert.Equal(t, 1, failures)
}

func TestRun_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	input := make(chan rop.Result[int])

	out := Run(ctx, input, Map(func(ctx context.Context, v int) int { return v }), 4)
	cancel()

	select {
	case _, ok := <-out:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("output channel was not closed after cancel")
	}
}

func TestRun_RejectsZeroLines(t *testing.T) {
	t.Parallel()

	defer func() {
		err, _ := recover().(error)
		assert.True(t, errors.Is(err, rop.ErrInvalidArgument))
	}()
	Run(context.Background(), make(chan rop.Result[int]), Map(func(ctx context.Context, v int) int { return v }), 0)
}

func TestRun_PanickingStageBecomesFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	stage := Try(func(ctx context.Context, v int) (int, error) {
		if v == 2 {
			panic("bad input")
		}
		return v, nil
	})

	got, complete := core.FromChanMany(ctx, Run(ctx, core.ToChanManyResults(ctx, []int{1, 2, 3}), stage, 1))
	require.True(t, complete)
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].Value())
	assert.Equal(t, []rop.Error{rop.Failure("bad input")}, got[1].Errors())
	assert.Equal(t, 3, got[2].Value())
}
