package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/scanconsole/internal/app/fanout"
)

func TestRun_EmptyItems(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 4, []string{}, func(context.Context, string) (int, error) {
		t.Fatal("fn should not be called for empty items")
		return 0, nil
	})

	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRun_PartialFailureKeepsOrder(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	types := []string{"task", "target", "report", "credential"}

	results := fanout.Run(context.Background(), 2, types, func(_ context.Context, entityType string) (int, error) {
		if entityType == "report" {
			return 0, errBoom
		}
		if entityType == "task" {
			time.Sleep(10 * time.Millisecond)
		}
		return len(entityType), nil
	})

	require.Len(t, results, 4)
	assert.Equal(t, fanout.Result[int]{Value: 4}, results[0])
	assert.Equal(t, fanout.Result[int]{Value: 6}, results[1])
	assert.ErrorIs(t, results[2].Err, errBoom)
	assert.Equal(t, fanout.Result[int]{Value: 10}, results[3])
	assert.Equal(t, []error{errBoom}, fanout.Errors(results))
}

func TestRun_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	const maxWorkers = 3

	var active, peak atomic.Int32
	items := make([]int, 12)

	fanout.Run(context.Background(), maxWorkers, items, func(context.Context, int) (struct{}, error) {
		cur := active.Add(1)
		defer active.Add(-1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		return struct{}{}, nil
	})

	assert.LessOrEqual(t, peak.Load(), int32(maxWorkers))
}

func TestRun_ZeroWorkersRunsSerially(t *testing.T) {
	t.Parallel()

	var active, peak atomic.Int32

	results := fanout.Run(context.Background(), 0, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		cur := active.Add(1)
		defer active.Add(-1)
		if cur > peak.Load() {
			peak.Store(cur)
		}
		return n, nil
	})

	assert.Equal(t, int32(1), peak.Load())
	assert.Empty(t, fanout.Errors(results))
}

func TestRun_CanceledWhileWaiting(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	results := fanout.Run(ctx, 1, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		calls.Add(1)
		if n == 1 {
			cancel()
		}
		return n, nil
	})

	assert.Equal(t, int32(1), calls.Load())
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, context.Canceled)
	assert.ErrorIs(t, results[2].Err, context.Canceled)
}

func TestRun_AlreadyCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := fanout.Run(ctx, 2, []int{1, 2}, func(context.Context, int) (int, error) {
		t.Fatal("fn should not be called after cancellation")
		return 0, nil
	})

	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}
