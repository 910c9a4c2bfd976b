package concurrent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEachVisitsEveryItem(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	var sum atomic.Int64
	seen := make([]bool, len(items))

	err := ForEach(context.Background(), items, 3, func(_ context.Context, i int, v int) error {
		sum.Add(int64(v))
		seen[i] = true
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(36), sum.Load())
	for i, ok := range seen {
		assert.True(t, ok, "item %d", i)
	}
}

func TestForEachRespectsLimit(t *testing.T) {
	var inFlight, peak atomic.Int32
	items := make([]struct{}, 16)

	err := ForEach(context.Background(), items, 2, func(context.Context, int, struct{}) error {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		inFlight.Add(-1)
		return nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestForEachStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	var calls atomic.Int32

	err := ForEach(context.Background(), make([]int, 100), 1, func(_ context.Context, i int, _ int) error {
		calls.Add(1)
		if i == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Less(t, calls.Load(), int32(100))
}

func TestForEachCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	err := ForEach(ctx, []int{1, 2, 3}, 0, func(context.Context, int, int) error {
		calls.Add(1)
		return nil
	})
	assert.Zero(t, calls.Load())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMapKeepsOrder(t *testing.T) {
	out, err := Map(context.Background(), []int{3, 1, 2}, 0, func(_ context.Context, v int) (string, error) {
		time.Sleep(time.Duration(v) * time.Millisecond)
		return string(rune('a' + v)), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "b", "c"}, out)
}

func TestMapError(t *testing.T) {
	boom := errors.New("boom")
	out, err := Map(context.Background(), []int{1, 2}, 1, func(_ context.Context, v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v, nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, out)
}
