package closer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseLIFO(t *testing.T) {
	c := NewCloser(time.Second)

	var order []int
	for i := 1; i <= 3; i++ {
		c.Add(func(_ context.Context) error {
			order = append(order, i)
			return nil
		})
	}

	err := c.Close(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, order)
}

func TestCloseCollectsErrors(t *testing.T) {
	c := NewCloser(time.Second)

	c.Add(func(_ context.Context) error { return nil })
	c.Add(func(_ context.Context) error { return errors.New("redis: connection reset") })

	err := c.Close(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis: connection reset")
}

func TestCloseOnlyOnce(t *testing.T) {
	c := NewCloser(time.Second)

	calls := 0
	c.Add(func(_ context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, c.Close(context.Background()))
	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestCloseForcedOnTimeout(t *testing.T) {
	c := NewCloser(time.Second)

	var calls atomic.Int32
	c.Add(func(ctx context.Context) error {
		calls.Add(1)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
			return nil
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := c.Close(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "shutdown interrupted")

	// Повторный запуск с принудительным таймаутом
	assert.Equal(t, int32(2), calls.Load())
}
