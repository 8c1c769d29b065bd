package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PredictionLeague_Go/internal/testing/leaktest"
)

func TestPool_RunsQueuedJobs(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	var executed int32
	pool := NewPool(2, 10)
	pool.Start()

	job := JobFunc(func(ctx context.Context) error {
		atomic.AddInt32(&executed, 1)
		return nil
	})
	for i := 0; i < 5; i++ {
		require.NoError(t, pool.Enqueue(context.Background(), job))
	}

	pool.Stop()

	assert.Equal(t, int32(5), atomic.LoadInt32(&executed), "Stop drains the queue")
	checker.Check(0)
}

func TestPool_SurvivesFailingAndPanickingJobs(t *testing.T) {
	var executed int32
	pool := NewPool(1, 10)
	pool.Start()
	ctx := context.Background()

	require.NoError(t, pool.Enqueue(ctx, JobFunc(func(context.Context) error { return errors.New("boom") })))
	require.NoError(t, pool.Enqueue(ctx, JobFunc(func(context.Context) error { panic("kaboom") })))
	require.NoError(t, pool.Enqueue(ctx, JobFunc(func(context.Context) error {
		atomic.AddInt32(&executed, 1)
		return nil
	})))

	pool.Stop()
	assert.Equal(t, int32(1), atomic.LoadInt32(&executed))
}

func TestPool_EnqueueRespectsContext(t *testing.T) {
	pool := NewPool(1, 0)
	// not started: nothing drains the unbuffered queue

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := pool.Enqueue(ctx, JobFunc(func(context.Context) error { return nil }))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, pool.TryEnqueue(context.Background(), JobFunc(func(context.Context) error { return nil })))
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	pool.Stop()
	pool.Stop()

	err := pool.Enqueue(context.Background(), JobFunc(func(context.Context) error { return nil }))
	assert.ErrorIs(t, err, ErrPoolStopped)
}
