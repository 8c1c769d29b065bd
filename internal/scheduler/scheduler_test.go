package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/PredictionLeague_Go/internal/testing/leaktest"
	"github.com/osse101/PredictionLeague_Go/internal/worker"
)

type countingJob struct {
	runs atomic.Int32
	done chan struct{}
}

func (j *countingJob) Process(ctx context.Context) error {
	j.runs.Add(1)
	select {
	case j.done <- struct{}{}:
	default:
	}
	return nil
}

func waitRuns(t *testing.T, job *countingJob, n int, timeout time.Duration) {
	t.Helper()
	deadline := time.After(timeout)
	for i := 0; i < n; i++ {
		select {
		case <-job.done:
		case <-deadline:
			t.Fatalf("timeout waiting for run %d", i+1)
		}
	}
}

func TestScheduler_RunsOnInterval(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	pool := worker.NewPool(1, 10)
	pool.Start()
	sched := New(context.Background(), pool)

	job := &countingJob{done: make(chan struct{}, 10)}
	sched.Schedule("count", 10*time.Millisecond, false, job)

	waitRuns(t, job, 2, 500*time.Millisecond)

	sched.Stop()
	pool.Stop()
	assert.GreaterOrEqual(t, job.runs.Load(), int32(2))
	checker.Check(0)
}

func TestScheduler_RunNow(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()
	sched := New(context.Background(), pool)
	defer sched.Stop()

	job := &countingJob{done: make(chan struct{}, 10)}
	sched.Schedule("startup", time.Hour, true, job)

	waitRuns(t, job, 1, 500*time.Millisecond)
	assert.Equal(t, int32(1), job.runs.Load())
}

func TestScheduler_StopCancelsJobContext(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()
	sched := New(context.Background(), pool)

	started := make(chan struct{})
	cancelled := make(chan struct{})
	sched.Schedule("long", time.Hour, true, worker.JobFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		close(cancelled)
		return ctx.Err()
	}))

	<-started
	sched.Stop()

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("job context was not cancelled")
	}
}
