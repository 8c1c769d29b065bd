// Package scheduler enqueues recurring jobs onto a worker pool.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/PredictionLeague_Go/internal/logger"
	"github.com/osse101/PredictionLeague_Go/internal/worker"
)

// Log messages
const (
	LogMsgJobScheduled = "Job scheduled"
	LogMsgJobSkipped   = "Worker queue full, skipping scheduled run"
)

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool *worker.Pool
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// New creates a new scheduler. Jobs run with a context derived from ctx,
// cancelled by Stop.
func New(ctx context.Context, pool *worker.Pool) *Scheduler {
	ctx, cancel := context.WithCancel(ctx)
	return &Scheduler{
		workerPool: pool,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Schedule runs job every interval. With runNow the first run is enqueued
// immediately instead of after one interval. A tick that finds the worker
// queue full is skipped rather than piling up.
func (s *Scheduler) Schedule(name string, interval time.Duration, runNow bool, job worker.Job) {
	logger.FromContext(s.ctx).Info(LogMsgJobScheduled, "job", name, "interval", interval.String(), "run_now", runNow)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		if runNow {
			s.enqueue(name, job)
		}
		for {
			select {
			case <-ticker.C:
				s.enqueue(name, job)
			case <-s.ctx.Done():
				return
			}
		}
	}()
}

func (s *Scheduler) enqueue(name string, job worker.Job) {
	ctx := logger.WithRequestID(s.ctx, logger.GenerateRequestID())
	if !s.workerPool.TryEnqueue(ctx, job) {
		logger.FromContext(ctx).Warn(LogMsgJobSkipped, "job", name)
	}
}

// Stop stops all scheduled jobs and cancels the context of queued runs
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}
