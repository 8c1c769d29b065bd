package worker

import (
	"context"
	"sync"

	"github.com/osse101/PredictionLeague_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to the Job interface
type JobFunc func(ctx context.Context) error

func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

type queued struct {
	ctx context.Context
	job Job
}

// Pool runs jobs on a fixed number of goroutines. The queue bounds how much
// work can be waiting; Enqueue blocks when it is full.
type Pool struct {
	workers  int
	jobQueue chan queued
	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan queued, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case q := <-p.jobQueue:
			p.run(q)
		case <-p.quit:
			// drain what is already queued
			for {
				select {
				case q := <-p.jobQueue:
					p.run(q)
				default:
					return
				}
			}
		}
	}
}

func (p *Pool) run(q queued) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(q.ctx).Error(LogMsgWorkerJobPanicked, "panic", r)
		}
	}()
	if err := q.job.Process(q.ctx); err != nil {
		logger.FromContext(q.ctx).Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Enqueue adds a job to the queue, waiting for space until ctx is done or the
// pool stops. The job later runs with ctx.
func (p *Pool) Enqueue(ctx context.Context, job Job) error {
	select {
	case <-p.quit:
		return ErrPoolStopped
	default:
	}
	select {
	case p.jobQueue <- queued{ctx: ctx, job: job}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.quit:
		return ErrPoolStopped
	}
}

// TryEnqueue adds a job without blocking and reports whether it was queued
func (p *Pool) TryEnqueue(ctx context.Context, job Job) bool {
	select {
	case <-p.quit:
		return false
	default:
	}
	select {
	case p.jobQueue <- queued{ctx: ctx, job: job}:
		return true
	default:
		return false
	}
}

// Stop stops accepting jobs, runs what is queued, and waits for the workers
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.quit) })
	p.wg.Wait()
}
