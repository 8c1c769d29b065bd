package bootstrap

import (
	"context"

	"github.com/osse101/PredictionLeague_Go/internal/cohort"
	"github.com/osse101/PredictionLeague_Go/internal/config"
	"github.com/osse101/PredictionLeague_Go/internal/event"
	"github.com/osse101/PredictionLeague_Go/internal/eventlog"
	"github.com/osse101/PredictionLeague_Go/internal/repository"
	"github.com/osse101/PredictionLeague_Go/internal/scheduler"
	"github.com/osse101/PredictionLeague_Go/internal/worker"
)

// Workers holds the background machinery started at boot
type Workers struct {
	Pool        *worker.Pool
	Scheduler   *scheduler.Scheduler
	WeeklyReset *worker.WeeklyResetWorker
}

// StartWorkers starts the worker pool, schedules the cohort refresh and
// resolution sync jobs, and arms the weekly points reset. events may be nil.
func StartWorkers(ctx context.Context, cfg *config.Config, cohorts cohort.Service, users repository.User, bus event.Bus, events eventlog.Service) *Workers {
	pool := worker.NewPool(cfg.Worker.Count, cfg.Worker.QueueSize)
	pool.Start()

	sched := scheduler.New(ctx, pool)
	sched.Schedule(JobRefreshCohort, cfg.Cohort.RefreshInterval, cfg.Cohort.RefreshOnStart, worker.RefreshCohortJob{Cohorts: cohorts})
	sched.Schedule(JobSyncResolutions, cfg.Cohort.SyncInterval, false, worker.SyncResolutionsJob{Cohorts: cohorts})
	if events != nil {
		sched.Schedule(JobEventLogCleanup, cfg.Event.LogCleanupInterval, false, eventlog.NewCleanupJob(events, cfg.Event.LogRetention))
	}

	weekly := worker.NewWeeklyResetWorker(users, bus)
	weekly.Start()

	return &Workers{Pool: pool, Scheduler: sched, WeeklyReset: weekly}
}
