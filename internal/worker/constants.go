package worker

import (
	"errors"
	"time"
)

// Pool defaults
const (
	DefaultWorkers   = 4
	DefaultQueueSize = 100
)

// ErrPoolStopped is returned when enqueueing into a stopped pool
var ErrPoolStopped = errors.New("worker pool stopped")

// Weekly reset scheduling. The worker sleeps until shortly before the reset,
// then sets a precise timer, so clock drift over a week cannot fire it early.
const (
	weeklyResetStandbyThreshold = time.Hour
	weeklyResetStandbyLead      = 45 * time.Minute
	weeklyResetJitterTolerance  = 10 * time.Second
)

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanicked = "Worker job panicked"
)

// ============================================================================
// Log Messages - Cohort Jobs
// ============================================================================

const (
	LogMsgCohortRefreshed       = "Cohort refreshed"
	LogMsgCohortRefreshFallback = "Cohort refreshed from fallback markets"
	LogMsgResolutionsSynced     = "Market resolutions synced"
)

// ============================================================================
// Log Messages - Weekly Reset Worker
// ============================================================================

const (
	LogMsgWeeklyResetStarting      = "Weekly reset starting"
	LogMsgWeeklyResetCompleted     = "Weekly reset completed"
	LogMsgWeeklyResetFailed        = "Weekly reset failed"
	LogMsgWeeklyResetStandby       = "Weekly reset standby"
	LogMsgWeeklyResetApproach      = "Weekly reset scheduled"
	LogMsgWeeklyResetShuttingDown  = "Shutting down weekly reset worker"
	LogMsgWeeklyResetShutdown      = "Weekly reset worker shutdown complete"
	LogMsgWeeklyResetShutdownSlow  = "Weekly reset worker shutdown timeout, a reset may still be running"
	LogMsgWeeklyResetPublishFailed = "Failed to publish weekly reset event"
)
