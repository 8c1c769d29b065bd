package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/event"
	"github.com/osse101/PredictionLeague_Go/internal/logger"
)

// WeeklyResetter zeroes every user's weekly points
type WeeklyResetter interface {
	ResetWeeklyPoints(ctx context.Context) (int64, error)
}

// WeeklyResetWorker zeroes weekly points at Monday 00:00 UTC, when a new
// cohort week begins. Weekly leaderboards read the weekly score table and are
// not affected.
type WeeklyResetWorker struct {
	users    WeeklyResetter
	bus      event.Bus
	now      func() time.Time
	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewWeeklyResetWorker creates a new WeeklyResetWorker. bus may be nil.
func NewWeeklyResetWorker(users WeeklyResetter, bus event.Bus) *WeeklyResetWorker {
	return &WeeklyResetWorker{
		users:    users,
		bus:      bus,
		now:      time.Now,
		shutdown: make(chan struct{}),
	}
}

// WithClock replaces the worker's clock
func (w *WeeklyResetWorker) WithClock(now func() time.Time) *WeeklyResetWorker {
	w.now = now
	return w
}

// Start schedules the first reset
func (w *WeeklyResetWorker) Start() {
	w.scheduleNext()
}

// scheduleNext sleeps in two stages: a long standby that wakes shortly before
// the reset, then a precise timer for the reset itself.
func (w *WeeklyResetWorker) scheduleNext() {
	select {
	case <-w.shutdown:
		return
	default:
	}

	duration := timeUntilNextWeeklyReset(w.now())
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}

	if duration > weeklyResetStandbyThreshold {
		wait := duration - weeklyResetStandbyLead
		w.timer = time.AfterFunc(wait, w.scheduleNext)
		log.Info(LogMsgWeeklyResetStandby, "next_check_at", w.now().UTC().Add(wait))
		return
	}

	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// Fired early: reschedule for the remainder. A remainder close to a
		// full week means the reset time has just passed.
		rem := timeUntilNextWeeklyReset(w.now())
		if rem > weeklyResetJitterTolerance && rem < 6*24*time.Hour {
			w.scheduleNext()
			return
		}

		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			_, _ = w.ExecuteReset(context.Background())
		}()
		w.scheduleNext()
	})
	log.Info(LogMsgWeeklyResetApproach, "next_reset_at", w.now().UTC().Add(duration))
}

// ExecuteReset performs the reset immediately and publishes the completion event
func (w *WeeklyResetWorker) ExecuteReset(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgWeeklyResetStarting)

	affected, err := w.users.ResetWeeklyPoints(ctx)
	if err != nil {
		log.Error(LogMsgWeeklyResetFailed, "error", err)
		return 0, err
	}
	log.Info(LogMsgWeeklyResetCompleted, "users_reset", affected)

	if w.bus != nil {
		if err := w.bus.Publish(ctx, event.NewWeeklyResetCompleteEvent(affected)); err != nil {
			log.Warn(LogMsgWeeklyResetPublishFailed, "error", err)
		}
	}
	return affected, nil
}

// Shutdown cancels the pending timer and waits for an in-flight reset
func (w *WeeklyResetWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgWeeklyResetShuttingDown)

	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgWeeklyResetShutdown)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgWeeklyResetShutdownSlow)
		return ctx.Err()
	}
}

// timeUntilNextWeeklyReset returns the time until the next Monday 00:00 UTC
// strictly after now.
func timeUntilNextWeeklyReset(now time.Time) time.Duration {
	return domain.NextWeekStart(now).Sub(now)
}
