package eventlog

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/PredictionLeague_Go/internal/logger"
)

// CleanupJob is the scheduled retention sweep over event_log.
type CleanupJob struct {
	svc       Service
	retention time.Duration
}

func NewCleanupJob(svc Service, retention time.Duration) *CleanupJob {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &CleanupJob{svc: svc, retention: retention}
}

func (j *CleanupJob) Process(ctx context.Context) error {
	started := time.Now()
	deleted, err := j.svc.CleanupOldEvents(ctx, j.retention)
	log := logger.FromContext(ctx).With("retention", j.retention, "took", time.Since(started))
	if err != nil {
		log.Error(LogMsgCleanupFailed, "error", err)
		return fmt.Errorf("%s: %w", ErrMsgCleanupFailed, err)
	}
	if deleted > 0 {
		log.Info(LogMsgCleanupCompleted, "deleted", deleted)
	} else {
		log.Debug(LogMsgCleanupCompleted, "deleted", deleted)
	}
	return nil
}
