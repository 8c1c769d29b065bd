package worker

import (
	"context"
	"time"

	"github.com/osse101/PredictionLeague_Go/internal/cohort"
	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/logger"
)

// RefreshCohortJob pulls the current cohort from the market feed
type RefreshCohortJob struct {
	Cohorts cohort.Service
	Now     func() time.Time
}

func (j RefreshCohortJob) Process(ctx context.Context) error {
	res, err := j.Cohorts.Refresh(ctx, clock(j.Now)())
	if err != nil {
		return err
	}
	log := logger.FromContext(ctx)
	if res.Source == domain.MarketSourceFallback {
		log.Warn(LogMsgCohortRefreshFallback, "week_start", res.WeekStart, "markets", res.Published, "feed_error", res.FeedError)
		return nil
	}
	log.Info(LogMsgCohortRefreshed, "week_start", res.WeekStart, "markets", res.Published, "source", res.Source)
	return nil
}

// SyncResolutionsJob settles closed markets whose outcome the feed reports
type SyncResolutionsJob struct {
	Cohorts cohort.Service
	Now     func() time.Time
}

func (j SyncResolutionsJob) Process(ctx context.Context) error {
	n, err := j.Cohorts.SyncResolutions(ctx, clock(j.Now)())
	if n > 0 {
		logger.FromContext(ctx).Info(LogMsgResolutionsSynced, "resolved", n)
	}
	return err
}

func clock(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}
	return now
}
