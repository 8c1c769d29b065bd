package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/PredictionLeague_Go/internal/app"
	"github.com/osse101/PredictionLeague_Go/internal/cohort"
	"github.com/osse101/PredictionLeague_Go/internal/config"
	"github.com/osse101/PredictionLeague_Go/internal/event"
	"github.com/osse101/PredictionLeague_Go/internal/feed"
	"github.com/osse101/PredictionLeague_Go/internal/league"
	"github.com/osse101/PredictionLeague_Go/internal/prediction"
	"github.com/osse101/PredictionLeague_Go/internal/ratelimit"
	"github.com/osse101/PredictionLeague_Go/internal/scoring"
	"github.com/osse101/PredictionLeague_Go/internal/stats"
	"github.com/osse101/PredictionLeague_Go/internal/user"
	"github.com/osse101/PredictionLeague_Go/internal/validation"
)

// Services holds the core services and the facade the front ends use
type Services struct {
	Users       user.Service
	Leagues     league.Service
	Cohorts     cohort.Service
	Predictions prediction.Service
	Stats       stats.Service
	Core        *app.Core
}

// NewFeed returns the Kalshi client when credentials are configured and a
// disabled feed otherwise
func NewFeed(cfg *config.Config) (feed.Feed, error) {
	if !cfg.KalshiEnabled() {
		slog.Info(LogMsgFeedDisabled)
		return feed.Disabled{}, nil
	}
	client, err := feed.NewKalshiClient(feed.KalshiConfig{
		BaseURL:    cfg.Kalshi.BaseURL,
		APIKeyID:   cfg.Kalshi.APIKeyID,
		PrivateKey: cfg.Kalshi.PrivateKey,
		Timeout:    cfg.Kalshi.Timeout,
		RateLimit:  cfg.Kalshi.RateLimit,
		RateBurst:  cfg.Kalshi.RateBurst,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateFeed, err)
	}
	slog.Info(LogMsgFeedKalshi, "base_url", cfg.Kalshi.BaseURL)
	return client, nil
}

// InitializeServices wires the services over the repositories. Events go
// through publisher so a failed delivery is retried in the background.
func InitializeServices(cfg *config.Config, repos *Repositories, marketFeed feed.Feed, publisher event.Bus) (*Services, error) {
	engine := scoring.NewEngine(cfg.Scoring)

	var demo []feed.FallbackMarket
	if cfg.Cohort.FallbackFile != "" {
		var err error
		if demo, err = feed.LoadFallbackFile(cfg.Cohort.FallbackFile, validation.NewSchemaValidator()); err != nil {
			return nil, err
		}
		slog.Info(LogMsgFallbackLoaded, "path", cfg.Cohort.FallbackFile, "markets", len(demo))
	}

	users := user.NewService(repos.User, user.CacheConfig{Size: cfg.Cache.Size, TTL: cfg.Cache.TTL})
	leagues := league.NewService(repos.League, publisher, cfg.League.MaxMembers)
	cohorts := cohort.NewService(repos.Market, engine, marketFeed, publisher, cohort.Config{
		CohortSize: cfg.Cohort.Size,
		SyncBatch:  cfg.Cohort.SyncBatch,
		Fallback:   demo,
	})
	predictions := prediction.NewService(repos.Prediction, repos.Market, leagues, publisher, cfg.Scoring)
	statsSvc := stats.NewService(repos.Stats, repos.User, repos.League, repos.Prediction)

	return &Services{
		Users:       users,
		Leagues:     leagues,
		Cohorts:     cohorts,
		Predictions: predictions,
		Stats:       statsSvc,
		Core:        app.NewCore(users, leagues, cohorts, predictions, statsSvc, time.Now),
	}, nil
}

// NewLimiter returns a Redis-backed limiter when redis.url is set and an
// in-memory one otherwise. The client is nil for the in-memory limiter.
func NewLimiter(ctx context.Context, cfg *config.Config) (ratelimit.Limiter, *redis.Client, error) {
	if cfg.Redis.URL == "" {
		slog.Info(LogMsgLimiterMemory, "limit", cfg.RateLimit.Limit, "window", cfg.RateLimit.Window)
		return ratelimit.NewMemoryLimiter(cfg.RateLimit, ratelimit.DefaultMemoryKeys), nil, nil
	}
	rdb, err := ratelimit.NewRedisClient(ctx, cfg.Redis.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedRedis, err)
	}
	slog.Info(LogMsgLimiterRedis, "limit", cfg.RateLimit.Limit, "window", cfg.RateLimit.Window)
	return ratelimit.NewRedisLimiter(rdb, cfg.RateLimit), rdb, nil
}

// EnsureCurrentCohort refreshes from the feed (or the fallback) when the
// current week has no markets yet, so the bot never starts empty
func EnsureCurrentCohort(ctx context.Context, cohorts cohort.Service, now time.Time) error {
	markets, err := cohorts.GetCurrentCohort(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCohortBootstrap, err)
	}
	if len(markets) > 0 {
		slog.Info(LogMsgCohortPresent, "markets", len(markets))
		return nil
	}

	slog.Info(LogMsgCohortMissing)
	if _, err := cohorts.Refresh(ctx, now); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCohortBootstrap, err)
	}
	return nil
}
