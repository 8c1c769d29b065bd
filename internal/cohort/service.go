package cohort

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/event"
	"github.com/osse101/PredictionLeague_Go/internal/feed"
	"github.com/osse101/PredictionLeague_Go/internal/logger"
	"github.com/osse101/PredictionLeague_Go/internal/metrics"
	"github.com/osse101/PredictionLeague_Go/internal/repository"
	"github.com/osse101/PredictionLeague_Go/internal/scoring"
)

// Service defines the market cohort store
type Service interface {
	// PublishWeeklyCohort validates and upserts a batch of markets into the
	// week starting at weekStart. Existing markets keep their week and resolution.
	PublishWeeklyCohort(ctx context.Context, candidates []domain.CandidateMarket, weekStart time.Time) (int, error)
	GetCohort(ctx context.Context, weekStart time.Time) ([]domain.Market, error)
	GetCurrentCohort(ctx context.Context) ([]domain.Market, error)
	GetMarket(ctx context.Context, marketID string) (*domain.Market, error)
	// Resolve records the outcome and settles every pending prediction in one
	// transaction. A second resolution fails with ErrAlreadyResolved.
	Resolve(ctx context.Context, marketID string, outcome bool) (*domain.SettlementResult, error)
	Refresh(ctx context.Context, now time.Time) (*domain.RefreshResult, error)
	SyncResolutions(ctx context.Context, now time.Time) (int, error)
}

// Config tunes the cohort service
type Config struct {
	CohortSize int
	SyncBatch  int
	// Fallback replaces the built-in demo list when non-empty
	Fallback []feed.FallbackMarket
	// Now overrides the clock in tests
	Now func() time.Time
}

type service struct {
	repo       repository.Market
	engine     *scoring.Engine
	feed       feed.Feed
	bus        event.Bus
	cohortSize int
	syncBatch  int
	demo       []feed.FallbackMarket
	now        func() time.Time
}

// NewService creates the cohort service
func NewService(repo repository.Market, engine *scoring.Engine, marketFeed feed.Feed, bus event.Bus, cfg Config) Service {
	if cfg.CohortSize <= 0 {
		cfg.CohortSize = domain.DefaultCohortSize
	}
	if cfg.CohortSize > domain.MaxCohortSize {
		cfg.CohortSize = domain.MaxCohortSize
	}
	if cfg.SyncBatch <= 0 {
		cfg.SyncBatch = DefaultSyncBatch
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if len(cfg.Fallback) == 0 {
		cfg.Fallback = feed.DefaultFallback
	}
	if marketFeed == nil {
		marketFeed = feed.Disabled{}
	}
	return &service{
		repo:       repo,
		engine:     engine,
		feed:       marketFeed,
		bus:        bus,
		cohortSize: cfg.CohortSize,
		syncBatch:  cfg.SyncBatch,
		demo:       cfg.Fallback,
		now:        cfg.Now,
	}
}

func (s *service) PublishWeeklyCohort(ctx context.Context, candidates []domain.CandidateMarket, weekStart time.Time) (int, error) {
	if err := domain.ValidateWeekStart(weekStart); err != nil {
		return 0, err
	}
	weekStart = weekStart.UTC()

	seen := make(map[string]bool, len(candidates))
	markets := make([]domain.Market, 0, len(candidates))
	for _, c := range candidates {
		if err := c.Validate(); err != nil {
			return 0, err
		}
		m := c.ToMarket(weekStart)
		if seen[m.ID] {
			return 0, fmt.Errorf("%w: %s %s", domain.ErrDataInvalid, ErrMsgDuplicateID, m.ID)
		}
		seen[m.ID] = true
		markets = append(markets, m)
	}
	if len(markets) == 0 {
		return 0, nil
	}

	n, err := s.repo.UpsertMarkets(ctx, markets)
	if err != nil {
		return 0, err
	}

	source := sourceOf(markets)
	logger.FromContext(ctx).Info(LogMsgCohortPublished,
		"week_start", weekStart.Format(domain.WeekDateLayout),
		"count", n,
		"source", source)
	s.publish(ctx, event.NewCohortPublishedEvent(weekStart, n, source))
	return n, nil
}

func (s *service) GetCohort(ctx context.Context, weekStart time.Time) ([]domain.Market, error) {
	if err := domain.ValidateWeekStart(weekStart); err != nil {
		return nil, err
	}
	return s.repo.GetCohort(ctx, weekStart.UTC(), s.now())
}

func (s *service) GetCurrentCohort(ctx context.Context) ([]domain.Market, error) {
	now := s.now()
	return s.repo.GetCohort(ctx, domain.WeekStart(now), now)
}

func (s *service) GetMarket(ctx context.Context, marketID string) (*domain.Market, error) {
	if strings.TrimSpace(marketID) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyMarketID)
	}
	return s.repo.GetMarket(ctx, marketID)
}

func (s *service) Resolve(ctx context.Context, marketID string, outcome bool) (*domain.SettlementResult, error) {
	return s.resolve(ctx, marketID, outcome, domain.MarketSourceManual)
}

func (s *service) resolve(ctx context.Context, marketID string, outcome bool, source string) (*domain.SettlementResult, error) {
	log := logger.FromContext(ctx)
	if strings.TrimSpace(marketID) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyMarketID)
	}

	tx, err := s.repo.BeginSettlement(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	market, err := tx.GetMarketForUpdate(ctx, marketID)
	if err != nil {
		return nil, err
	}
	if market.IsResolved() {
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyResolved, marketID)
	}

	at := s.now().UTC()
	if err := tx.MarkResolved(ctx, marketID, outcome, at); err != nil {
		return nil, err
	}
	market.Resolution = &outcome
	market.ResolvedAt = &at

	result, err := s.engine.Settle(ctx, tx, market, outcome, at)
	if err != nil {
		log.Error(LogErrResolveFailed, "error", err, "market_id", marketID)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	log.Info(LogMsgMarketResolved,
		"market_id", marketID,
		"outcome", outcome,
		"source", source,
		"scored", result.Scored)
	s.publish(ctx, event.NewMarketResolvedEvent(result, source))
	return result, nil
}

// Refresh publishes the feed's open markets as the current week's cohort.
// An unavailable or empty feed falls back to the static list. Malformed feed
// data only falls back when the week has no cohort yet.
func (s *service) Refresh(ctx context.Context, now time.Time) (*domain.RefreshResult, error) {
	log := logger.FromContext(ctx)
	weekStart := domain.WeekStart(now)
	result := &domain.RefreshResult{WeekStart: weekStart}

	candidates, err := s.feed.FetchMarkets(ctx, s.cohortSize)
	switch {
	case err == nil && len(candidates) > 0:
		metrics.FeedFetches.WithLabelValues(domain.MarketSourceKalshi, metrics.ResultOK).Inc()
	case err == nil:
		metrics.FeedFetches.WithLabelValues(domain.MarketSourceKalshi, metrics.ResultEmpty).Inc()
		candidates = s.fallback(ctx, now, "empty feed")
	case errors.Is(err, feed.ErrUnavailable):
		metrics.FeedFetches.WithLabelValues(domain.MarketSourceKalshi, metrics.ResultError).Inc()
		result.FeedError = err.Error()
		candidates = s.fallback(ctx, now, err.Error())
	case errors.Is(err, feed.ErrMalformed):
		metrics.FeedFetches.WithLabelValues(domain.MarketSourceKalshi, metrics.ResultError).Inc()
		existing, gerr := s.repo.GetCohort(ctx, weekStart, now)
		if gerr != nil {
			return nil, gerr
		}
		if len(existing) > 0 {
			log.Warn(LogWarnMalformedFeed, "error", err, "existing", len(existing))
			return nil, err
		}
		result.FeedError = err.Error()
		candidates = s.fallback(ctx, now, err.Error())
	default:
		metrics.FeedFetches.WithLabelValues(domain.MarketSourceKalshi, metrics.ResultError).Inc()
		return nil, err
	}

	if len(candidates) > s.cohortSize {
		candidates = candidates[:s.cohortSize]
	}

	n, err := s.PublishWeeklyCohort(ctx, candidates, weekStart)
	if err != nil {
		return nil, err
	}
	result.Published = n
	result.Source = candidates[0].Source

	log.Info(LogMsgRefreshCompleted, "week_start", weekStart.Format(domain.WeekDateLayout), "published", n, "source", result.Source)
	return result, nil
}

func (s *service) fallback(ctx context.Context, now time.Time, reason string) []domain.CandidateMarket {
	logger.FromContext(ctx).Warn(LogMsgUsingFallback, "reason", reason)
	metrics.FeedFetches.WithLabelValues(domain.MarketSourceFallback, metrics.ResultOK).Inc()
	return feed.BuildFallback(s.demo, domain.WeekStart(now))
}

// SyncResolutions resolves closed feed markets whose outcome the feed reports
// as settled. It returns how many markets ended up resolved.
func (s *service) SyncResolutions(ctx context.Context, now time.Time) (int, error) {
	log := logger.FromContext(ctx)

	markets, err := s.repo.ListUnresolvedClosed(ctx, now, s.syncBatch)
	if err != nil {
		return 0, err
	}

	var (
		resolved int
		errs     []error
	)
	for _, m := range markets {
		if m.Source != domain.MarketSourceKalshi {
			continue
		}
		if err := ctx.Err(); err != nil {
			return resolved, err
		}

		outcome, err := s.feed.FetchOutcome(ctx, m.ID)
		if err != nil {
			log.Warn(LogWarnOutcomeFetchFailed, "error", err, "market_id", m.ID)
			if errors.Is(err, feed.ErrUnavailable) {
				errs = append(errs, err)
				break
			}
			continue
		}
		if outcome == nil {
			log.Debug(LogMsgOutcomePending, "market_id", m.ID)
			continue
		}

		_, err = s.resolve(ctx, m.ID, *outcome, domain.MarketSourceKalshi)
		switch {
		case err == nil:
			resolved++
		case errors.Is(err, domain.ErrAlreadyResolved):
			log.Info(LogWarnConcurrentResolve, "market_id", m.ID)
			resolved++
		default:
			log.Error(LogErrResolveFailed, "error", err, "market_id", m.ID)
			errs = append(errs, fmt.Errorf("market %s: %w", m.ID, err))
		}
	}

	log.Info(LogMsgResolutionsSynced, "candidates", len(markets), "resolved", resolved)
	return resolved, errors.Join(errs...)
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogWarnFailedToPublish, "error", err, "type", evt.Type)
	}
}

func sourceOf(markets []domain.Market) string {
	source := markets[0].Source
	for _, m := range markets[1:] {
		if m.Source != source {
			return SourceMixed
		}
	}
	return source
}
