package cohort_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PredictionLeague_Go/internal/cohort"
	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/event"
	"github.com/osse101/PredictionLeague_Go/internal/feed"
	"github.com/osse101/PredictionLeague_Go/internal/scoring"
	"github.com/osse101/PredictionLeague_Go/mocks"
)

var (
	fixedNow  = time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC)
	weekStart = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	repo *mocks.MockRepositoryMarket
	feed *mocks.MockFeed
	bus  *mocks.MockEventBus
	svc  cohort.Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		repo: mocks.NewMockRepositoryMarket(t),
		feed: mocks.NewMockFeed(t),
		bus:  mocks.NewMockEventBus(t),
	}
	f.svc = cohort.NewService(f.repo, scoring.NewEngine(scoring.DefaultConfig()), f.feed, f.bus, cohort.Config{
		CohortSize: 10,
		Now:        func() time.Time { return fixedNow },
	})
	return f
}

func eventOfType(typ event.Type) interface{} {
	return mock.MatchedBy(func(e event.Event) bool { return e.Type == typ })
}

func candidate(id, source string) domain.CandidateMarket {
	return domain.CandidateMarket{
		ID:        id,
		Title:     "Will " + id + " happen?",
		Category:  "General",
		CloseTime: fixedNow.Add(48 * time.Hour),
		YesPrice:  decimal.RequireFromString("0.6"),
		NoPrice:   decimal.RequireFromString("0.4"),
		Volume:    decimal.NewFromInt(100),
		Source:    source,
	}
}

func upsertCount(_ context.Context, ms []domain.Market) (int, error) {
	return len(ms), nil
}

func TestPublishWeeklyCohort(t *testing.T) {
	t.Run("rejects non-Monday week", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.PublishWeeklyCohort(context.Background(), []domain.CandidateMarket{candidate("A", "manual")}, weekStart.AddDate(0, 0, 1))
		assert.ErrorIs(t, err, domain.ErrDataInvalid)
		f.repo.AssertNotCalled(t, "UpsertMarkets", mock.Anything, mock.Anything)
	})

	t.Run("rejects invalid candidate", func(t *testing.T) {
		f := newFixture(t)
		bad := candidate("B", "manual")
		bad.YesPrice = decimal.RequireFromString("1.2")
		_, err := f.svc.PublishWeeklyCohort(context.Background(), []domain.CandidateMarket{candidate("A", "manual"), bad}, weekStart)
		assert.ErrorIs(t, err, domain.ErrDataInvalid)
	})

	t.Run("rejects duplicate ids in one batch", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.PublishWeeklyCohort(context.Background(), []domain.CandidateMarket{candidate("A", "manual"), candidate("A", "manual")}, weekStart)
		assert.ErrorIs(t, err, domain.ErrDataInvalid)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		f := newFixture(t)
		n, err := f.svc.PublishWeeklyCohort(context.Background(), nil, weekStart)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("upserts and publishes event", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("UpsertMarkets", mock.Anything, mock.MatchedBy(func(ms []domain.Market) bool {
			return len(ms) == 2 && ms[0].WeekStart.Equal(weekStart) && ms[1].Source == domain.MarketSourceManual
		})).Return(upsertCount)
		f.bus.On("Publish", mock.Anything, eventOfType(event.CohortPublished)).Return(nil)

		n, err := f.svc.PublishWeeklyCohort(context.Background(), []domain.CandidateMarket{candidate("A", ""), candidate("B", "")}, weekStart)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestGetCohort(t *testing.T) {
	f := newFixture(t)
	f.repo.On("GetCohort", mock.Anything, weekStart, fixedNow).Return([]domain.Market{{ID: "A"}}, nil).Twice()

	ms, err := f.svc.GetCohort(context.Background(), weekStart)
	require.NoError(t, err)
	assert.Len(t, ms, 1)

	ms, err = f.svc.GetCurrentCohort(context.Background())
	require.NoError(t, err)
	assert.Len(t, ms, 1)

	_, err = f.svc.GetCohort(context.Background(), weekStart.Add(time.Hour))
	assert.ErrorIs(t, err, domain.ErrDataInvalid)
}

func openMarket(id string) *domain.Market {
	return &domain.Market{
		ID:        id,
		CloseTime: fixedNow.Add(-time.Hour),
		WeekStart: weekStart,
		YesPrice:  decimal.RequireFromString("0.6"),
		NoPrice:   decimal.RequireFromString("0.4"),
		Source:    domain.MarketSourceKalshi,
	}
}

func TestResolve(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		tx := mocks.NewMockRepositorySettlementTx(t)
		f.repo.On("BeginSettlement", mock.Anything).Return(tx, nil)
		tx.On("GetMarketForUpdate", mock.Anything, "X").Return(nil, domain.ErrMarketNotFound)
		tx.On("Rollback", mock.Anything).Return(nil)

		_, err := f.svc.Resolve(context.Background(), "X", true)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("already resolved", func(t *testing.T) {
		f := newFixture(t)
		tx := mocks.NewMockRepositorySettlementTx(t)
		resolved := openMarket("M")
		yes := true
		resolved.Resolution = &yes
		f.repo.On("BeginSettlement", mock.Anything).Return(tx, nil)
		tx.On("GetMarketForUpdate", mock.Anything, "M").Return(resolved, nil)
		tx.On("Rollback", mock.Anything).Return(nil)

		_, err := f.svc.Resolve(context.Background(), "M", false)
		assert.ErrorIs(t, err, domain.ErrAlreadyResolved)
		tx.AssertNotCalled(t, "MarkResolved", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("settles and commits", func(t *testing.T) {
		f := newFixture(t)
		tx := mocks.NewMockRepositorySettlementTx(t)
		f.repo.On("BeginSettlement", mock.Anything).Return(tx, nil)
		tx.On("GetMarketForUpdate", mock.Anything, "M").Return(openMarket("M"), nil)
		tx.On("MarkResolved", mock.Anything, "M", true, fixedNow).Return(nil)
		tx.On("GetPredictionsForUpdate", mock.Anything, "M").Return([]domain.Prediction{
			{ID: 1, UserID: "telegram:1", MarketID: "M", LeagueID: 1, Choice: true},
		}, nil)
		tx.On("GetRecentOutcomes", mock.Anything, "telegram:1", 0, mock.Anything).Return([]bool{}, nil)
		tx.On("ScorePrediction", mock.Anything, int64(1), 10, true, fixedNow).Return(true, nil)
		tx.On("ApplyUserScore", mock.Anything, "telegram:1", mock.Anything).Return(&domain.User{ID: "telegram:1", TotalPoints: 10, Streak: 1}, nil)
		tx.On("AddWeeklyScore", mock.Anything, "telegram:1", int64(1), weekStart, 10).Return(nil)
		tx.On("Commit", mock.Anything).Return(nil)
		tx.On("Rollback", mock.Anything).Return(nil)
		f.bus.On("Publish", mock.Anything, eventOfType(event.MarketResolved)).Return(nil)

		res, err := f.svc.Resolve(context.Background(), "M", true)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Scored)
		assert.Equal(t, 1, res.Correct)
		assert.Equal(t, 10, res.PointsAwarded)
	})

	t.Run("settlement failure rolls back", func(t *testing.T) {
		f := newFixture(t)
		tx := mocks.NewMockRepositorySettlementTx(t)
		f.repo.On("BeginSettlement", mock.Anything).Return(tx, nil)
		tx.On("GetMarketForUpdate", mock.Anything, "M").Return(openMarket("M"), nil)
		tx.On("MarkResolved", mock.Anything, "M", false, fixedNow).Return(nil)
		tx.On("GetPredictionsForUpdate", mock.Anything, "M").Return([]domain.Prediction{
			{ID: 1, UserID: "telegram:1", MarketID: "M", LeagueID: 1, Choice: true},
		}, nil)
		tx.On("ScorePrediction", mock.Anything, int64(1), 0, false, fixedNow).Return(false, errors.New("disk full"))
		tx.On("Rollback", mock.Anything).Return(nil)

		_, err := f.svc.Resolve(context.Background(), "M", false)
		require.Error(t, err)
		tx.AssertNotCalled(t, "Commit", mock.Anything)
		f.bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}

func TestRefresh_FallbackPolicy(t *testing.T) {
	kalshi := []domain.CandidateMarket{candidate("K1", domain.MarketSourceKalshi), candidate("K2", domain.MarketSourceKalshi)}

	tests := []struct {
		name          string
		feedMarkets   []domain.CandidateMarket
		feedErr       error
		existing      []domain.Market
		wantErr       error
		wantSource    string
		wantPublished int
		wantFeedError bool
	}{
		{name: "feed ok", feedMarkets: kalshi, wantSource: domain.MarketSourceKalshi, wantPublished: 2},
		{name: "feed unavailable", feedErr: feed.ErrUnavailable, wantSource: domain.MarketSourceFallback, wantPublished: 5, wantFeedError: true},
		{name: "feed empty", feedMarkets: []domain.CandidateMarket{}, wantSource: domain.MarketSourceFallback, wantPublished: 5},
		{name: "malformed with existing cohort", feedErr: feed.ErrMalformed, existing: []domain.Market{{ID: "OLD"}}, wantErr: feed.ErrMalformed},
		{name: "malformed without cohort", feedErr: feed.ErrMalformed, existing: []domain.Market{}, wantSource: domain.MarketSourceFallback, wantPublished: 5, wantFeedError: true},
		{name: "unexpected error", feedErr: context.Canceled, wantErr: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.feed.On("FetchMarkets", mock.Anything, 10).Return(tt.feedMarkets, tt.feedErr)
			if tt.existing != nil {
				f.repo.On("GetCohort", mock.Anything, weekStart, fixedNow).Return(tt.existing, nil)
			}
			if tt.wantErr == nil {
				f.repo.On("UpsertMarkets", mock.Anything, mock.Anything).Return(upsertCount)
				f.bus.On("Publish", mock.Anything, eventOfType(event.CohortPublished)).Return(nil)
			}

			res, err := f.svc.Refresh(context.Background(), fixedNow)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				f.repo.AssertNotCalled(t, "UpsertMarkets", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, weekStart, res.WeekStart)
			assert.Equal(t, tt.wantSource, res.Source)
			assert.Equal(t, tt.wantPublished, res.Published)
			assert.Equal(t, tt.wantFeedError, res.FeedError != "")
		})
	}
}

func TestRefresh_ConfiguredFallback(t *testing.T) {
	repo := mocks.NewMockRepositoryMarket(t)
	marketFeed := mocks.NewMockFeed(t)
	bus := mocks.NewMockEventBus(t)
	demo := []feed.FallbackMarket{
		{Title: "Will the harbour freeze?", CloseInHours: 48, YesPrice: decimal.RequireFromString("0.1")},
	}
	svc := cohort.NewService(repo, scoring.NewEngine(scoring.DefaultConfig()), marketFeed, bus, cohort.Config{
		CohortSize: 10,
		Fallback:   demo,
		Now:        func() time.Time { return fixedNow },
	})

	marketFeed.On("FetchMarkets", mock.Anything, 10).Return(nil, feed.ErrUnavailable)
	var published []domain.Market
	repo.On("UpsertMarkets", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { published = args.Get(1).([]domain.Market) }).
		Return(upsertCount)
	bus.On("Publish", mock.Anything, eventOfType(event.CohortPublished)).Return(nil)

	res, err := svc.Refresh(context.Background(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Published)
	require.Len(t, published, 1)
	assert.Equal(t, feed.FallbackID(weekStart, "Will the harbour freeze?"), published[0].ID)
	assert.Equal(t, weekStart.Add(48*time.Hour), published[0].CloseTime)
	assert.Equal(t, weekStart, published[0].WeekStart)
}

func TestRefresh_FallbackPublishesFreshMarketsEachWeek(t *testing.T) {
	f := newFixture(t)
	f.feed.On("FetchMarkets", mock.Anything, 10).Return(nil, feed.ErrUnavailable)
	var batches [][]domain.Market
	f.repo.On("UpsertMarkets", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { batches = append(batches, args.Get(1).([]domain.Market)) }).
		Return(upsertCount)
	f.bus.On("Publish", mock.Anything, eventOfType(event.CohortPublished)).Return(nil)

	nextWeek := fixedNow.AddDate(0, 0, 7)
	_, err := f.svc.Refresh(context.Background(), fixedNow)
	require.NoError(t, err)
	_, err = f.svc.Refresh(context.Background(), fixedNow.Add(6*time.Hour))
	require.NoError(t, err)
	res, err := f.svc.Refresh(context.Background(), nextWeek)
	require.NoError(t, err)
	assert.Equal(t, weekStart.AddDate(0, 0, 7), res.WeekStart)

	require.Len(t, batches, 3)
	week1, again, week2 := batches[0], batches[1], batches[2]
	require.Len(t, week2, len(week1))

	firstIDs := map[string]bool{}
	for i, m := range week1 {
		firstIDs[m.ID] = true
		assert.Equal(t, m.ID, again[i].ID)
		assert.Equal(t, m.CloseTime, again[i].CloseTime)
	}
	for _, m := range week2 {
		assert.False(t, firstIDs[m.ID], "week 2 reuses week 1 id %s", m.ID)
		assert.Equal(t, weekStart.AddDate(0, 0, 7), m.WeekStart)
	}
}

func TestSyncResolutions(t *testing.T) {
	t.Run("resolves settled kalshi markets", func(t *testing.T) {
		f := newFixture(t)
		manual := openMarket("MAN")
		manual.Source = domain.MarketSourceManual
		f.repo.On("ListUnresolvedClosed", mock.Anything, fixedNow, cohort.DefaultSyncBatch).Return([]domain.Market{
			*openMarket("K1"), *manual, *openMarket("K2"), *openMarket("K3"),
		}, nil)

		yes, no := true, false
		f.feed.On("FetchOutcome", mock.Anything, "K1").Return(&yes, nil)
		f.feed.On("FetchOutcome", mock.Anything, "K2").Return(nil, nil)
		f.feed.On("FetchOutcome", mock.Anything, "K3").Return(&no, nil)

		tx1 := mocks.NewMockRepositorySettlementTx(t)
		tx1.On("GetMarketForUpdate", mock.Anything, "K1").Return(openMarket("K1"), nil)
		tx1.On("MarkResolved", mock.Anything, "K1", true, fixedNow).Return(nil)
		tx1.On("GetPredictionsForUpdate", mock.Anything, "K1").Return([]domain.Prediction{}, nil)
		tx1.On("Commit", mock.Anything).Return(nil)
		tx1.On("Rollback", mock.Anything).Return(nil)

		raced := openMarket("K3")
		raced.Resolution = &no
		tx2 := mocks.NewMockRepositorySettlementTx(t)
		tx2.On("GetMarketForUpdate", mock.Anything, "K3").Return(raced, nil)
		tx2.On("Rollback", mock.Anything).Return(nil)

		f.repo.On("BeginSettlement", mock.Anything).Return(tx1, nil).Once()
		f.repo.On("BeginSettlement", mock.Anything).Return(tx2, nil).Once()
		f.bus.On("Publish", mock.Anything, eventOfType(event.MarketResolved)).Return(nil).Once()

		n, err := f.svc.SyncResolutions(context.Background(), fixedNow)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		f.feed.AssertNotCalled(t, "FetchOutcome", mock.Anything, "MAN")
	})

	t.Run("stops when feed is unavailable", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("ListUnresolvedClosed", mock.Anything, fixedNow, cohort.DefaultSyncBatch).Return([]domain.Market{
			*openMarket("K1"), *openMarket("K2"),
		}, nil)
		f.feed.On("FetchOutcome", mock.Anything, "K1").Return(nil, feed.ErrUnavailable).Once()

		n, err := f.svc.SyncResolutions(context.Background(), fixedNow)
		assert.ErrorIs(t, err, feed.ErrUnavailable)
		assert.Zero(t, n)
		f.feed.AssertNotCalled(t, "FetchOutcome", mock.Anything, "K2")
	})
}
