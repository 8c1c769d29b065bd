package prediction_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/event"
	"github.com/osse101/PredictionLeague_Go/internal/prediction"
	"github.com/osse101/PredictionLeague_Go/internal/scoring"
	"github.com/osse101/PredictionLeague_Go/mocks"
)

var now = time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC)

type fixture struct {
	repo    *mocks.MockRepositoryPrediction
	markets *mocks.MockRepositoryMarket
	leagues *mocks.MockLeagueService
	bus     *mocks.MockEventBus
	svc     prediction.Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		repo:    mocks.NewMockRepositoryPrediction(t),
		markets: mocks.NewMockRepositoryMarket(t),
		leagues: mocks.NewMockLeagueService(t),
		bus:     mocks.NewMockEventBus(t),
	}
	f.svc = prediction.NewService(f.repo, f.markets, f.leagues, f.bus, scoring.DefaultConfig())
	return f
}

func market(id string, closeIn time.Duration, yes string) *domain.Market {
	y := decimal.RequireFromString(yes)
	return &domain.Market{
		ID:        id,
		Title:     "Question " + id,
		CloseTime: now.Add(closeIn),
		WeekStart: domain.WeekStart(now),
		YesPrice:  y,
		NoPrice:   decimal.NewFromInt(1).Sub(y),
	}
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     domain.SubmitPredictionRequest
		wantErr error
	}{
		{"missing user", domain.SubmitPredictionRequest{MarketID: "M"}, domain.ErrInvalidInput},
		{"missing market", domain.SubmitPredictionRequest{UserID: "telegram:1"}, domain.ErrInvalidInput},
		{"confidence too high", domain.SubmitPredictionRequest{UserID: "telegram:1", MarketID: "M", Confidence: 101}, domain.ErrInvalidConfidence},
		{"confidence negative", domain.SubmitPredictionRequest{UserID: "telegram:1", MarketID: "M", Confidence: -5}, domain.ErrInvalidConfidence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.svc.Submit(context.Background(), tt.req, now)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubmit_ClosedMarkets(t *testing.T) {
	yes := true
	resolved := market("R", time.Hour, "0.5")
	resolved.Resolution = &yes

	tests := []struct {
		name   string
		market *domain.Market
	}{
		{"past close", market("P", -time.Minute, "0.5")},
		{"closing exactly now", market("N", 0, "0.5")},
		{"resolved", resolved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.markets.On("GetMarket", mock.Anything, tt.market.ID).Return(tt.market, nil)

			_, err := f.svc.Submit(context.Background(), domain.SubmitPredictionRequest{
				UserID: "telegram:1", MarketID: tt.market.ID, Choice: true,
			}, now)
			assert.ErrorIs(t, err, domain.ErrMarketClosed)
			f.repo.AssertNotCalled(t, "UpsertPrediction", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSubmit_UnknownMarket(t *testing.T) {
	f := newFixture(t)
	f.markets.On("GetMarket", mock.Anything, "nope").Return(nil, domain.ErrMarketNotFound)

	_, err := f.svc.Submit(context.Background(), domain.SubmitPredictionRequest{UserID: "telegram:1", MarketID: "nope"}, now)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubmit_RequiresMembership(t *testing.T) {
	f := newFixture(t)
	f.markets.On("GetMarket", mock.Anything, "M").Return(market("M", 48*time.Hour, "0.5"), nil)
	f.leagues.On("RequireMember", mock.Anything, int64(7), "telegram:1").
		Return(nil, fmt.Errorf("%w: league 7", domain.ErrNotLeagueMember))

	_, err := f.svc.Submit(context.Background(), domain.SubmitPredictionRequest{
		UserID: "telegram:1", MarketID: "M", LeagueID: 7, Choice: false,
	}, now)
	assert.ErrorIs(t, err, domain.ErrNotLeagueMember)
}

func TestSubmit_DerivesFlagsAndDefaults(t *testing.T) {
	tests := []struct {
		name           string
		closeIn        time.Duration
		yes            string
		choice         bool
		wantOdds       string
		wantContrarian bool
		wantEarlyBird  bool
	}{
		{"favourite late", 2 * time.Hour, "0.65", true, "0.65", false, false},
		{"underdog early", 48 * time.Hour, "0.8", false, "0.2", true, true},
		{"exactly at threshold", 48 * time.Hour, "0.7", false, "0.3", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.markets.On("GetMarket", mock.Anything, "M").Return(market("M", tt.closeIn, tt.yes), nil)
			f.leagues.On("RequireMember", mock.Anything, domain.DefaultLeagueID, "telegram:1").
				Return(&domain.League{ID: domain.DefaultLeagueID, IsActive: true}, nil)

			var stored *domain.Prediction
			f.repo.On("UpsertPrediction", mock.Anything, mock.Anything, now).
				Run(func(args mock.Arguments) {
					stored = args.Get(1).(*domain.Prediction)
					stored.ID = 42
				}).
				Return(true, nil)
			f.bus.On("Publish", mock.Anything, mock.MatchedBy(func(e event.Event) bool {
				return e.Type == event.PredictionSubmitted
			})).Return(nil)

			p, err := f.svc.Submit(context.Background(), domain.SubmitPredictionRequest{
				UserID: " telegram:1 ", MarketID: "M", Choice: tt.choice,
			}, now)
			require.NoError(t, err)
			require.Same(t, stored, p)

			assert.Equal(t, int64(42), p.ID)
			assert.Equal(t, "telegram:1", p.UserID)
			assert.Equal(t, domain.DefaultLeagueID, p.LeagueID)
			assert.Equal(t, domain.ConfidenceNeutral, p.Confidence)
			assert.True(t, decimal.RequireFromString(tt.wantOdds).Equal(p.OddsAtPrediction), "odds %s", p.OddsAtPrediction)
			assert.Equal(t, tt.wantContrarian, p.IsContrarian)
			assert.Equal(t, tt.wantEarlyBird, p.IsEarlyBird)
		})
	}
}

func TestSubmit_StorageRaceClosedMarket(t *testing.T) {
	f := newFixture(t)
	f.markets.On("GetMarket", mock.Anything, "M").Return(market("M", time.Hour, "0.5"), nil)
	f.leagues.On("RequireMember", mock.Anything, domain.DefaultLeagueID, "telegram:1").
		Return(&domain.League{ID: domain.DefaultLeagueID, IsActive: true}, nil)
	f.repo.On("UpsertPrediction", mock.Anything, mock.Anything, now).Return(false, domain.ErrMarketClosed)

	_, err := f.svc.Submit(context.Background(), domain.SubmitPredictionRequest{UserID: "telegram:1", MarketID: "M", Confidence: 80}, now)
	assert.ErrorIs(t, err, domain.ErrMarketClosed)
	f.bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestGetUserPredictions(t *testing.T) {
	f := newFixture(t)
	ids := []string{"A", "B"}
	f.repo.On("GetUserPredictions", mock.Anything, "telegram:1", (*int64)(nil), ids).Return(map[string]bool{"A": true}, nil)
	leagueOne := domain.DefaultLeagueID
	f.repo.On("GetUserPredictions", mock.Anything, "telegram:1", &leagueOne, ids).Return(map[string]bool{"B": false}, nil)

	all, err := f.svc.GetUserPredictions(context.Background(), "telegram:1", ids)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"A": true}, all)

	scoped, err := f.svc.GetUserLeaguePredictions(context.Background(), "telegram:1", 0, ids)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"B": false}, scoped)
}
