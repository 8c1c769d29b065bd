package stats_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/stats"
	"github.com/osse101/PredictionLeague_Go/mocks"
)

type fixture struct {
	repo        *mocks.MockRepositoryStats
	users       *mocks.MockRepositoryUser
	leagues     *mocks.MockRepositoryLeague
	predictions *mocks.MockRepositoryPrediction
	svc         stats.Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		repo:        mocks.NewMockRepositoryStats(t),
		users:       mocks.NewMockRepositoryUser(t),
		leagues:     mocks.NewMockRepositoryLeague(t),
		predictions: mocks.NewMockRepositoryPrediction(t),
	}
	f.svc = stats.NewService(f.repo, f.users, f.leagues, f.predictions)
	return f
}

func TestRank_AccuracyAndPositions(t *testing.T) {
	ranked := stats.Rank([]domain.LeaderboardEntry{
		{UserID: "a", TotalPoints: 30, PredictionsMade: 3, PredictionsCorrect: 2},
		{UserID: "b", TotalPoints: 10, PredictionsMade: 0, PredictionsCorrect: 0},
		{UserID: "c", TotalPoints: 10, PredictionsMade: 7, PredictionsCorrect: 1},
	})

	require.Len(t, ranked, 3)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 66.7, ranked[0].Accuracy)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Zero(t, ranked[1].Accuracy)
	assert.Equal(t, 14.3, ranked[2].Accuracy)
}

func TestGetLeaderboard(t *testing.T) {
	t.Run("default league uses lifetime totals and clamps limit", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("GetGlobalLeaderboard", mock.Anything, domain.MaxLeaderboardLimit).
			Return([]domain.LeaderboardEntry{{UserID: "a", TotalPoints: 5, PredictionsMade: 1, PredictionsCorrect: 1}}, nil)

		lb, err := f.svc.GetLeaderboard(context.Background(), 0, 1000)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultLeagueID, lb.LeagueID)
		assert.Equal(t, domain.PeriodAllTime, lb.Period)
		assert.Equal(t, 100.0, lb.Entries[0].Accuracy)
	})

	t.Run("custom league", func(t *testing.T) {
		f := newFixture(t)
		f.leagues.On("GetLeagueByID", mock.Anything, int64(4)).Return(&domain.League{ID: 4, IsActive: true}, nil)
		f.repo.On("GetLeagueLeaderboard", mock.Anything, int64(4), domain.DefaultLeaderboardLimit).
			Return([]domain.LeaderboardEntry{}, nil)

		lb, err := f.svc.GetLeaderboard(context.Background(), 4, 0)
		require.NoError(t, err)
		assert.Empty(t, lb.Entries)
	})

	t.Run("inactive league", func(t *testing.T) {
		f := newFixture(t)
		f.leagues.On("GetLeagueByID", mock.Anything, int64(4)).Return(&domain.League{ID: 4}, nil)

		_, err := f.svc.GetLeaderboard(context.Background(), 4, 10)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestGetWeeklyLeaderboard(t *testing.T) {
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	f := newFixture(t)
	f.repo.On("GetWeeklyLeaderboard", mock.Anything, domain.DefaultLeagueID, monday, 5).
		Return([]domain.LeaderboardEntry{{UserID: "a", TotalPoints: 13}}, nil)

	lb, err := f.svc.GetWeeklyLeaderboard(context.Background(), domain.DefaultLeagueID, monday, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.PeriodWeekly, lb.Period)
	require.NotNil(t, lb.WeekStart)
	assert.Equal(t, monday, *lb.WeekStart)
	assert.Equal(t, 1, lb.Entries[0].Rank)

	_, err = f.svc.GetWeeklyLeaderboard(context.Background(), domain.DefaultLeagueID, monday.AddDate(0, 0, 1), 5)
	assert.ErrorIs(t, err, domain.ErrDataInvalid)
}

func TestGetUserStats(t *testing.T) {
	now := time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	t.Run("assembles the view", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetUserByID", mock.Anything, "telegram:1").Return(&domain.User{
			ID: "telegram:1", DisplayName: "ann", TotalPoints: 28, PredictionsMade: 4, PredictionsCorrect: 3, Streak: 2,
		}, nil)
		f.repo.On("GetWeekSummary", mock.Anything, "telegram:1", monday).
			Return(&domain.WeekSummary{WeekStart: monday, Points: 13, PredictionsMade: 2, PredictionsCorrect: 1}, nil)
		f.predictions.On("GetRecentPredictions", mock.Anything, "telegram:1", domain.RecentPredictionsLimit).
			Return([]domain.PredictionView{{MarketID: "M", Status: domain.PredictionStatusPending}}, nil)
		f.repo.On("GetAchievements", mock.Anything, "telegram:1").Return(nil, nil)
		f.repo.On("CountUserLeagues", mock.Anything, "telegram:1").Return(2, nil)

		st, err := f.svc.GetUserStats(context.Background(), "telegram:1", now)
		require.NoError(t, err)
		assert.Equal(t, 75.0, st.Accuracy)
		assert.Equal(t, 13, st.CurrentWeek.Points)
		assert.Equal(t, 2, st.LeagueCount)
		assert.Len(t, st.Recent, 1)
		assert.NotNil(t, st.Achievements)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetUserByID", mock.Anything, "telegram:2").Return(nil, domain.ErrUserNotFound)

		_, err := f.svc.GetUserStats(context.Background(), "telegram:2", now)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
