// Package app assembles the league services behind the single surface used
// by the chat dispatcher and the HTTP API.
package app

import (
	"context"
	"time"

	"github.com/osse101/PredictionLeague_Go/internal/chat"
	"github.com/osse101/PredictionLeague_Go/internal/cohort"
	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/league"
	"github.com/osse101/PredictionLeague_Go/internal/prediction"
	"github.com/osse101/PredictionLeague_Go/internal/stats"
	"github.com/osse101/PredictionLeague_Go/internal/user"
)

// Core implements chat.Core in process. Operations that depend on the
// current time read it from the core's clock.
type Core struct {
	Users       user.Service
	Leagues     league.Service
	Cohorts     cohort.Service
	Predictions prediction.Service
	Stats       stats.Service

	now func() time.Time
}

var _ chat.Core = (*Core)(nil)

// NewCore creates the facade. A nil clock uses time.Now.
func NewCore(users user.Service, leagues league.Service, cohorts cohort.Service, predictions prediction.Service, statsSvc stats.Service, now func() time.Time) *Core {
	if now == nil {
		now = time.Now
	}
	return &Core{
		Users:       users,
		Leagues:     leagues,
		Cohorts:     cohorts,
		Predictions: predictions,
		Stats:       statsSvc,
		now:         now,
	}
}

// Now returns the core's current time in UTC
func (c *Core) Now() time.Time {
	return c.now().UTC()
}

func (c *Core) RegisterUser(ctx context.Context, platform, platformUserID, displayName string) (*domain.User, error) {
	return c.Users.RegisterUser(ctx, platform, platformUserID, displayName)
}

func (c *Core) GetCurrentCohort(ctx context.Context) ([]domain.Market, error) {
	return c.Cohorts.GetCurrentCohort(ctx)
}

func (c *Core) GetUserLeaguePredictions(ctx context.Context, userID string, leagueID int64, marketIDs []string) (map[string]bool, error) {
	return c.Predictions.GetUserLeaguePredictions(ctx, userID, leagueID, marketIDs)
}

func (c *Core) SubmitPrediction(ctx context.Context, req domain.SubmitPredictionRequest) (*domain.Prediction, error) {
	return c.Predictions.Submit(ctx, req, c.Now())
}

func (c *Core) GetLeaderboard(ctx context.Context, leagueID int64, limit int) (*domain.Leaderboard, error) {
	return c.Stats.GetLeaderboard(ctx, leagueID, limit)
}

// GetWeeklyLeaderboard ranks the week containing the core's current time
func (c *Core) GetWeeklyLeaderboard(ctx context.Context, leagueID int64, limit int) (*domain.Leaderboard, error) {
	return c.Stats.GetWeeklyLeaderboard(ctx, leagueID, domain.WeekStart(c.Now()), limit)
}

func (c *Core) GetUserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	return c.Stats.GetUserStats(ctx, userID, c.Now())
}

func (c *Core) GetLeague(ctx context.Context, ref domain.LeagueRef) (*domain.League, error) {
	return c.Leagues.GetLeague(ctx, ref)
}

func (c *Core) ListUserLeagues(ctx context.Context, userID string) ([]domain.League, error) {
	return c.Leagues.ListUserLeagues(ctx, userID)
}

func (c *Core) CreateLeague(ctx context.Context, name, creatorID string) (*domain.League, error) {
	return c.Leagues.CreateLeague(ctx, name, creatorID)
}

func (c *Core) JoinLeague(ctx context.Context, userID string, ref domain.LeagueRef) (*domain.League, bool, error) {
	return c.Leagues.JoinLeague(ctx, userID, ref)
}

func (c *Core) GetSystemStatus(ctx context.Context) (*domain.SystemStatus, error) {
	return c.Stats.GetSystemStatus(ctx, c.Now())
}
