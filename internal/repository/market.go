package repository

import (
	"context"
	"time"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
)

// Market defines the interface for the market cohort store
type Market interface {
	// UpsertMarkets writes the whole batch in one transaction. Existing rows
	// keep their week_start and resolution.
	UpsertMarkets(ctx context.Context, markets []domain.Market) (int, error)
	GetMarket(ctx context.Context, marketID string) (*domain.Market, error)
	GetCohort(ctx context.Context, weekStart, now time.Time) ([]domain.Market, error)
	ListUnresolvedClosed(ctx context.Context, now time.Time, limit int) ([]domain.Market, error)
	BeginSettlement(ctx context.Context) (SettlementTx, error)
}

// UserScoreDelta is applied to a user's aggregates for one scored prediction.
type UserScoreDelta struct {
	Points      int
	Correct     bool
	Streak      int
	CountWeekly bool
}

// SettlementTx resolves a market and scores its predictions atomically.
type SettlementTx interface {
	Tx
	GetMarketForUpdate(ctx context.Context, marketID string) (*domain.Market, error)
	MarkResolved(ctx context.Context, marketID string, outcome bool, at time.Time) error
	GetPredictionsForUpdate(ctx context.Context, marketID string) ([]domain.Prediction, error)
	// GetRecentOutcomes returns one page of the user's scored outcomes, newest first.
	GetRecentOutcomes(ctx context.Context, userID string, offset, limit int) ([]bool, error)
	// ScorePrediction writes the score once. Returns false if it was already scored.
	ScorePrediction(ctx context.Context, predictionID int64, points int, correct bool, at time.Time) (bool, error)
	ApplyUserScore(ctx context.Context, userID string, delta UserScoreDelta) (*domain.User, error)
	AddWeeklyScore(ctx context.Context, userID string, leagueID int64, weekStart time.Time, points int) error
	AwardAchievement(ctx context.Context, userID, key string, at time.Time) (bool, error)
}
