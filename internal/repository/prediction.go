package repository

import (
	"context"
	"time"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
)

// Prediction defines the interface for the prediction ledger
type Prediction interface {
	// UpsertPrediction inserts or replaces the (user, market, league) row while
	// holding a share lock on the market, rejecting closed or resolved markets.
	// On first insert it increments predictions_made. Reports whether a row was inserted.
	UpsertPrediction(ctx context.Context, p *domain.Prediction, now time.Time) (bool, error)
	// GetUserPredictions returns the latest choice per market; leagueID nil means any league.
	GetUserPredictions(ctx context.Context, userID string, leagueID *int64, marketIDs []string) (map[string]bool, error)
	GetRecentPredictions(ctx context.Context, userID string, limit int) ([]domain.PredictionView, error)
}
