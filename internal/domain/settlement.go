package domain

import "time"

// ScoredPrediction is the outcome of scoring a single prediction.
type ScoredPrediction struct {
	PredictionID int64  `json:"prediction_id"`
	UserID       string `json:"user_id"`
	LeagueID     int64  `json:"league_id"`
	Correct      bool   `json:"correct"`
	Points       int    `json:"points"`
	Streak       int    `json:"streak"`
}

// SettlementResult summarizes a market resolution.
type SettlementResult struct {
	MarketID      string             `json:"market_id"`
	Outcome       bool               `json:"outcome"`
	ResolvedAt    time.Time          `json:"resolved_at"`
	Scored        int                `json:"scored"`
	Correct       int                `json:"correct"`
	Incorrect     int                `json:"incorrect"`
	Skipped       int                `json:"skipped"`
	PointsAwarded int                `json:"points_awarded"`
	Achievements  []AchievementAward `json:"achievements,omitempty"`
	Predictions   []ScoredPrediction `json:"predictions"`
}

// RefreshResult summarizes a cohort refresh from the market feed.
type RefreshResult struct {
	WeekStart time.Time `json:"week_start"`
	Source    string    `json:"source"`
	Published int       `json:"published"`
	FeedError string    `json:"feed_error,omitempty"`
}
