package domain

import (
	"math"
	"time"
)

// Leaderboard periods
const (
	PeriodAllTime = "all_time"
	PeriodWeekly  = "weekly"
)

// Leaderboard limits
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// LeaderboardEntry is one ranked row of a leaderboard.
type LeaderboardEntry struct {
	Rank               int     `json:"rank"`
	UserID             string  `json:"user_id"`
	DisplayName        string  `json:"display_name"`
	TotalPoints        int     `json:"total_points"`
	PredictionsMade    int     `json:"predictions_made"`
	PredictionsCorrect int     `json:"predictions_correct"`
	Accuracy           float64 `json:"accuracy"`
}

// Leaderboard is a ranked list for one league and period.
type Leaderboard struct {
	LeagueID  int64              `json:"league_id"`
	Period    string             `json:"period"`
	WeekStart *time.Time         `json:"week_start,omitempty"`
	Entries   []LeaderboardEntry `json:"entries"`
}

// WeekSummary aggregates a user's activity in one cohort week.
type WeekSummary struct {
	WeekStart          time.Time `json:"week_start"`
	Points             int       `json:"points"`
	PredictionsMade    int       `json:"predictions_made"`
	PredictionsCorrect int       `json:"predictions_correct"`
}

// UserStats is the personal statistics view.
type UserStats struct {
	UserID             string           `json:"user_id"`
	DisplayName        string           `json:"display_name"`
	TotalPoints        int              `json:"total_points"`
	PredictionsMade    int              `json:"predictions_made"`
	PredictionsCorrect int              `json:"predictions_correct"`
	Accuracy           float64          `json:"accuracy"`
	Streak             int              `json:"streak"`
	LeagueCount        int              `json:"league_count"`
	CurrentWeek        WeekSummary      `json:"current_week"`
	Recent             []PredictionView `json:"recent"`
	Achievements       []Achievement    `json:"achievements"`
}

// SystemStatus is a snapshot of overall activity.
type SystemStatus struct {
	Users           int       `json:"users"`
	Predictions     int       `json:"predictions"`
	OpenMarkets     int       `json:"open_markets"`
	ResolvedMarkets int       `json:"resolved_markets"`
	Leagues         int       `json:"leagues"`
	WeekStart       time.Time `json:"week_start"`
}

// Accuracy returns correct/made as a percentage rounded to one decimal place.
// Zero predictions yield zero accuracy.
func Accuracy(correct, made int) float64 {
	if made <= 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(made)*1000) / 10
}

// ClampLeaderboardLimit applies the default and maximum leaderboard sizes.
func ClampLeaderboardLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLeaderboardLimit
	case limit > MaxLeaderboardLimit:
		return MaxLeaderboardLimit
	default:
		return limit
	}
}
