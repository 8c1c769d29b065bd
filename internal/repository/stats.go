package repository

import (
	"context"
	"time"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
)

// Stats defines the read side used by the leaderboard aggregator.
// Entries come back ordered but without rank or accuracy.
type Stats interface {
	GetGlobalLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
	GetLeagueLeaderboard(ctx context.Context, leagueID int64, limit int) ([]domain.LeaderboardEntry, error)
	GetWeeklyLeaderboard(ctx context.Context, leagueID int64, weekStart time.Time, limit int) ([]domain.LeaderboardEntry, error)
	GetWeekSummary(ctx context.Context, userID string, weekStart time.Time) (*domain.WeekSummary, error)
	GetAchievements(ctx context.Context, userID string) ([]domain.Achievement, error)
	CountUserLeagues(ctx context.Context, userID string) (int, error)
	GetSystemStatus(ctx context.Context, now time.Time) (*domain.SystemStatus, error)
}
