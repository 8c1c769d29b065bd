package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/repository"
)

// StatsRepository implements repository.Stats for PostgreSQL
type StatsRepository struct {
	base
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(pool *pgxpool.Pool, timeout time.Duration) *StatsRepository {
	return &StatsRepository{base: newBase(pool, timeout)}
}

var _ repository.Stats = (*StatsRepository)(nil)

func (r *StatsRepository) queryEntries(ctx context.Context, sql string, args ...any) ([]domain.LeaderboardEntry, error) {
	ctx, cancel := r.bounded(ctx)
	defer cancel()

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetLeaderboard, err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LeaderboardEntry, error) {
		var e domain.LeaderboardEntry
		err := row.Scan(&e.UserID, &e.DisplayName, &e.TotalPoints, &e.PredictionsMade, &e.PredictionsCorrect)
		return e, err
	})
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetLeaderboard, err)
	}
	return entries, nil
}

// GetGlobalLeaderboard ranks all users on lifetime totals
func (r *StatsRepository) GetGlobalLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	return r.queryEntries(ctx, SQLGlobalLeaderboard, limit)
}

// GetLeagueLeaderboard ranks league members on predictions made in that league
func (r *StatsRepository) GetLeagueLeaderboard(ctx context.Context, leagueID int64, limit int) ([]domain.LeaderboardEntry, error) {
	return r.queryEntries(ctx, SQLLeagueLeaderboard, leagueID, limit)
}

// GetWeeklyLeaderboard ranks one week; the default league covers every league
func (r *StatsRepository) GetWeeklyLeaderboard(ctx context.Context, leagueID int64, weekStart time.Time, limit int) ([]domain.LeaderboardEntry, error) {
	return r.queryEntries(ctx, SQLWeeklyLeaderboard, weekStart, nullableLeague(leagueID), limit)
}

func (r *StatsRepository) GetWeekSummary(ctx context.Context, userID string, weekStart time.Time) (*domain.WeekSummary, error) {
	ctx, cancel := r.bounded(ctx)
	defer cancel()

	summary := &domain.WeekSummary{WeekStart: weekStart}
	if err := r.pool.QueryRow(ctx, SQLWeekPoints, userID, weekStart).Scan(&summary.Points); err != nil {
		return nil, wrapErr(ErrMsgFailedToGetWeekSummary, err)
	}
	if err := r.pool.QueryRow(ctx, SQLWeekCounts, userID, weekStart).
		Scan(&summary.PredictionsMade, &summary.PredictionsCorrect); err != nil {
		return nil, wrapErr(ErrMsgFailedToGetWeekSummary, err)
	}
	return summary, nil
}

func (r *StatsRepository) GetAchievements(ctx context.Context, userID string) ([]domain.Achievement, error) {
	ctx, cancel := r.bounded(ctx)
	defer cancel()

	rows, err := r.pool.Query(ctx, SQLGetAchievements, userID)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetAchievements, err)
	}
	achievements, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Achievement, error) {
		var a domain.Achievement
		if err := row.Scan(&a.Key, &a.AwardedAt); err != nil {
			return a, err
		}
		a.Name = domain.AchievementName(a.Key)
		return a, nil
	})
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetAchievements, err)
	}
	return achievements, nil
}

func (r *StatsRepository) CountUserLeagues(ctx context.Context, userID string) (int, error) {
	ctx, cancel := r.bounded(ctx)
	defer cancel()

	var count int
	if err := r.pool.QueryRow(ctx, SQLCountUserLeagues, userID).Scan(&count); err != nil {
		return 0, wrapErr(ErrMsgFailedToListLeagues, err)
	}
	return count, nil
}

func (r *StatsRepository) GetSystemStatus(ctx context.Context, now time.Time) (*domain.SystemStatus, error) {
	ctx, cancel := r.bounded(ctx)
	defer cancel()

	status := &domain.SystemStatus{WeekStart: domain.WeekStart(now)}
	err := r.pool.QueryRow(ctx, SQLSystemStatus, now).Scan(
		&status.Users, &status.Predictions, &status.OpenMarkets, &status.ResolvedMarkets, &status.Leagues)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetStatus, err)
	}
	return status, nil
}
