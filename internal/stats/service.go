package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/logger"
	"github.com/osse101/PredictionLeague_Go/internal/repository"
)

// Service defines the leaderboard aggregator
type Service interface {
	GetLeaderboard(ctx context.Context, leagueID int64, limit int) (*domain.Leaderboard, error)
	GetWeeklyLeaderboard(ctx context.Context, leagueID int64, weekStart time.Time, limit int) (*domain.Leaderboard, error)
	GetUserStats(ctx context.Context, userID string, now time.Time) (*domain.UserStats, error)
	GetSystemStatus(ctx context.Context, now time.Time) (*domain.SystemStatus, error)
}

// service implements the Service interface
type service struct {
	repo        repository.Stats
	users       repository.User
	leagues     repository.League
	predictions repository.Prediction
	recentLimit int
}

// NewService creates a new stats service
func NewService(repo repository.Stats, users repository.User, leagues repository.League, predictions repository.Prediction) Service {
	return &service{
		repo:        repo,
		users:       users,
		leagues:     leagues,
		predictions: predictions,
		recentLimit: domain.RecentPredictionsLimit,
	}
}

// GetLeaderboard ranks the league's all-time standings. The default league
// ranks every user by lifetime totals.
func (s *service) GetLeaderboard(ctx context.Context, leagueID int64, limit int) (*domain.Leaderboard, error) {
	leagueID, err := s.checkLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	limit = domain.ClampLeaderboardLimit(limit)

	var entries []domain.LeaderboardEntry
	if leagueID == domain.DefaultLeagueID {
		entries, err = s.repo.GetGlobalLeaderboard(ctx, limit)
	} else {
		entries, err = s.repo.GetLeagueLeaderboard(ctx, leagueID, limit)
	}
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug(LogMsgLeaderboardServed, "league_id", leagueID, "period", domain.PeriodAllTime, "entries", len(entries))
	return &domain.Leaderboard{
		LeagueID: leagueID,
		Period:   domain.PeriodAllTime,
		Entries:  Rank(entries),
	}, nil
}

func (s *service) GetWeeklyLeaderboard(ctx context.Context, leagueID int64, weekStart time.Time, limit int) (*domain.Leaderboard, error) {
	if err := domain.ValidateWeekStart(weekStart); err != nil {
		return nil, err
	}
	leagueID, err := s.checkLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	limit = domain.ClampLeaderboardLimit(limit)

	entries, err := s.repo.GetWeeklyLeaderboard(ctx, leagueID, weekStart.UTC(), limit)
	if err != nil {
		return nil, err
	}

	week := weekStart.UTC()
	return &domain.Leaderboard{
		LeagueID:  leagueID,
		Period:    domain.PeriodWeekly,
		WeekStart: &week,
		Entries:   Rank(entries),
	}, nil
}

func (s *service) GetUserStats(ctx context.Context, userID string, now time.Time) (*domain.UserStats, error) {
	log := logger.FromContext(ctx)

	u, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	weekStart := domain.WeekStart(now)
	week, err := s.repo.GetWeekSummary(ctx, userID, weekStart)
	if err != nil {
		log.Error(LogErrFailedToLoadStats, "error", err, "user_id", userID, "part", "week")
		return nil, err
	}
	recent, err := s.predictions.GetRecentPredictions(ctx, userID, s.recentLimit)
	if err != nil {
		log.Error(LogErrFailedToLoadStats, "error", err, "user_id", userID, "part", "recent")
		return nil, err
	}
	achievements, err := s.repo.GetAchievements(ctx, userID)
	if err != nil {
		log.Error(LogErrFailedToLoadStats, "error", err, "user_id", userID, "part", "achievements")
		return nil, err
	}
	leagues, err := s.repo.CountUserLeagues(ctx, userID)
	if err != nil {
		return nil, err
	}

	if recent == nil {
		recent = []domain.PredictionView{}
	}
	if achievements == nil {
		achievements = []domain.Achievement{}
	}
	return &domain.UserStats{
		UserID:             u.ID,
		DisplayName:        u.DisplayName,
		TotalPoints:        u.TotalPoints,
		PredictionsMade:    u.PredictionsMade,
		PredictionsCorrect: u.PredictionsCorrect,
		Accuracy:           u.Accuracy(),
		Streak:             u.Streak,
		LeagueCount:        leagues,
		CurrentWeek:        *week,
		Recent:             recent,
		Achievements:       achievements,
	}, nil
}

func (s *service) GetSystemStatus(ctx context.Context, now time.Time) (*domain.SystemStatus, error) {
	return s.repo.GetSystemStatus(ctx, now)
}

// checkLeague defaults the id and rejects unknown or inactive leagues
func (s *service) checkLeague(ctx context.Context, leagueID int64) (int64, error) {
	if leagueID <= 0 {
		return domain.DefaultLeagueID, nil
	}
	if leagueID == domain.DefaultLeagueID {
		return leagueID, nil
	}
	l, err := s.leagues.GetLeagueByID(ctx, leagueID)
	if err != nil {
		return 0, err
	}
	if !l.IsActive {
		return 0, fmt.Errorf("%w: league %d is inactive", domain.ErrLeagueNotFound, leagueID)
	}
	return leagueID, nil
}

// Rank assigns 1-based positions and accuracy to storage-ordered entries
func Rank(entries []domain.LeaderboardEntry) []domain.LeaderboardEntry {
	ranked := make([]domain.LeaderboardEntry, len(entries))
	for i, e := range entries {
		e.Rank = i + 1
		e.Accuracy = domain.Accuracy(e.PredictionsCorrect, e.PredictionsMade)
		ranked[i] = e
	}
	return ranked
}
