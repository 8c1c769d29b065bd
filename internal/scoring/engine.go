package scoring

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/logger"
	"github.com/osse101/PredictionLeague_Go/internal/repository"
)

// Engine settles resolved markets using a fixed policy.
type Engine struct {
	cfg Config
}

// NewEngine creates a scoring engine
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine's policy
func (e *Engine) Config() Config {
	return e.cfg
}

// Settle scores every pending prediction on market inside tx. The caller owns
// the transaction and must already hold the market row lock; nothing becomes
// visible until the caller commits.
func (e *Engine) Settle(ctx context.Context, tx repository.SettlementTx, market *domain.Market, outcome bool, at time.Time) (*domain.SettlementResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSettlementStarted, "market_id", market.ID, "outcome", outcome)

	result := &domain.SettlementResult{
		MarketID:    market.ID,
		Outcome:     outcome,
		ResolvedAt:  at,
		Predictions: []domain.ScoredPrediction{},
	}

	predictions, err := tx.GetPredictionsForUpdate(ctx, market.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load predictions for market %s: %w", market.ID, err)
	}
	if len(predictions) == 0 {
		log.Info(LogMsgSettlementNoop, "market_id", market.ID)
		return result, nil
	}

	countWeekly := market.WeekStart.Equal(domain.WeekStart(at))

	for i := range predictions {
		p := &predictions[i]
		if p.IsScored() {
			log.Warn(LogMsgAlreadyScored, "prediction_id", p.ID)
			result.Skipped++
			continue
		}

		scored, err := e.settleOne(ctx, tx, market, p, outcome, countWeekly, at, result)
		if err != nil {
			return nil, err
		}
		if !scored {
			log.Warn(LogMsgAlreadyScored, "prediction_id", p.ID)
			result.Skipped++
		}
	}

	log.Info(LogMsgSettlementCompleted,
		"market_id", market.ID,
		"scored", result.Scored,
		"correct", result.Correct,
		"incorrect", result.Incorrect,
		"points", result.PointsAwarded)
	return result, nil
}

// priorStreak counts the user's consecutive correct scored predictions,
// newest first, reading the history a page at a time until the first miss.
func (e *Engine) priorStreak(ctx context.Context, tx repository.SettlementTx, userID string) (int, error) {
	streak := 0
	for offset := 0; ; offset += e.cfg.StreakPageSize {
		page, err := tx.GetRecentOutcomes(ctx, userID, offset, e.cfg.StreakPageSize)
		if err != nil {
			return 0, err
		}
		run := StreakFromHistory(page)
		streak += run
		if run < len(page) || len(page) < e.cfg.StreakPageSize {
			return streak, nil
		}
	}
}

func (e *Engine) settleOne(ctx context.Context, tx repository.SettlementTx, market *domain.Market, p *domain.Prediction, outcome, countWeekly bool, at time.Time, result *domain.SettlementResult) (bool, error) {
	streak := 0
	if p.Choice == outcome {
		prior, err := e.priorStreak(ctx, tx, p.UserID)
		if err != nil {
			return false, fmt.Errorf("failed to load streak for user %s: %w", p.UserID, err)
		}
		streak = prior + 1
	}

	score := ComputeScore(Input{
		Choice:       p.Choice,
		Outcome:      outcome,
		IsContrarian: p.IsContrarian,
		IsEarlyBird:  p.IsEarlyBird,
		Streak:       streak,
	}, e.cfg)

	written, err := tx.ScorePrediction(ctx, p.ID, score.Points, score.Correct, at)
	if err != nil {
		return false, fmt.Errorf("failed to score prediction %d: %w", p.ID, err)
	}
	if !written {
		return false, nil
	}

	user, err := tx.ApplyUserScore(ctx, p.UserID, repository.UserScoreDelta{
		Points:      score.Points,
		Correct:     score.Correct,
		Streak:      score.Streak,
		CountWeekly: countWeekly,
	})
	if err != nil {
		return false, fmt.Errorf("failed to update user %s: %w", p.UserID, err)
	}

	if err := tx.AddWeeklyScore(ctx, p.UserID, p.LeagueID, market.WeekStart, score.Points); err != nil {
		return false, fmt.Errorf("failed to update weekly score for user %s: %w", p.UserID, err)
	}

	for _, key := range earnedAchievements(user, p, score) {
		granted, err := tx.AwardAchievement(ctx, p.UserID, key, at)
		if err != nil {
			return false, fmt.Errorf("failed to award %s to user %s: %w", key, p.UserID, err)
		}
		if granted {
			logger.FromContext(ctx).Info(LogMsgAchievementAwarded, "user_id", p.UserID, "achievement", key)
			result.Achievements = append(result.Achievements, domain.AchievementAward{UserID: p.UserID, Key: key})
		}
	}

	result.Scored++
	result.PointsAwarded += score.Points
	if score.Correct {
		result.Correct++
	} else {
		result.Incorrect++
	}
	result.Predictions = append(result.Predictions, domain.ScoredPrediction{
		PredictionID: p.ID,
		UserID:       p.UserID,
		LeagueID:     p.LeagueID,
		Correct:      score.Correct,
		Points:       score.Points,
		Streak:       score.Streak,
	})
	return true, nil
}

// earnedAchievements lists the settlement-time achievements the user now qualifies for.
// Already-held ones are filtered by storage.
func earnedAchievements(user *domain.User, p *domain.Prediction, score Score) []string {
	var keys []string
	if user.TotalPoints >= domain.CenturyClubPoints {
		keys = append(keys, domain.AchievementCenturyClub)
	}
	if user.Streak >= domain.HotStreakThreshold {
		keys = append(keys, domain.AchievementHotStreak)
	}
	if score.Correct && p.IsContrarian {
		keys = append(keys, domain.AchievementContrarianGenius)
	}
	return keys
}
