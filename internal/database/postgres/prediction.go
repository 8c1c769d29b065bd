package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/repository"
)

// PredictionRepository implements repository.Prediction for PostgreSQL
type PredictionRepository struct {
	base
}

// NewPredictionRepository creates a new PredictionRepository
func NewPredictionRepository(pool *pgxpool.Pool, timeout time.Duration) *PredictionRepository {
	return &PredictionRepository{base: newBase(pool, timeout)}
}

var _ repository.Prediction = (*PredictionRepository)(nil)

func scanPrediction(row pgx.Row) (*domain.Prediction, error) {
	var p domain.Prediction
	var odds string
	if err := row.Scan(&p.ID, &p.UserID, &p.MarketID, &p.LeagueID, &p.Choice, &p.Confidence,
		&odds, &p.IsContrarian, &p.IsEarlyBird, &p.PointsEarned, &p.IsCorrect,
		&p.ScoredAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	d, err := parseDecimal(odds)
	if err != nil {
		return nil, err
	}
	p.OddsAtPrediction = d
	return &p, nil
}

// UpsertPrediction stores the prediction while the market row is share-locked,
// so a concurrent resolution either sees it or rejects it.
func (r *PredictionRepository) UpsertPrediction(ctx context.Context, p *domain.Prediction, now time.Time) (bool, error) {
	ctx, cancel := r.bounded(ctx)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, wrapErr(ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	var closeTime time.Time
	var resolved bool
	err = tx.QueryRow(ctx, SQLLockMarketForShare, p.MarketID).Scan(&closeTime, &resolved)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, domain.ErrMarketNotFound
	}
	if err != nil {
		return false, wrapErr(ErrMsgFailedToLockMarket, err)
	}
	if resolved || !closeTime.After(now) {
		return false, domain.ErrMarketClosed
	}

	var inserted bool
	err = tx.QueryRow(ctx, SQLUpsertPrediction,
		p.UserID, p.MarketID, p.LeagueID, p.Choice, p.Confidence,
		p.OddsAtPrediction.String(), p.IsContrarian, p.IsEarlyBird, now,
	).Scan(&inserted, &p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isCheckViolation(err) {
			return false, domain.ErrInvalidConfidence
		}
		return false, wrapErr(ErrMsgFailedToUpsertPred, err)
	}

	if inserted {
		var made int
		if err := tx.QueryRow(ctx, SQLIncrementPredictionsMade, p.UserID).Scan(&made); err != nil {
			return false, wrapErr(ErrMsgFailedToIncrementMade, err)
		}
		if made == 1 {
			if _, err := awardAchievement(ctx, tx, r.timeout, p.UserID, domain.AchievementFirstPrediction, now); err != nil {
				return false, err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, wrapErr(ErrMsgFailedToCommitTransaction, err)
	}
	return inserted, nil
}

// GetUserPredictions maps market id to the user's latest choice
func (r *PredictionRepository) GetUserPredictions(ctx context.Context, userID string, leagueID *int64, marketIDs []string) (map[string]bool, error) {
	result := make(map[string]bool, len(marketIDs))
	if len(marketIDs) == 0 {
		return result, nil
	}

	ctx, cancel := r.bounded(ctx)
	defer cancel()

	rows, err := r.pool.Query(ctx, SQLGetUserPredictions, userID, marketIDs, leagueID)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetPredictions, err)
	}
	defer rows.Close()

	for rows.Next() {
		var marketID string
		var choice bool
		if err := rows.Scan(&marketID, &choice); err != nil {
			return nil, wrapErr(ErrMsgFailedToScanRow, err)
		}
		result[marketID] = choice
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(ErrMsgFailedToGetPredictions, err)
	}
	return result, nil
}

// GetRecentPredictions returns the user's latest predictions with market titles
func (r *PredictionRepository) GetRecentPredictions(ctx context.Context, userID string, limit int) ([]domain.PredictionView, error) {
	ctx, cancel := r.bounded(ctx)
	defer cancel()

	rows, err := r.pool.Query(ctx, SQLGetRecentPredictions, userID, limit)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetPredictions, err)
	}
	defer rows.Close()

	views := []domain.PredictionView{}
	for rows.Next() {
		var v domain.PredictionView
		var isCorrect *bool
		var scoredAt *time.Time
		if err := rows.Scan(&v.MarketID, &v.MarketTitle, &v.LeagueID, &v.Choice, &isCorrect,
			&scoredAt, &v.PointsEarned, &v.CreatedAt); err != nil {
			return nil, wrapErr(ErrMsgFailedToScanRow, err)
		}
		v.Status = domain.Prediction{IsCorrect: isCorrect, ScoredAt: scoredAt}.Status()
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(ErrMsgFailedToGetPredictions, err)
	}
	return views, nil
}
