package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/repository"
)

// settlementTx implements repository.SettlementTx on a single pgx transaction
type settlementTx struct {
	tx      pgx.Tx
	timeout time.Duration
}

var _ repository.SettlementTx = (*settlementTx)(nil)

func (s *settlementTx) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *settlementTx) Commit(ctx context.Context) error {
	ctx, cancel := s.bounded(ctx)
	defer cancel()
	if err := s.tx.Commit(ctx); err != nil {
		return wrapErr(ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (s *settlementTx) Rollback(ctx context.Context) error {
	return s.tx.Rollback(ctx)
}

func (s *settlementTx) GetMarketForUpdate(ctx context.Context, marketID string) (*domain.Market, error) {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	m, err := scanMarket(s.tx.QueryRow(ctx, SQLGetMarketForUpdate, marketID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrMarketNotFound
	}
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToLockMarket, err)
	}
	return m, nil
}

func (s *settlementTx) MarkResolved(ctx context.Context, marketID string, outcome bool, at time.Time) error {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	tag, err := s.tx.Exec(ctx, SQLMarkResolved, marketID, outcome, at)
	if err != nil {
		return wrapErr(ErrMsgFailedToResolveMarket, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyResolved
	}
	return nil
}

func (s *settlementTx) GetPredictionsForUpdate(ctx context.Context, marketID string) ([]domain.Prediction, error) {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	rows, err := s.tx.Query(ctx, SQLGetPredictionsForUpdate, marketID)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetPredictions, err)
	}
	defer rows.Close()

	predictions := []domain.Prediction{}
	for rows.Next() {
		p, err := scanPrediction(rows)
		if err != nil {
			return nil, wrapErr(ErrMsgFailedToScanRow, err)
		}
		predictions = append(predictions, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(ErrMsgFailedToGetPredictions, err)
	}
	return predictions, nil
}

func (s *settlementTx) GetRecentOutcomes(ctx context.Context, userID string, offset, limit int) ([]bool, error) {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	rows, err := s.tx.Query(ctx, SQLGetRecentOutcomes, userID, limit, offset)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetOutcomes, err)
	}
	outcomes, err := pgx.CollectRows(rows, pgx.RowTo[bool])
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetOutcomes, err)
	}
	return outcomes, nil
}

func (s *settlementTx) ScorePrediction(ctx context.Context, predictionID int64, points int, correct bool, at time.Time) (bool, error) {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	tag, err := s.tx.Exec(ctx, SQLScorePrediction, predictionID, points, correct, at)
	if err != nil {
		return false, wrapErr(ErrMsgFailedToScorePrediction, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (s *settlementTx) ApplyUserScore(ctx context.Context, userID string, delta repository.UserScoreDelta) (*domain.User, error) {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	u, err := scanUser(s.tx.QueryRow(ctx, SQLApplyUserScore,
		userID, delta.Points, delta.CountWeekly, delta.Correct, delta.Streak))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToApplyUserScore, err)
	}
	return u, nil
}

func (s *settlementTx) AddWeeklyScore(ctx context.Context, userID string, leagueID int64, weekStart time.Time, points int) error {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	if _, err := s.tx.Exec(ctx, SQLAddWeeklyScore, userID, leagueID, weekStart, points); err != nil {
		return wrapErr(ErrMsgFailedToAddWeeklyScore, err)
	}
	return nil
}

func (s *settlementTx) AwardAchievement(ctx context.Context, userID, key string, at time.Time) (bool, error) {
	return awardAchievement(ctx, s.tx, s.timeout, userID, key, at)
}

// execer is satisfied by pgx.Tx and *pgxpool.Pool
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func awardAchievement(ctx context.Context, db execer, timeout time.Duration, userID, key string, at time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	tag, err := db.Exec(ctx, SQLAwardAchievement, userID, key, at)
	if err != nil {
		return false, wrapErr(ErrMsgFailedToAwardAchievement, err)
	}
	return tag.RowsAffected() == 1, nil
}
