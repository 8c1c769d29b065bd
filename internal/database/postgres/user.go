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

// UserRepository implements repository.User for PostgreSQL
type UserRepository struct {
	base
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool, timeout time.Duration) *UserRepository {
	return &UserRepository{base: newBase(pool, timeout)}
}

var _ repository.User = (*UserRepository)(nil)

func scanUser(row pgx.Row, dest ...any) (*domain.User, error) {
	var u domain.User
	targets := append(dest,
		&u.ID, &u.Platform, &u.DisplayName, &u.TotalPoints, &u.WeeklyPoints,
		&u.PredictionsMade, &u.PredictionsCorrect, &u.Streak, &u.CreatedAt, &u.UpdatedAt)
	if err := row.Scan(targets...); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpsertUser creates the user with default league membership or refreshes the display name
func (r *UserRepository) UpsertUser(ctx context.Context, user *domain.User) (bool, error) {
	ctx, cancel := r.bounded(ctx)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, wrapErr(ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	var inserted bool
	stored, err := scanUser(tx.QueryRow(ctx, SQLUpsertUser, user.ID, user.Platform, user.DisplayName), &inserted)
	if err != nil {
		return false, wrapErr(ErrMsgFailedToUpsertUser, err)
	}

	if inserted {
		if _, err := tx.Exec(ctx, SQLInsertMember, domain.DefaultLeagueID, user.ID); err != nil {
			return false, wrapErr(ErrMsgFailedToJoinDefault, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, wrapErr(ErrMsgFailedToCommitTransaction, err)
	}

	*user = *stored
	return inserted, nil
}

// GetUserByID returns the user or domain.ErrUserNotFound
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	ctx, cancel := r.bounded(ctx)
	defer cancel()

	u, err := scanUser(r.pool.QueryRow(ctx, SQLGetUser, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetUser, err)
	}
	return u, nil
}

// ResetWeeklyPoints zeroes weekly points for all users and reports how many changed
func (r *UserRepository) ResetWeeklyPoints(ctx context.Context) (int64, error) {
	ctx, cancel := r.bounded(ctx)
	defer cancel()

	tag, err := r.pool.Exec(ctx, SQLResetWeeklyPoints)
	if err != nil {
		return 0, wrapErr(ErrMsgFailedToResetWeekly, err)
	}
	return tag.RowsAffected(), nil
}
