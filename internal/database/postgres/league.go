package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/repository"
)

// LeagueRepository implements repository.League for PostgreSQL
type LeagueRepository struct {
	base
}

// NewLeagueRepository creates a new LeagueRepository
func NewLeagueRepository(pool *pgxpool.Pool, timeout time.Duration) *LeagueRepository {
	return &LeagueRepository{base: newBase(pool, timeout)}
}

var _ repository.League = (*LeagueRepository)(nil)

func scanLeague(row pgx.Row) (*domain.League, error) {
	var l domain.League
	if err := row.Scan(&l.ID, &l.Name, &l.NameKey, &l.CreatorID, &l.IsActive,
		&l.MaxMembers, &l.CreatedAt, &l.MemberCount); err != nil {
		return nil, err
	}
	return &l, nil
}

// CreateLeague inserts the league and the creator's membership
func (r *LeagueRepository) CreateLeague(ctx context.Context, league *domain.League) error {
	ctx, cancel := r.bounded(ctx)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return wrapErr(ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	err = tx.QueryRow(ctx, SQLInsertLeague, league.Name, league.NameKey, league.CreatorID, league.MaxMembers).
		Scan(&league.ID, &league.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateName, league.Name)
	}
	if err != nil {
		return wrapErr(ErrMsgFailedToInsertLeague, err)
	}

	if _, err := tx.Exec(ctx, SQLInsertMember, league.ID, league.CreatorID); err != nil {
		return wrapErr(ErrMsgFailedToInsertMember, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return wrapErr(ErrMsgFailedToCommitTransaction, err)
	}

	league.IsActive = true
	league.MemberCount = 1
	return nil
}

// GetLeagueByID returns the league or domain.ErrLeagueNotFound
func (r *LeagueRepository) GetLeagueByID(ctx context.Context, leagueID int64) (*domain.League, error) {
	return r.getLeague(ctx, SQLGetLeagueByID, leagueID)
}

// GetLeagueByNameKey looks a league up by its case-folded name
func (r *LeagueRepository) GetLeagueByNameKey(ctx context.Context, nameKey string) (*domain.League, error) {
	return r.getLeague(ctx, SQLGetLeagueByNameKey, nameKey)
}

func (r *LeagueRepository) getLeague(ctx context.Context, query string, arg any) (*domain.League, error) {
	ctx, cancel := r.bounded(ctx)
	defer cancel()

	l, err := scanLeague(r.pool.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrLeagueNotFound
	}
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetLeague, err)
	}
	return l, nil
}

// AddMember joins a user to a league under a row lock on the league
func (r *LeagueRepository) AddMember(ctx context.Context, leagueID int64, userID string) (bool, error) {
	ctx, cancel := r.bounded(ctx)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, wrapErr(ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	var active bool
	var maxMembers int
	err = tx.QueryRow(ctx, SQLLockLeague, leagueID).Scan(&active, &maxMembers)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, domain.ErrLeagueNotFound
	}
	if err != nil {
		return false, wrapErr(ErrMsgFailedToLockLeague, err)
	}
	if !active {
		return false, domain.ErrLeagueNotFound
	}

	var member bool
	if err := tx.QueryRow(ctx, SQLIsMember, leagueID, userID).Scan(&member); err != nil {
		return false, wrapErr(ErrMsgFailedToCheckMembership, err)
	}
	if member {
		return false, nil
	}

	if maxMembers > 0 {
		var count int
		if err := tx.QueryRow(ctx, SQLCountMembers, leagueID).Scan(&count); err != nil {
			return false, wrapErr(ErrMsgFailedToCountMembers, err)
		}
		if count >= maxMembers {
			return false, fmt.Errorf("%w: %d/%d members", domain.ErrCapacity, count, maxMembers)
		}
	}

	tag, err := tx.Exec(ctx, SQLInsertMember, leagueID, userID)
	if err != nil {
		return false, wrapErr(ErrMsgFailedToInsertMember, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, wrapErr(ErrMsgFailedToCommitTransaction, err)
	}
	return tag.RowsAffected() == 1, nil
}

// IsMember reports whether the user belongs to the league
func (r *LeagueRepository) IsMember(ctx context.Context, leagueID int64, userID string) (bool, error) {
	ctx, cancel := r.bounded(ctx)
	defer cancel()

	var member bool
	if err := r.pool.QueryRow(ctx, SQLIsMember, leagueID, userID).Scan(&member); err != nil {
		return false, wrapErr(ErrMsgFailedToCheckMembership, err)
	}
	return member, nil
}

// ListUserLeagues returns the user's leagues ordered by id
func (r *LeagueRepository) ListUserLeagues(ctx context.Context, userID string) ([]domain.League, error) {
	ctx, cancel := r.bounded(ctx)
	defer cancel()

	rows, err := r.pool.Query(ctx, SQLListUserLeagues, userID)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListLeagues, err)
	}
	defer rows.Close()

	leagues := []domain.League{}
	for rows.Next() {
		l, err := scanLeague(rows)
		if err != nil {
			return nil, wrapErr(ErrMsgFailedToScanRow, err)
		}
		leagues = append(leagues, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(ErrMsgFailedToListLeagues, err)
	}
	return leagues, nil
}
