package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// base carries the pool and the per-operation deadline shared by every repository.
type base struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func newBase(pool *pgxpool.Pool, timeout time.Duration) base {
	if timeout <= 0 {
		timeout = domain.DefaultQueryTimeout
	}
	return base{pool: pool, timeout: timeout}
}

// bounded derives a context that expires after the storage timeout.
func (b base) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, b.timeout)
}

// wrapErr attaches msg to err. Deadline failures map to
// domain.ErrStorageTimeout and foreign key violations to the not-found error
// of the missing row.
func wrapErr(msg string, err error) error {
	if isTimeout(err) {
		return fmt.Errorf("%s: %w: %v", msg, domain.ErrStorageTimeout, err)
	}
	if missing := foreignKeyTarget(err); missing != nil {
		return fmt.Errorf("%s: %w: %v", msg, missing, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// foreignKeyTarget names the entity a 23503 error points at, using the
// default <table>_<column>_fkey constraint names. It returns nil for other errors.
func foreignKeyTarget(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != PgErrorCodeForeignKeyViolation {
		return nil
	}
	switch c := pgErr.ConstraintName; {
	case strings.Contains(c, "_user_id_"), strings.Contains(c, "_creator_id_"):
		return domain.ErrUserNotFound
	case strings.Contains(c, "_market_id_"):
		return domain.ErrMarketNotFound
	case strings.Contains(c, "_league_id_"):
		return domain.ErrLeagueNotFound
	default:
		return domain.ErrNotFound
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeQueryCanceled
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeCheckViolation
}

// parseDecimal reads a NUMERIC selected as ::TEXT.
func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s %q: %w", ErrMsgFailedToParseDecimal, s, err)
	}
	return d, nil
}

// dateOnly strips the clock from a DATE column so comparisons use UTC midnight.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// nullableLeague converts the default league id into a NULL filter.
func nullableLeague(leagueID int64) *int64 {
	if leagueID == 0 || leagueID == domain.DefaultLeagueID {
		return nil
	}
	return &leagueID
}
