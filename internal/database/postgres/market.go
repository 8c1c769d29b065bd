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

// MarketRepository implements repository.Market for PostgreSQL
type MarketRepository struct {
	base
}

// NewMarketRepository creates a new MarketRepository
func NewMarketRepository(pool *pgxpool.Pool, timeout time.Duration) *MarketRepository {
	return &MarketRepository{base: newBase(pool, timeout)}
}

var _ repository.Market = (*MarketRepository)(nil)

func scanMarket(row pgx.Row) (*domain.Market, error) {
	var m domain.Market
	var yes, no, volume string
	if err := row.Scan(&m.ID, &m.Title, &m.Category, &m.CloseTime, &m.WeekStart, &m.Resolution,
		&m.ResolvedAt, &yes, &no, &volume, &m.Source, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}

	var err error
	if m.YesPrice, err = parseDecimal(yes); err != nil {
		return nil, err
	}
	if m.NoPrice, err = parseDecimal(no); err != nil {
		return nil, err
	}
	if m.Volume, err = parseDecimal(volume); err != nil {
		return nil, err
	}
	m.WeekStart = dateOnly(m.WeekStart)
	return &m, nil
}

func collectMarkets(rows pgx.Rows) ([]domain.Market, error) {
	defer rows.Close()
	markets := []domain.Market{}
	for rows.Next() {
		m, err := scanMarket(rows)
		if err != nil {
			return nil, err
		}
		markets = append(markets, *m)
	}
	return markets, rows.Err()
}

// UpsertMarkets writes the batch in a single transaction
func (r *MarketRepository) UpsertMarkets(ctx context.Context, markets []domain.Market) (int, error) {
	if len(markets) == 0 {
		return 0, nil
	}

	ctx, cancel := r.bounded(ctx)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, wrapErr(ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, m := range markets {
		batch.Queue(SQLUpsertMarket, m.ID, m.Title, m.Category, m.CloseTime, m.WeekStart,
			m.YesPrice.String(), m.NoPrice.String(), m.Volume.String(), m.Source)
	}

	results := tx.SendBatch(ctx, batch)
	for _, m := range markets {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			if isCheckViolation(err) {
				return 0, fmt.Errorf("%w: market %s", domain.ErrDataInvalid, m.ID)
			}
			return 0, wrapErr(ErrMsgFailedToUpsertMarket, err)
		}
	}
	if err := results.Close(); err != nil {
		return 0, wrapErr(ErrMsgFailedToUpsertMarket, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, wrapErr(ErrMsgFailedToCommitTransaction, err)
	}
	return len(markets), nil
}

// GetMarket returns the market or domain.ErrMarketNotFound
func (r *MarketRepository) GetMarket(ctx context.Context, marketID string) (*domain.Market, error) {
	ctx, cancel := r.bounded(ctx)
	defer cancel()

	m, err := scanMarket(r.pool.QueryRow(ctx, SQLGetMarket, marketID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrMarketNotFound
	}
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetMarket, err)
	}
	return m, nil
}

// GetCohort returns the week's markets still open at now, soonest close first
func (r *MarketRepository) GetCohort(ctx context.Context, weekStart, now time.Time) ([]domain.Market, error) {
	ctx, cancel := r.bounded(ctx)
	defer cancel()

	rows, err := r.pool.Query(ctx, SQLGetCohort, weekStart, now)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetCohort, err)
	}
	markets, err := collectMarkets(rows)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetCohort, err)
	}
	return markets, nil
}

// ListUnresolvedClosed returns markets past close that still await an outcome
func (r *MarketRepository) ListUnresolvedClosed(ctx context.Context, now time.Time, limit int) ([]domain.Market, error) {
	ctx, cancel := r.bounded(ctx)
	defer cancel()

	rows, err := r.pool.Query(ctx, SQLListUnresolvedClosed, now, limit)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListMarkets, err)
	}
	markets, err := collectMarkets(rows)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListMarkets, err)
	}
	return markets, nil
}

// BeginSettlement opens the transaction used to resolve one market. The
// storage timeout bounds acquiring the connection; statements inside the
// transaction apply their own.
func (r *MarketRepository) BeginSettlement(ctx context.Context) (repository.SettlementTx, error) {
	beginCtx, cancel := r.bounded(ctx)
	defer cancel()

	tx, err := r.pool.Begin(beginCtx)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToBeginTransaction, err)
	}
	return &settlementTx{tx: tx, timeout: r.timeout}, nil
}
