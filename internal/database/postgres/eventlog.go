package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/repository"
)

// EventLogRepository implements repository.EventLog for PostgreSQL
type EventLogRepository struct {
	base
}

// NewEventLogRepository creates a new EventLogRepository
func NewEventLogRepository(pool *pgxpool.Pool, timeout time.Duration) *EventLogRepository {
	return &EventLogRepository{base: newBase(pool, timeout)}
}

var _ repository.EventLog = (*EventLogRepository)(nil)

// LogEvent inserts the entry and fills in its id and creation time
func (r *EventLogRepository) LogEvent(ctx context.Context, entry *repository.EventLogEntry) error {
	ctx, cancel := r.bounded(ctx)
	defer cancel()

	var metadata any
	if len(entry.Metadata) > 0 {
		metadata = entry.Metadata
	}
	err := r.pool.QueryRow(ctx, SQLInsertEvent, entry.EventType, entry.UserID, entry.Payload, metadata).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return wrapErr(ErrMsgFailedToLogEvent, err)
	}
	return nil
}

func (r *EventLogRepository) GetEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	ctx, cancel := r.bounded(ctx)
	defer cancel()

	limit := filter.Limit
	if limit <= 0 || limit > domain.MaxEventLogLimit {
		limit = domain.MaxEventLogLimit
	}

	rows, err := r.pool.Query(ctx, SQLGetEvents, filter.EventType, filter.UserID, filter.Since, limit)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetEvents, err)
	}
	defer rows.Close()

	var entries []repository.EventLogEntry
	for rows.Next() {
		var e repository.EventLogEntry
		if err := rows.Scan(&e.ID, &e.EventType, &e.UserID, &e.Payload, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, wrapErr(ErrMsgFailedToScanRow, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(ErrMsgFailedToGetEvents, err)
	}
	return entries, nil
}

func (r *EventLogRepository) CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := r.bounded(ctx)
	defer cancel()

	tag, err := r.pool.Exec(ctx, SQLDeleteEventsBefore, cutoff)
	if err != nil {
		return 0, wrapErr(ErrMsgFailedToCleanupEvents, err)
	}
	return tag.RowsAffected(), nil
}
