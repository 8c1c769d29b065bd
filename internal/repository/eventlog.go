package repository

import (
	"context"
	"encoding/json"
	"time"
)

// EventLog stores an audit trail of published domain events
type EventLog interface {
	LogEvent(ctx context.Context, entry *EventLogEntry) error
	// GetEvents returns matching entries, newest first
	GetEvents(ctx context.Context, filter EventLogFilter) ([]EventLogEntry, error)
	// CleanupOldEvents deletes entries created before cutoff
	CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error)
}

// EventLogEntry is one recorded event
type EventLogEntry struct {
	ID        int64           `json:"id"`
	EventType string          `json:"event_type"`
	UserID    *string         `json:"user_id,omitempty"`
	Payload   json.RawMessage `json:"payload"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// EventLogFilter narrows GetEvents. Empty fields match everything.
type EventLogFilter struct {
	UserID    string
	EventType string
	Since     *time.Time
	Limit     int
}
