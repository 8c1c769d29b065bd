package eventlog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/event"
	"github.com/osse101/PredictionLeague_Go/internal/logger"
	"github.com/osse101/PredictionLeague_Go/internal/repository"
)

// LoggedTypes are the events written to the audit log
var LoggedTypes = []event.Type{
	event.PredictionSubmitted,
	event.MarketResolved,
	event.CohortPublished,
	event.LeagueJoined,
	event.WeeklyResetComplete,
}

// Service records published events and answers audit queries
type Service interface {
	// Subscribe registers the logger for every type in LoggedTypes
	Subscribe(bus event.Bus)
	Recent(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error)
	// CleanupOldEvents removes entries older than retention
	CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error)
}

type service struct {
	repo repository.EventLog
	now  func() time.Time
}

// NewService creates the event log service
func NewService(repo repository.EventLog) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Subscribe(bus event.Bus) {
	for _, t := range LoggedTypes {
		bus.Subscribe(t, s.handleEvent)
	}
	slog.Info(LogMsgSubscribed, "types", len(LoggedTypes))
}

func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(evt.Payload)
	if err != nil {
		log.Warn(LogMsgPayloadEncodeFailed, "type", evt.Type, "error", err)
		return nil
	}
	entry := &repository.EventLogEntry{
		EventType: string(evt.Type),
		UserID:    userIDOf(payload),
		Payload:   payload,
	}
	if len(evt.Metadata) > 0 {
		if entry.Metadata, err = json.Marshal(evt.Metadata); err != nil {
			log.Warn(LogMsgPayloadEncodeFailed, "type", evt.Type, "error", err)
			entry.Metadata = nil
		}
	}

	if err := s.repo.LogEvent(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, "error", err, "type", evt.Type)
		return err
	}
	log.Debug(LogMsgEventLogged, "type", evt.Type, "id", entry.ID)
	return nil
}

// userIDOf pulls a top-level user_id out of an encoded payload
func userIDOf(payload []byte) *string {
	var fields map[string]json.RawMessage
	if json.Unmarshal(payload, &fields) != nil {
		return nil
	}
	raw, ok := fields[payloadKeyUserID]
	if !ok {
		return nil
	}
	var id string
	if json.Unmarshal(raw, &id) != nil || id == "" {
		return nil
	}
	return &id
}

func (s *service) Recent(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	if filter.Limit <= 0 {
		filter.Limit = domain.DefaultEventLogLimit
	}
	if filter.Limit > domain.MaxEventLogLimit {
		filter.Limit = domain.MaxEventLogLimit
	}
	return s.repo.GetEvents(ctx, filter)
}

func (s *service) CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, s.now().Add(-retention))
}
