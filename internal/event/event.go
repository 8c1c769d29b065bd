package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Event types
const (
	PredictionSubmitted Type = domain.EventTypePredictionSubmitted
	MarketResolved      Type = domain.EventTypeMarketResolved
	CohortPublished     Type = domain.EventTypeCohortPublished
	LeagueJoined        Type = domain.EventTypeLeagueJoined
	WeeklyResetComplete Type = domain.EventTypeWeeklyResetComplete
)

// NewPredictionSubmittedEvent creates a prediction.submitted event
func NewPredictionSubmittedEvent(p *domain.Prediction, inserted bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PredictionSubmitted,
		Payload: domain.PredictionSubmittedPayload{
			UserID:       p.UserID,
			MarketID:     p.MarketID,
			LeagueID:     p.LeagueID,
			Choice:       p.Choice,
			Inserted:     inserted,
			IsContrarian: p.IsContrarian,
			IsEarlyBird:  p.IsEarlyBird,
			Timestamp:    time.Now().Unix(),
		},
		Metadata: Metadata{MetadataKeyPlatform: domain.PlatformOf(p.UserID)},
	}
}

// NewMarketResolvedEvent creates a market.resolved event carrying the settlement summary
func NewMarketResolvedEvent(result *domain.SettlementResult, source string) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     MarketResolved,
		Payload:  *result,
		Metadata: Metadata{MetadataKeySource: source},
	}
}

// NewCohortPublishedEvent creates a cohort.published event
func NewCohortPublishedEvent(weekStart time.Time, count int, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CohortPublished,
		Payload: domain.CohortPublishedPayload{
			WeekStart: weekStart.Format(domain.WeekDateLayout),
			Count:     count,
			Source:    source,
			Timestamp: time.Now().Unix(),
		},
		Metadata: Metadata{MetadataKeySource: source},
	}
}

// NewLeagueJoinedEvent creates a league.joined event
func NewLeagueJoinedEvent(userID string, leagueID int64, created bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LeagueJoined,
		Payload: domain.LeagueJoinedPayload{
			UserID:    userID,
			LeagueID:  leagueID,
			Created:   created,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewWeeklyResetCompleteEvent creates a weekly_reset.complete event
func NewWeeklyResetCompleteEvent(usersReset int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    WeeklyResetComplete,
		Payload: domain.WeeklyResetPayload{
			UsersReset: usersReset,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
