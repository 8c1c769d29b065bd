package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/event"
)

// StreamedTypes are the bus events forwarded to stream clients. Prediction
// submissions are left out so choices stay private until settlement.
var StreamedTypes = []event.Type{
	event.CohortPublished,
	event.MarketResolved,
	event.LeagueJoined,
	event.WeeklyResetComplete,
}

// Subscriber bridges the event bus to the hub
type Subscriber struct {
	hub *Hub
}

// NewSubscriber creates a subscriber feeding hub
func NewSubscriber(hub *Hub) *Subscriber {
	return &Subscriber{hub: hub}
}

// Subscribe registers the bridge for every type in StreamedTypes
func (s *Subscriber) Subscribe(bus event.Bus) {
	for _, t := range StreamedTypes {
		bus.Subscribe(t, s.handle)
	}
	slog.Info(LogMsgSubscribed, "types", len(StreamedTypes))
}

func (s *Subscriber) handle(_ context.Context, evt event.Event) error {
	payload := evt.Payload
	if evt.Type == event.MarketResolved {
		// per-prediction rows carry user choices
		if r, err := event.DecodePayload[domain.SettlementResult](evt.Payload); err == nil {
			r.Predictions = nil
			r.Achievements = nil
			payload = r
		}
	}
	s.hub.Broadcast(string(evt.Type), payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}
