package metrics

import (
	"context"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/event"
	"github.com/osse101/PredictionLeague_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{
		event.PredictionSubmitted,
		event.MarketResolved,
		event.CohortPublished,
		event.LeagueJoined,
		event.WeeklyResetComplete,
	} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.PredictionSubmitted:
		var p domain.PredictionSubmittedPayload
		if p, err = event.DecodePayload[domain.PredictionSubmittedPayload](evt.Payload); err == nil {
			kind := KindUpdate
			if p.Inserted {
				kind = KindNew
			}
			PredictionsSubmitted.WithLabelValues(kind).Inc()
		}

	case event.MarketResolved:
		var r domain.SettlementResult
		if r, err = event.DecodePayload[domain.SettlementResult](evt.Payload); err == nil {
			outcome := OutcomeNo
			if r.Outcome {
				outcome = OutcomeYes
			}
			MarketsResolved.WithLabelValues(outcome).Inc()
			PredictionsSettled.WithLabelValues(ResultCorrect).Add(float64(r.Correct))
			PredictionsSettled.WithLabelValues(ResultIncorrect).Add(float64(r.Incorrect))
			PointsAwarded.Add(float64(r.PointsAwarded))
		}

	case event.CohortPublished:
		var c domain.CohortPublishedPayload
		if c, err = event.DecodePayload[domain.CohortPublishedPayload](evt.Payload); err == nil {
			CohortMarketsPublished.WithLabelValues(c.Source).Add(float64(c.Count))
		}

	case event.LeagueJoined:
		var j domain.LeagueJoinedPayload
		if j, err = event.DecodePayload[domain.LeagueJoinedPayload](evt.Payload); err == nil {
			kind := KindJoined
			if j.Created {
				kind = KindCreated
			}
			LeagueJoins.WithLabelValues(kind).Inc()
		}
	}

	if err != nil {
		log.Debug(LogMsgPayloadDecodeFail, "type", evt.Type, "error", err)
		return nil
	}
	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
