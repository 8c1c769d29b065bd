package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/event"
)

func TestEventMetricsCollector_MarketResolved(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)

	correctBefore := testutil.ToFloat64(PredictionsSettled.WithLabelValues(ResultCorrect))
	pointsBefore := testutil.ToFloat64(PointsAwarded)
	yesBefore := testutil.ToFloat64(MarketsResolved.WithLabelValues(OutcomeYes))

	result := &domain.SettlementResult{MarketID: "M", Outcome: true, Correct: 3, Incorrect: 2, PointsAwarded: 30}
	require.NoError(t, bus.Publish(context.Background(), event.NewMarketResolvedEvent(result, "admin")))

	assert.Equal(t, correctBefore+3, testutil.ToFloat64(PredictionsSettled.WithLabelValues(ResultCorrect)))
	assert.Equal(t, pointsBefore+30, testutil.ToFloat64(PointsAwarded))
	assert.Equal(t, yesBefore+1, testutil.ToFloat64(MarketsResolved.WithLabelValues(OutcomeYes)))
}

func TestEventMetricsCollector_PredictionKinds(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)

	newBefore := testutil.ToFloat64(PredictionsSubmitted.WithLabelValues(KindNew))
	updBefore := testutil.ToFloat64(PredictionsSubmitted.WithLabelValues(KindUpdate))

	p := &domain.Prediction{UserID: "telegram:1", MarketID: "M", LeagueID: 1}
	require.NoError(t, bus.Publish(context.Background(), event.NewPredictionSubmittedEvent(p, true)))
	require.NoError(t, bus.Publish(context.Background(), event.NewPredictionSubmittedEvent(p, false)))

	assert.Equal(t, newBefore+1, testutil.ToFloat64(PredictionsSubmitted.WithLabelValues(KindNew)))
	assert.Equal(t, updBefore+1, testutil.ToFloat64(PredictionsSubmitted.WithLabelValues(KindUpdate)))
}
