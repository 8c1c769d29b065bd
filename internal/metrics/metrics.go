package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// League Metrics
var (
	PredictionsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePredictionsSubmitted,
			Help: HelpTextPredictionsSubmitted,
		},
		[]string{LabelKind},
	)

	MarketsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMarketsResolved,
			Help: HelpTextMarketsResolved,
		},
		[]string{LabelOutcome},
	)

	PredictionsSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePredictionsSettled,
			Help: HelpTextPredictionsSettled,
		},
		[]string{LabelResult},
	)

	PointsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePointsAwarded,
			Help: HelpTextPointsAwarded,
		},
	)

	CohortMarketsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCohortMarkets,
			Help: HelpTextCohortMarkets,
		},
		[]string{LabelSource},
	)

	LeagueJoins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLeagueJoins,
			Help: HelpTextLeagueJoins,
		},
		[]string{LabelKind},
	)

	FeedFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFeedFetches,
			Help: HelpTextFeedFetches,
		},
		[]string{LabelSource, LabelResult},
	)
)

// Chat Metrics
var (
	RateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRateLimited,
			Help: HelpTextRateLimited,
		},
		[]string{LabelPlatform},
	)

	ChatInteractions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChatInteractions,
			Help: HelpTextChatInteractions,
		},
		[]string{LabelPlatform, LabelCommand},
	)
)

// Event stream
var (
	StreamClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameStreamClients,
			Help: HelpTextStreamClients,
		},
	)

	StreamDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStreamDropped,
			Help: HelpTextStreamDropped,
		},
		[]string{LabelReason},
	)
)
