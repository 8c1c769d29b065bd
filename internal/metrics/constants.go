package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// League metric names
const (
	MetricNamePredictionsSubmitted = "predictions_submitted_total"
	MetricNameMarketsResolved      = "markets_resolved_total"
	MetricNamePredictionsSettled   = "predictions_settled_total"
	MetricNamePointsAwarded        = "points_awarded_total"
	MetricNameCohortMarkets        = "cohort_markets_published_total"
	MetricNameLeagueJoins          = "league_joins_total"
	MetricNameFeedFetches          = "feed_fetches_total"
	MetricNameRateLimited          = "chat_rate_limited_total"
	MetricNameChatInteractions     = "chat_interactions_total"
	MetricNameStreamClients        = "event_stream_clients"
	MetricNameStreamDropped        = "event_stream_dropped_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// League metric help text
const (
	HelpTextPredictionsSubmitted = "Total number of predictions stored, by kind (new or update)"
	HelpTextMarketsResolved      = "Total number of markets resolved, by outcome"
	HelpTextPredictionsSettled   = "Total number of predictions scored, by result"
	HelpTextPointsAwarded        = "Total points awarded by settlement"
	HelpTextCohortMarkets        = "Total number of markets upserted into cohorts, by source"
	HelpTextLeagueJoins          = "Total number of league joins, by kind (created or joined)"
	HelpTextFeedFetches          = "Total number of market feed fetches, by source and result"
	HelpTextRateLimited          = "Total number of chat interactions rejected by the rate limiter"
	HelpTextChatInteractions     = "Total number of chat interactions, by platform and command"
	HelpTextStreamClients        = "Current number of connected event stream clients"
	HelpTextStreamDropped        = "Total number of stream events dropped, by reason"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelKind     = "kind"
	LabelOutcome  = "outcome"
	LabelResult   = "result"
	LabelSource   = "source"
	LabelPlatform = "platform"
	LabelCommand  = "command"
	LabelReason   = "reason"
)

// Label values
const (
	KindNew     = "new"
	KindUpdate  = "update"
	KindCreated = "created"
	KindJoined  = "joined"

	OutcomeYes = "yes"
	OutcomeNo  = "no"

	ResultCorrect   = "correct"
	ResultIncorrect = "incorrect"
	ResultOK        = "ok"
	ResultEmpty     = "empty"
	ResultError     = "error"

	DropBroadcastFull = "broadcast_full"
	DropClientFull    = "client_full"

	PathUnmatched = "unmatched"
)

// ============================================================================
// Buckets
// ============================================================================

// HTTPLatencyBuckets are the histogram buckets for request latency in seconds
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgMetricsRecorded   = "Metrics recorded for event"
	LogMsgPayloadDecodeFail = "Failed to decode event payload for metrics"
)
