package handler

// Generic HTTP error messages for client responses.
// Internal failures never expose error details.
const (
	ErrMsgInternal              = "Something went wrong"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgLeagueRefRequired     = "league_id or name is required"
	ErrMsgResetUnavailable      = "Weekly reset is not configured"
	ErrMsgEventLogUnavailable   = "Event log is disabled"
)

// Success messages
const (
	MsgWeeklyResetDone = "Weekly reset completed"
)

// Log messages
const (
	LogErrEncodeResponse = "Failed to encode JSON response"
	LogErrWriteResponse  = "Failed to write response buffer"
	LogErrDecodeRequest  = "Failed to decode request"
	LogMsgInvalidRequest = "Request failed validation"
	LogErrReadiness      = "Readiness check failed"

	LogMsgUserRegistered    = "User registered"
	LogMsgPredictionStored  = "Prediction stored"
	LogMsgLeagueCreated     = "League created"
	LogMsgLeagueJoined      = "League joined"
	LogMsgCohortRefreshed   = "Cohort refreshed"
	LogMsgCohortPublished   = "Cohort published"
	LogMsgMarketResolved    = "Market resolved"
	LogMsgWeeklyResetManual = "Manual weekly reset triggered"
)

// Operation names used in error logs
const (
	OpRegisterUser   = "Register user"
	OpGetUserStats   = "Get user stats"
	OpGetCohort      = "Get cohort"
	OpSubmit         = "Submit prediction"
	OpGetPredictions = "Get predictions"
	OpLeaderboard    = "Get leaderboard"
	OpWeekly         = "Get weekly leaderboard"
	OpStatus         = "Get status"
	OpListLeagues    = "List leagues"
	OpLookupLeague   = "Lookup league"
	OpCreateLeague   = "Create league"
	OpJoinLeague     = "Join league"
	OpRefreshCohort  = "Refresh cohort"
	OpPublishCohort  = "Publish cohort"
	OpResolveMarket  = "Resolve market"
	OpWeeklyReset    = "Weekly reset"
	OpListEvents     = "List events"
)
