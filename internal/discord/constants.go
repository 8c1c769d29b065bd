package discord

import "time"

// ============================================================================
// Defaults
// ============================================================================

const (
	DefaultAPITimeout    = 10 * time.Second
	DefaultAPIRetries    = 3
	DefaultAPIRetryDelay = 500 * time.Millisecond
	DefaultHandleTimeout = 30 * time.Second
	DefaultHealthTimeout = 2 * time.Second

	MaxErrorBodyBytes = 4096
)

// Discord message component limits
const (
	MaxActionRows    = 5
	MaxButtonsPerRow = 5
	MaxButtonLabel   = 80
	MaxContentRunes  = 2000
)

// ============================================================================
// API
// ============================================================================

const (
	HeaderAPIKey    = "X-API-Key"
	HeaderRequestID = "X-Request-ID"
)

const (
	PathHealthz           = "/healthz"
	PathRegisterUser      = "/api/v1/users/register"
	PathUserStats         = "/api/v1/users/%s/stats"
	PathCohort            = "/api/v1/cohort"
	PathPredictions       = "/api/v1/predictions"
	PathLeaderboard       = "/api/v1/leaderboard"
	PathWeeklyLeaderboard = "/api/v1/leaderboard/weekly"
	PathStatus            = "/api/v1/status"
	PathLeagues           = "/api/v1/leagues"
	PathLeagueLookup      = "/api/v1/leagues/lookup"
	PathJoinLeague        = "/api/v1/leagues/join"
)

// ============================================================================
// Slash command options
// ============================================================================

const (
	OptionLeague = "league"
	OptionName   = "name"
)

// ============================================================================
// Log messages
// ============================================================================

const (
	LogMsgBotRunning        = "Discord bot is now running"
	LogMsgBotReady          = "Discord bot is ready"
	LogMsgBotStopped        = "Discord bot stopped"
	LogMsgCheckingCommands  = "Checking Discord commands"
	LogMsgCommandsUnchanged = "Commands unchanged, skipping registration"
	LogMsgCommandsChanged   = "Commands changed, updating"
	LogMsgCommandsUpdated   = "Commands updated"
	LogMsgRetryingRequest   = "Retrying API request"
	LogMsgHealthServer      = "Starting Discord health server"

	LogWarnRequestFailed    = "API request failed"
	LogWarnServerError      = "API server error, will retry"
	LogWarnButtonsDropped   = "Dropping buttons over the Discord component limit"
	LogWarnContentTruncated = "Reply truncated to the Discord content limit"

	LogErrDeferFailed     = "Failed to defer interaction response"
	LogErrEditFailed      = "Failed to edit interaction response"
	LogErrFollowupFailed  = "Failed to send followup message"
	LogErrHealthServer    = "Discord health server failed"
	LogErrHealthShutdown  = "Discord health server shutdown failed"
	LogErrHealthEncode    = "Failed to encode health response"
	LogErrUnsupportedKind = "Ignoring unsupported interaction type"
)

// ============================================================================
// Error messages
// ============================================================================

const (
	ErrMsgCreateSession   = "error creating Discord session"
	ErrMsgOpenConnection  = "error opening connection"
	ErrMsgFetchCommands   = "failed to fetch existing commands"
	ErrMsgUpdateCommands  = "failed to update commands"
	ErrMsgMarshalBody     = "failed to marshal body"
	ErrMsgCreateRequest   = "failed to create request"
	ErrMsgDecodeResponse  = "failed to decode response"
	ErrMsgRetriesExceeded = "max retries exceeded"
	ErrMsgAPIStatus       = "API returned status"
)

// Health states
const (
	HealthStatusHealthy  = "healthy"
	HealthStatusDegraded = "degraded"
)
