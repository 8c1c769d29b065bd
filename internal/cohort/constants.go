package cohort

// Defaults
const (
	DefaultSyncBatch = 50
	SourceMixed      = "mixed"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgCohortPublished     = "Cohort published"
	LogMsgMarketResolved      = "Market resolved"
	LogMsgUsingFallback       = "Using fallback markets"
	LogMsgRefreshCompleted    = "Cohort refresh completed"
	LogMsgResolutionsSynced   = "Resolution sync completed"
	LogMsgOutcomePending      = "Market closed but not settled upstream"
	LogWarnMalformedFeed      = "Feed returned malformed data, keeping existing cohort"
	LogWarnFailedToPublish    = "Failed to publish cohort event"
	LogWarnOutcomeFetchFailed = "Failed to fetch market outcome"
	LogWarnConcurrentResolve  = "Market resolved concurrently"
	LogErrResolveFailed       = "Failed to resolve market"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgEmptyMarketID = "market id required"
	ErrMsgDuplicateID   = "duplicate market id in batch"
)
