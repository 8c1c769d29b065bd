package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames: service, timestamp
	LogFileNamePattern = "%s_%s.log"

	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept at startup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting prediction league"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgMetricsCollectorRegistered     = "Metrics collector registered"
	LogMsgEventLogDisabled               = "Event log disabled"
	LogMsgDeadLetterReplayFailed         = "Dead letter replay failed"
	ErrMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	ErrMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Services and Workers
// =============================================================================

const (
	LogMsgFeedKalshi       = "Market feed: Kalshi"
	LogMsgFeedDisabled     = "Market feed disabled, cohorts use the demo fallback"
	LogMsgFallbackLoaded   = "Loaded fallback markets file"
	LogMsgLimiterRedis     = "Rate limiter: redis"
	LogMsgLimiterMemory    = "Rate limiter: in-memory"
	LogMsgCohortMissing    = "No cohort for the current week, refreshing"
	LogMsgCohortPresent    = "Current cohort present"
	ErrMsgFailedCreateFeed = "failed to create market feed"
	ErrMsgFailedRedis      = "failed to connect to redis"
	ErrMsgCohortBootstrap  = "failed to seed the current cohort"

	JobRefreshCohort   = "refresh_cohort"
	JobSyncResolutions = "sync_resolutions"
	JobEventLogCleanup = "event_log_cleanup"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownWorkers        = "Stopping workers..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgWeeklyResetShutdownFailed  = "Weekly reset worker shutdown failed"
	LogMsgRedisCloseFailed           = "Redis client close failed"
)
