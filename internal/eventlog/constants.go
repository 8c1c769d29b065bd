package eventlog

import "time"

const (
	DefaultRetention       = 90 * 24 * time.Hour
	DefaultCleanupInterval = 24 * time.Hour
)

// Log messages
const (
	LogMsgPayloadEncodeFailed = "Failed to encode event payload, skipping log"
	LogMsgFailedToLogEvent    = "Failed to log event to database"
	LogMsgEventLogged         = "Event logged to database"
	LogMsgSubscribed          = "Event log subscribed"
	LogMsgCleanupFailed       = "Event log cleanup failed"
	LogMsgCleanupCompleted    = "Event log cleanup completed"
)

const ErrMsgCleanupFailed = "event log cleanup failed"

const payloadKeyUserID = "user_id"
