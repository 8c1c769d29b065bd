package event

import "time"

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Metadata keys
const (
	MetadataKeySource   = "source"
	MetadataKeyPlatform = "platform"
)

// Retry configuration defaults
const (
	DefaultRetryMaxAttempts = 5
	DefaultRetryDelay       = 2 * time.Second
	DefaultRetryMaxDelay    = 30 * time.Second
)

// Dead letter file
const (
	DeadLetterFormat          = "v1"
	DeadLetterFilePermissions = 0644
	MaxDeadLetterLineBytes    = 1 << 20
)

const (
	ErrMsgOpenDeadLetter   = "failed to open dead letter file"
	ErrMsgEncodeDeadLetter = "failed to encode dead letter entry"
	ErrMsgWriteDeadLetter  = "failed to write dead letter file"
	ErrMsgReadDeadLetter   = "failed to read dead letter file"
)

// Log message constants
const (
	LogMsgEventPublishFailed    = "Event publish failed, retrying in background"
	LogMsgEventRetryFailed      = "Event retry failed"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgEventRetryExhausted   = "Event retry exhausted, writing to dead-letter"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter"
	LogMsgEventDeadLettered     = "Event written to dead letter"
	LogMsgShutdownTimeout       = "Resilient publisher shutdown timed out"
	LogMsgDeadLettersReplayed   = "Replayed dead-lettered events"
	LogMsgDeadLettersSkipped    = "Skipped unreadable dead letter lines"

	// LogMsgHandlerErrorFormat is used to join handler errors from one publish
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
