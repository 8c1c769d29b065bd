package telegram

import "time"

// Defaults
const (
	DefaultPollTimeout    = 60
	DefaultWorkers        = 8
	DefaultQueueSize      = 64
	DefaultSendRetries    = 3
	DefaultRetryDelayBase = time.Second
	DefaultHandleTimeout  = 30 * time.Second
)

// notModified is the API error returned when an edit would not change the message
const notModified = "message is not modified"

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgBotStarted       = "Telegram bot started"
	LogMsgBotStopped       = "Telegram bot stopped"
	LogMsgUpdateIgnored    = "Ignoring unsupported update"
	LogErrSendFailed       = "Failed to send Telegram reply"
	LogErrCallbackAnswer   = "Failed to answer callback query"
	LogErrEnqueueFailed    = "Failed to enqueue update"
	LogWarnSendRetry       = "Telegram send failed, retrying"
	LogWarnEditFellBack    = "Edit failed, sending a new message"
	LogMsgEditNotModified  = "Edit skipped, message unchanged"
	ErrMsgCreateBot        = "failed to create Telegram bot"
	ErrMsgSendAfterRetries = "failed to send message after %d attempts: %w"
)
