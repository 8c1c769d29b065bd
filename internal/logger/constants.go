package logger

// Level and format names accepted in LOG_LEVEL / LOG_FORMAT.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
	levelWarning  = "warning"

	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "prediction-league"
	DefaultVersion     = "dev"
)

// Attribute keys shared by every record.
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyUserID      = "user_id"
)
