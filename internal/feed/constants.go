package feed

import "time"

// Kalshi API
const (
	DefaultKalshiBaseURL = "https://api.elections.kalshi.com/trade-api/v2"

	HeaderAccessKey       = "KALSHI-ACCESS-KEY"
	HeaderAccessSignature = "KALSHI-ACCESS-SIGNATURE"
	HeaderAccessTimestamp = "KALSHI-ACCESS-TIMESTAMP"

	PathMarkets = "/markets"

	MarketStatusOpen = "open"
	ResultYes        = "yes"
	ResultNo         = "no"

	DefaultCategory = "General"
)

// Client defaults
const (
	DefaultHTTPTimeout    = 30 * time.Second
	DefaultRateLimit      = 5.0 // requests per second
	DefaultRateBurst      = 2
	DefaultRetryInitial   = 500 * time.Millisecond
	DefaultRetryMaxDelay  = 10 * time.Second
	DefaultRetryMaxWindow = 30 * time.Second
	MaxResponseBytes      = 4 << 20
)

// Fallback markets
const (
	FallbackIDPrefix     = "DEMO-"
	FallbackIDMod        = 1000000
	FallbackIDDateLayout = "20060102"
)

// Error messages
const (
	ErrMsgUnavailable     = "market feed unavailable"
	ErrMsgMalformed       = "market feed returned malformed data"
	ErrMsgNotConfigured   = "kalshi credentials not configured"
	ErrMsgInvalidKey      = "invalid kalshi private key"
	ErrMsgSignFailed      = "failed to sign request"
	ErrMsgUnexpectedState = "unexpected status"
	ErrMsgFallbackFile    = "invalid fallback markets file"
)

// Log messages
const (
	LogMsgRequestRetry     = "Kalshi request failed, retrying"
	LogMsgMarketSkipped    = "Skipping invalid market from feed"
	LogMsgMarketsFetched   = "Fetched markets from Kalshi"
	LogMsgOutcomeUnsettled = "Market not settled yet"
)
