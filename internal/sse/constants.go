package sse

import "time"

const (
	BroadcastBufferSize = 100
	ClientEventBuffer   = 50
	ClientChannelBuffer = 10

	// KeepaliveInterval keeps idle streams open through proxies.
	KeepaliveInterval = 30 * time.Second
)

// Stream-only event types
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// QueryTypes is the comma-separated filter parameter, e.g. ?types=market.resolved
const QueryTypes = "types"

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgSubscribed         = "SSE subscriber registered"
	ErrMsgStreamUnsupported  = "streaming not supported"
)
