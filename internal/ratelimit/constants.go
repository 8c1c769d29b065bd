package ratelimit

import "time"

const (
	DefaultLimit  = 15
	DefaultWindow = 60 * time.Second

	// DefaultMemoryKeys bounds how many users the in-memory limiter tracks
	DefaultMemoryKeys = 10000

	// KeyPrefix namespaces limiter keys in Redis
	KeyPrefix = "ratelimit:"
)

const (
	ErrMsgRedisScript = "rate limit script failed"
	ErrMsgBadReply    = "unexpected rate limit reply"
)
