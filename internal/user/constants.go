package user

import "time"

// ============================================================================
// Cache Configuration
// ============================================================================

// CacheSchemaVersion is the current version of the cache schema.
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "2.0"

// DefaultCacheSize is the default maximum number of cache entries
const DefaultCacheSize = 1000

// DefaultCacheTTL is the default time-to-live for cache entries
const DefaultCacheTTL = 5 * time.Minute

// ============================================================================
// Validation
// ============================================================================

const (
	MaxDisplayNameLength = 64
	MaxPlatformIDLength  = 64
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgRegisterUserCalled = "RegisterUser called"
	LogMsgUserRegistered     = "New user registered"
	LogMsgUserCacheHit       = "User cache hit"
	LogErrFailedToUpsertUser = "Failed to upsert user"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgUnsupportedPlatform = "unsupported platform"
	ErrMsgEmptyPlatformID     = "platform user id is empty"
	ErrMsgPlatformIDTooLong   = "platform user id too long"
)
