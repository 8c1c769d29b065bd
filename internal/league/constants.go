package league

// DefaultMaxMembers caps user-created leagues unless configured otherwise
const DefaultMaxMembers = 50

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgLeagueCreated    = "League created"
	LogMsgLeagueJoined     = "User joined league"
	LogMsgAlreadyMember    = "User already a league member"
	LogWarnFailedToPublish = "Failed to publish league event"
	LogErrFailedToCreate   = "Failed to create league"
	LogErrFailedToJoin     = "Failed to join league"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgNameLength     = "league name must be between 3 and 50 characters"
	ErrMsgEmptyReference = "league id or name required"
	ErrMsgMissingCreator = "creator id required"
)
