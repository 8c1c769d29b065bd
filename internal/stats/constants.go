package stats

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgLeaderboardServed = "Leaderboard served"
	LogErrFailedToLoadStats = "Failed to load user stats"
)
