package domain

// Event types published on the in-process bus.
//
// Event types follow the pattern: <entity>.<action>
const (
	// EventTypePredictionSubmitted is published after a prediction is stored
	EventTypePredictionSubmitted = "prediction.submitted"

	// EventTypeMarketResolved is published after a resolution and its settlement commit
	EventTypeMarketResolved = "market.resolved"

	// EventTypeCohortPublished is published after a batch of markets is upserted into a cohort
	EventTypeCohortPublished = "cohort.published"

	// EventTypeLeagueJoined is published when a user becomes a league member
	EventTypeLeagueJoined = "league.joined"

	// EventTypeWeeklyResetComplete is published when weekly points are reset
	EventTypeWeeklyResetComplete = "weekly_reset.complete"
)

// Event log query limits
const (
	DefaultEventLogLimit = 50
	MaxEventLogLimit     = 500
)

// PredictionSubmittedPayload is the payload of prediction.submitted
type PredictionSubmittedPayload struct {
	UserID       string `json:"user_id"`
	MarketID     string `json:"market_id"`
	LeagueID     int64  `json:"league_id"`
	Choice       bool   `json:"choice"`
	Inserted     bool   `json:"inserted"`
	IsContrarian bool   `json:"is_contrarian"`
	IsEarlyBird  bool   `json:"is_early_bird"`
	Timestamp    int64  `json:"timestamp"`
}

// CohortPublishedPayload is the payload of cohort.published
type CohortPublishedPayload struct {
	WeekStart string `json:"week_start"`
	Count     int    `json:"count"`
	Source    string `json:"source"`
	Timestamp int64  `json:"timestamp"`
}

// LeagueJoinedPayload is the payload of league.joined
type LeagueJoinedPayload struct {
	UserID    string `json:"user_id"`
	LeagueID  int64  `json:"league_id"`
	Created   bool   `json:"created"`
	Timestamp int64  `json:"timestamp"`
}

// WeeklyResetPayload is the payload of weekly_reset.complete
type WeeklyResetPayload struct {
	UsersReset int64 `json:"users_reset"`
	Timestamp  int64 `json:"timestamp"`
}
