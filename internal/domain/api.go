package domain

import "time"

// Request and response bodies of the HTTP API. The handlers decode them and
// the Discord API client encodes them, so both sides share one definition.

// RegisterUserRequest registers a platform user on first interaction
type RegisterUserRequest struct {
	Platform       string `json:"platform" validate:"required,oneof=telegram discord"`
	PlatformUserID string `json:"platform_user_id" validate:"required,max=64"`
	DisplayName    string `json:"display_name" validate:"max=100"`
}

// CreateLeagueRequest creates a league owned by CreatorID
type CreateLeagueRequest struct {
	Name      string `json:"name" validate:"required,min=3,max=50"`
	CreatorID string `json:"creator_id" validate:"required,max=128"`
}

// JoinLeagueRequest joins a league by id or, when LeagueID is zero, by name
type JoinLeagueRequest struct {
	UserID   string `json:"user_id" validate:"required,max=128"`
	LeagueID int64  `json:"league_id" validate:"omitempty,min=1"`
	Name     string `json:"name" validate:"max=50"`
}

// JoinLeagueResponse reports the league and whether the user was newly added
type JoinLeagueResponse struct {
	League League `json:"league"`
	Joined bool   `json:"joined"`
}

// LeaguesResponse lists leagues
type LeaguesResponse struct {
	Leagues []League `json:"leagues"`
}

// CohortResponse is the current cohort
type CohortResponse struct {
	WeekStart time.Time `json:"week_start"`
	Markets   []Market  `json:"markets"`
}

// PicksResponse maps market id to the user's choice
type PicksResponse struct {
	Picks map[string]bool `json:"picks"`
}

// PublishCohortRequest publishes markets into a week. An empty WeekStart
// means the current week.
type PublishCohortRequest struct {
	WeekStart string            `json:"week_start" validate:"omitempty,datetime=2006-01-02"`
	Markets   []CandidateMarket `json:"markets" validate:"required,min=1,dive"`
}

// PublishCohortResponse reports how many markets were stored
type PublishCohortResponse struct {
	WeekStart time.Time `json:"week_start"`
	Published int       `json:"published"`
}

// ResolveMarketRequest records a market outcome
type ResolveMarketRequest struct {
	Outcome *bool `json:"outcome" validate:"required"`
}

// APIError is the error body of every failed API call
type APIError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	// Fields is set on validation failures
	Fields map[string]string `json:"fields,omitempty"`
}
