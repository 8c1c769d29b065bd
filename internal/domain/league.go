package domain

import "time"

// Default league every user implicitly belongs to
const (
	DefaultLeagueID   int64 = 1
	DefaultLeagueName       = "Global League"

	LeagueNameMinLength = 3
	LeagueNameMaxLength = 50
)

// League is a named group whose members compete on a shared leaderboard.
type League struct {
	ID          int64     `json:"league_id"`
	Name        string    `json:"name"`
	NameKey     string    `json:"-"`
	CreatorID   string    `json:"creator_id,omitempty"`
	IsActive    bool      `json:"is_active"`
	MaxMembers  int       `json:"max_members"` // 0 means unlimited
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsDefault reports whether this is the global league.
func (l League) IsDefault() bool {
	return l.ID == DefaultLeagueID
}

// IsFull reports whether another member would exceed capacity.
func (l League) IsFull() bool {
	return l.MaxMembers > 0 && l.MemberCount >= l.MaxMembers
}

// LeagueRef identifies a league by id or by name. ID wins when both are set.
type LeagueRef struct {
	ID   int64  `json:"league_id,omitempty"`
	Name string `json:"name,omitempty"`
}
