// Package chat turns normalized chat interactions into core operations and
// renders the results as plain text with buttons. Platform adapters only
// translate their updates into an Interaction and a Reply back.
package chat

import (
	"context"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
)

// Kind distinguishes typed commands from button presses
type Kind int

const (
	KindCommand Kind = iota
	KindButtonPress
)

// Interaction is one user action, independent of the platform it came from.
// UserID is the platform's own user id; the dispatcher qualifies it.
type Interaction struct {
	Kind        Kind
	Platform    string
	UserID      string
	DisplayName string
	Command     string
	Args        []string
	Payload     string
}

// Button is an inline button. Payload comes back as Interaction.Payload.
type Button struct {
	Label   string
	Payload string
}

// Reply is what the adapter sends. Edit asks the adapter to replace the
// message the button was attached to instead of sending a new one.
type Reply struct {
	Text    string
	Buttons [][]Button
	Edit    bool
}

// Core is everything the chat layer needs from the prediction league.
// It is implemented in process by app.Core and over HTTP by the Discord API client.
type Core interface {
	RegisterUser(ctx context.Context, platform, platformUserID, displayName string) (*domain.User, error)
	GetCurrentCohort(ctx context.Context) ([]domain.Market, error)
	GetUserLeaguePredictions(ctx context.Context, userID string, leagueID int64, marketIDs []string) (map[string]bool, error)
	SubmitPrediction(ctx context.Context, req domain.SubmitPredictionRequest) (*domain.Prediction, error)
	GetLeaderboard(ctx context.Context, leagueID int64, limit int) (*domain.Leaderboard, error)
	GetWeeklyLeaderboard(ctx context.Context, leagueID int64, limit int) (*domain.Leaderboard, error)
	GetUserStats(ctx context.Context, userID string) (*domain.UserStats, error)
	GetLeague(ctx context.Context, ref domain.LeagueRef) (*domain.League, error)
	ListUserLeagues(ctx context.Context, userID string) ([]domain.League, error)
	CreateLeague(ctx context.Context, name, creatorID string) (*domain.League, error)
	JoinLeague(ctx context.Context, userID string, ref domain.LeagueRef) (*domain.League, bool, error)
	GetSystemStatus(ctx context.Context) (*domain.SystemStatus, error)
}
