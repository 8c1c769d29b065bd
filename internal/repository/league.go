package repository

import (
	"context"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
)

// League defines the interface for league and membership persistence
type League interface {
	// CreateLeague inserts the league and its creator's membership atomically.
	CreateLeague(ctx context.Context, league *domain.League) error
	GetLeagueByID(ctx context.Context, leagueID int64) (*domain.League, error)
	GetLeagueByNameKey(ctx context.Context, nameKey string) (*domain.League, error)
	// AddMember joins the user, enforcing capacity under a row lock.
	// Returns false without error when the user already was a member.
	AddMember(ctx context.Context, leagueID int64, userID string) (bool, error)
	IsMember(ctx context.Context, leagueID int64, userID string) (bool, error)
	ListUserLeagues(ctx context.Context, userID string) ([]domain.League, error)
}
