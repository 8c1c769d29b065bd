package repository

import (
	"context"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	// UpsertUser creates the user on first sight (with default league
	// membership) or refreshes the display name. Reports whether a row was created.
	UpsertUser(ctx context.Context, user *domain.User) (bool, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ResetWeeklyPoints(ctx context.Context) (int64, error)
}
