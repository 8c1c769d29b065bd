package bootstrap

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PredictionLeague_Go/internal/database/postgres"
	"github.com/osse101/PredictionLeague_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application
type Repositories struct {
	User       repository.User
	League     repository.League
	Market     repository.Market
	Prediction repository.Prediction
	Stats      repository.Stats
	EventLog   repository.EventLog
}

// InitializeRepositories creates the postgres repositories. Every call is
// bounded by queryTimeout.
func InitializeRepositories(dbPool *pgxpool.Pool, queryTimeout time.Duration) *Repositories {
	return &Repositories{
		User:       postgres.NewUserRepository(dbPool, queryTimeout),
		League:     postgres.NewLeagueRepository(dbPool, queryTimeout),
		Market:     postgres.NewMarketRepository(dbPool, queryTimeout),
		Prediction: postgres.NewPredictionRepository(dbPool, queryTimeout),
		Stats:      postgres.NewStatsRepository(dbPool, queryTimeout),
		EventLog:   postgres.NewEventLogRepository(dbPool, queryTimeout),
	}
}
