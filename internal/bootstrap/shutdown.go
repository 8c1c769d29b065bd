package bootstrap

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/PredictionLeague_Go/internal/database"
	"github.com/osse101/PredictionLeague_Go/internal/event"
	"github.com/osse101/PredictionLeague_Go/internal/server"
	"github.com/osse101/PredictionLeague_Go/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	EventStream        *sse.Hub
	Workers            *Workers
	ResilientPublisher *event.ResilientPublisher
	Redis              *redis.Client
	DBPool             database.Pool
}

// GracefulShutdown stops components in dependency order:
//  1. Event stream hub (ends open streams) and the HTTP server
//  2. Scheduler, weekly reset timer and worker pool (finish queued jobs)
//  3. Event publisher (dead-letter what is still retrying)
//  4. Redis and the database pool
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	if c.EventStream != nil {
		c.EventStream.Stop()
	}
	if c.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Workers != nil {
		slog.Info(LogMsgShuttingDownWorkers)
		c.Workers.Scheduler.Stop()
		if err := c.Workers.WeeklyReset.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWeeklyResetShutdownFailed, "error", err)
		}
		c.Workers.Pool.Stop()
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			slog.Error(LogMsgRedisCloseFailed, "error", err)
		}
	}
	if c.DBPool != nil {
		c.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
