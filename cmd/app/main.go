package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/PredictionLeague_Go/internal/bootstrap"
	"github.com/osse101/PredictionLeague_Go/internal/chat"
	"github.com/osse101/PredictionLeague_Go/internal/config"
	"github.com/osse101/PredictionLeague_Go/internal/database"
	"github.com/osse101/PredictionLeague_Go/internal/handler"
	"github.com/osse101/PredictionLeague_Go/internal/server"
	"github.com/osse101/PredictionLeague_Go/internal/sse"
	"github.com/osse101/PredictionLeague_Go/internal/telegram"
)

const serviceName = "prediction-league"

// @title Prediction League API
// @version 1.0
// @description Weekly prediction markets, leagues and leaderboards for chat bots.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg, serviceName)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{
		MaxConns:         cfg.Database.MaxConns,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		StatementTimeout: cfg.Database.StatementTimeout,
	})
	if err != nil {
		return err
	}
	if err := database.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		dbPool.Close()
		return err
	}
	marketFeed, err := bootstrap.NewFeed(cfg)
	if err != nil {
		dbPool.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool, cfg.Database.QueryTimeout)
	events := bootstrap.RegisterEventHandlers(cfg, bus, repos)
	bootstrap.ReplayDeadLetters(ctx, publisher)
	svc, err := bootstrap.InitializeServices(cfg, repos, marketFeed, publisher)
	if err != nil {
		dbPool.Close()
		return err
	}

	if err := bootstrap.EnsureCurrentCohort(ctx, svc.Cohorts, time.Now().UTC()); err != nil {
		// the scheduled refresh retries
		slog.Warn("Cohort bootstrap failed", "error", err)
	}

	limiter, rdb, err := bootstrap.NewLimiter(ctx, cfg)
	if err != nil {
		dbPool.Close()
		return err
	}

	workers := bootstrap.StartWorkers(ctx, cfg, svc.Cohorts, repos.User, publisher, events)

	api := handler.NewAPIHandler(svc.Core)
	admin := handler.NewAdminHandler(svc.Cohorts, svc.Users, workers.WeeklyReset)
	if events != nil {
		admin.WithEventLog(events)
	}
	hub := bootstrap.StartEventStream(bus)
	srv := server.NewServer(cfg.Server.Port, cfg.Server.APIKey, cfg.Server.TrustedProxies, dbPool, api, admin, sse.Handler(hub))

	errCh := make(chan error, 2)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	botDone := make(chan struct{})
	if cfg.Telegram.Enabled {
		bot, err := telegram.New(cfg.Telegram.Token, chat.NewDispatcher(svc.Core, limiter), telegram.Config{
			PollTimeout:   cfg.Telegram.PollTimeout,
			Workers:       cfg.Telegram.Workers,
			QueueSize:     cfg.Telegram.QueueSize,
			HandleTimeout: cfg.Telegram.HandleTimeout,
		})
		if err != nil {
			errCh <- err
			close(botDone)
		} else {
			go func() {
				defer close(botDone)
				if err := bot.Run(ctx); err != nil {
					errCh <- err
				}
			}()
		}
	} else {
		close(botDone)
	}

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err = <-errCh:
		slog.Error("Component failed, shutting down", "error", err)
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	<-botDone
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		EventStream:        hub,
		Workers:            workers,
		ResilientPublisher: publisher,
		Redis:              rdb,
		DBPool:             dbPool,
	})
	return err
}
