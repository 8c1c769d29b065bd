package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/PredictionLeague_Go/internal/bootstrap"
	"github.com/osse101/PredictionLeague_Go/internal/chat"
	"github.com/osse101/PredictionLeague_Go/internal/config"
	"github.com/osse101/PredictionLeague_Go/internal/discord"
)

const (
	serviceName     = "prediction-league-discord"
	shutdownTimeout = 10 * time.Second
)

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
	if err := cfg.ValidateDiscord(); err != nil {
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

	// A shared redis keeps one rate limit window across both bot processes
	limiter, rdb, err := bootstrap.NewLimiter(ctx, cfg)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	client := discord.NewAPIClient(cfg.Discord.APIURL, cfg.Server.APIKey)
	bot, err := discord.New(discord.Config{
		Token:              cfg.Discord.Token,
		AppID:              cfg.Discord.AppID,
		HandleTimeout:      cfg.Discord.HandleTimeout,
		ForceCommandUpdate: cfg.Discord.ForceCommandUpdate,
	}, chat.NewDispatcher(client, limiter))
	if err != nil {
		return err
	}

	health := discord.NewHTTPServer(fmt.Sprintf(":%d", cfg.Discord.HealthPort), bot.Stats, client, bot.Connected)
	health.Start()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		health.Stop(shutdownCtx)
	}()

	return bot.Run(ctx)
}
