package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/PredictionLeague_Go/internal/config"
	"github.com/osse101/PredictionLeague_Go/internal/event"
	"github.com/osse101/PredictionLeague_Go/internal/eventlog"
	"github.com/osse101/PredictionLeague_Go/internal/metrics"
	"github.com/osse101/PredictionLeague_Go/internal/sse"
)

// InitializeEventSystem creates the in-process bus and the resilient
// publisher services publish through. Subscribers register on the bus.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	bus := event.NewMemoryBus()

	deadLetterPath := cfg.Event.DeadLetterPath
	if deadLetterPath != "" {
		if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
		}
	}

	publisher, err := event.NewResilientPublisher(bus, event.ResilientConfig{
		MaxRetries:     cfg.Event.MaxRetries,
		RetryDelay:     cfg.Event.RetryDelay,
		MaxRetryDelay:  cfg.Event.MaxRetryDelay,
		DeadLetterPath: deadLetterPath,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", cfg.Event.MaxRetries,
		"retry_delay", cfg.Event.RetryDelay,
		"dead_letter_path", deadLetterPath)

	return bus, publisher, nil
}

// RegisterEventHandlers subscribes the metrics collector and, when enabled,
// the event log to the bus. It returns the event log service or nil.
func RegisterEventHandlers(cfg *config.Config, bus event.Bus, repos *Repositories) eventlog.Service {
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if !cfg.Event.LogEnabled {
		slog.Info(LogMsgEventLogDisabled)
		return nil
	}
	events := eventlog.NewService(repos.EventLog)
	events.Subscribe(bus)
	return events
}

// ReplayDeadLetters republishes events a previous run failed to deliver. It
// runs after the handlers are registered so every subscriber sees them.
func ReplayDeadLetters(ctx context.Context, publisher *event.ResilientPublisher) {
	if _, err := publisher.Replay(ctx); err != nil {
		slog.Warn(LogMsgDeadLetterReplayFailed, "error", err)
	}
}

// StartEventStream starts the server-sent events hub and feeds it from the bus
func StartEventStream(bus event.Bus) *sse.Hub {
	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub).Subscribe(bus)
	return hub
}
