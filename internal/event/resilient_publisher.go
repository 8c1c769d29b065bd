package event

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/osse101/PredictionLeague_Go/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries     int
	RetryDelay     time.Duration
	MaxRetryDelay  time.Duration
	DeadLetterPath string
}

// ResilientPublisher wraps a Bus so that a failed publish is retried in the
// background with exponential backoff, then dead-lettered.
type ResilientPublisher struct {
	inner      Bus
	config     ResilientConfig
	deadLetter *DeadLetterWriter

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewResilientPublisher creates a publisher. An empty DeadLetterPath disables the file.
func NewResilientPublisher(inner Bus, config ResilientConfig) (*ResilientPublisher, error) {
	if config.MaxRetries <= 0 {
		config.MaxRetries = DefaultRetryMaxAttempts
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = DefaultRetryDelay
	}
	if config.MaxRetryDelay <= 0 {
		config.MaxRetryDelay = DefaultRetryMaxDelay
	}

	p := &ResilientPublisher{inner: inner, config: config}
	if config.DeadLetterPath != "" {
		dlw, err := NewDeadLetterWriter(config.DeadLetterPath)
		if err != nil {
			return nil, err
		}
		p.deadLetter = dlw
	}
	p.ctx, p.cancel = context.WithCancel(context.Background())
	return p, nil
}

// Publish tries the inner bus once. On failure the event is accepted and
// retried in the background, so callers never see delivery errors.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"max_retries", p.config.MaxRetries)

	p.wg.Add(1)
	go p.retry(event)
	return nil
}

func (p *ResilientPublisher) retry(event Event) {
	defer p.wg.Done()
	log := logger.FromContext(p.ctx)

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = p.config.RetryDelay
	policy.MaxInterval = p.config.MaxRetryDelay
	policy.MaxElapsedTime = 0

	// the first attempt already happened in Publish
	attempts := 1
	retries := backoff.WithMaxRetries(policy, uint64(p.config.MaxRetries-1))
	err := backoff.RetryNotify(func() error {
		attempts++
		return p.inner.Publish(p.ctx, event)
	}, backoff.WithContext(retries, p.ctx),
		func(err error, next time.Duration) {
			log.Warn(LogMsgEventRetryFailed, "event_type", event.Type, "attempt", attempts, "next", next, "error", err)
		})
	if err == nil {
		log.Info(LogMsgEventRetrySucceeded, "event_type", event.Type, "attempt", attempts)
		return
	}

	log.Error(LogMsgEventRetryExhausted, "event_type", event.Type, "attempts", attempts, "error", err)
	if p.deadLetter == nil {
		return
	}
	if werr := p.deadLetter.Write(event, attempts, err); werr != nil {
		log.Error(LogMsgDeadLetterWriteFailed, "event_type", event.Type, "error", werr)
		return
	}
	log.Info(LogMsgEventDeadLettered, "event_type", event.Type)
}

// Replay republishes every dead-lettered event once. Events that fail again
// go through the normal retry path and may land back in the file.
func (p *ResilientPublisher) Replay(ctx context.Context) (int, error) {
	if p.deadLetter == nil {
		return 0, nil
	}
	entries, skipped, err := p.deadLetter.Drain()
	if err != nil {
		return 0, err
	}
	log := logger.FromContext(ctx)
	if skipped > 0 {
		log.Warn(LogMsgDeadLettersSkipped, "count", skipped)
	}
	for _, e := range entries {
		if err := p.Publish(ctx, e.Event); err != nil {
			return 0, err
		}
	}
	if len(entries) > 0 {
		log.Info(LogMsgDeadLettersReplayed, "count", len(entries))
	}
	return len(entries), nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown stops pending retries, which dead-letter their events, and waits for them
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.cancel()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}

	if p.deadLetter != nil {
		return p.deadLetter.Close()
	}
	return nil
}
