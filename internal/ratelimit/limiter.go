// Package ratelimit implements per-user sliding-window request limits for
// chat interactions. Windows live in Redis when available so limits hold
// across bot processes, and in a bounded in-memory LRU otherwise.
package ratelimit

import (
	"context"
	"time"
)

// Config sets the window policy
type Config struct {
	Limit  int           `mapstructure:"limit" validate:"min=1"`
	Window time.Duration `mapstructure:"window" validate:"gt=0"`
}

// DefaultConfig allows 15 interactions per minute
func DefaultConfig() Config {
	return Config{Limit: DefaultLimit, Window: DefaultWindow}
}

func (c Config) withDefaults() Config {
	if c.Limit <= 0 {
		c.Limit = DefaultLimit
	}
	if c.Window <= 0 {
		c.Window = DefaultWindow
	}
	return c
}

// Decision is the outcome of one Allow call
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter records a request for key and reports whether it fits in the window.
// Rejected requests are not recorded.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}
