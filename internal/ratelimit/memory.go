package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryLimiter keeps windows in process. Idle users age out of the LRU
// after one window, so memory stays bounded by maxKeys.
type MemoryLimiter struct {
	cfg     Config
	now     func() time.Time
	mu      sync.Mutex
	windows *expirable.LRU[string, []time.Time]
}

// NewMemoryLimiter creates an in-memory sliding-window limiter
func NewMemoryLimiter(cfg Config, maxKeys int) *MemoryLimiter {
	cfg = cfg.withDefaults()
	if maxKeys <= 0 {
		maxKeys = DefaultMemoryKeys
	}
	return &MemoryLimiter{
		cfg:     cfg,
		now:     time.Now,
		windows: expirable.NewLRU[string, []time.Time](maxKeys, nil, cfg.Window),
	}
}

// WithClock replaces the limiter's clock
func (l *MemoryLimiter) WithClock(now func() time.Time) *MemoryLimiter {
	l.now = now
	return l
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.cfg.Window)

	hits, _ := l.windows.Peek(key)
	kept := hits[:0:0]
	for _, h := range hits {
		if h.After(cutoff) {
			kept = append(kept, h)
		}
	}

	if len(kept) >= l.cfg.Limit {
		l.windows.Add(key, kept)
		return Decision{RetryAfter: kept[0].Add(l.cfg.Window).Sub(now)}, nil
	}

	kept = append(kept, now)
	l.windows.Add(key, kept)
	return Decision{Allowed: true, Remaining: l.cfg.Limit - len(kept)}, nil
}
