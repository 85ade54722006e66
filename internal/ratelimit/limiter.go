// Package ratelimit keeps one token bucket per client key.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"feedback_dashboard/internal/config"
)

type entry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

type Limiter struct {
	mu           sync.Mutex
	entries      map[string]*entry
	rps          rate.Limit
	burst        int
	idleTTL      time.Duration
	cleanupEvery time.Duration
	now          func() time.Time
}

// New returns nil when the configured rate is zero; a nil Limiter allows
// everything.
func New(cfg *config.Config) *Limiter {
	if cfg.SubmitRatePerSecond <= 0 {
		return nil
	}
	burst := cfg.SubmitRateBurst
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		entries:      make(map[string]*entry),
		rps:          rate.Limit(cfg.SubmitRatePerSecond),
		burst:        burst,
		idleTTL:      15 * time.Minute,
		cleanupEvery: 2 * time.Minute,
		now:          time.Now,
	}
}

func (l *Limiter) Allow(key string) bool {
	if l == nil {
		return true
	}
	now := l.now()

	l.mu.Lock()
	ent, ok := l.entries[key]
	if !ok {
		ent = &entry{lim: rate.NewLimiter(l.rps, l.burst)}
		l.entries[key] = ent
	}
	ent.lastSeen = now
	l.mu.Unlock()

	return ent.lim.AllowN(now, 1)
}

func (l *Limiter) cleanup() {
	cutoff := l.now().Add(-l.idleTTL)

	l.mu.Lock()
	defer l.mu.Unlock()
	for k, ent := range l.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(l.entries, k)
		}
	}
}

// Run evicts idle clients until ctx is done.
func (l *Limiter) Run(ctx context.Context) {
	if l == nil {
		<-ctx.Done()
		return
	}
	t := time.NewTicker(l.cleanupEvery)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			l.cleanup()
		}
	}
}
