// Package ratelimit provides a per-key minimum-interval gate shared by the
// ride position recorder and the tracked-location publisher. It replaces
// the ad hoc last-call timestamp the callers would otherwise keep.
package ratelimit

import (
	"sync"
	"time"
)

// IntervalLimiter allows at most one call per key within the configured
// interval. The zero interval allows everything.
type IntervalLimiter struct {
	mu       sync.Mutex
	interval time.Duration
	lastCall map[string]time.Time
	now      func() time.Time
}

// NewIntervalLimiter creates a limiter with the given minimum gap
func NewIntervalLimiter(interval time.Duration) *IntervalLimiter {
	return &IntervalLimiter{
		interval: interval,
		lastCall: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Allow reports whether the key may proceed now, recording the call time
// when it may
func (l *IntervalLimiter) Allow(key string) bool {
	if l.interval <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if last, ok := l.lastCall[key]; ok && now.Sub(last) < l.interval {
		return false
	}
	l.lastCall[key] = now
	return true
}

// Forget drops the recorded state for a key, re-allowing it immediately.
// Called when the throttled resource goes away (session ended, track
// revoked) so the map does not grow without bound.
func (l *IntervalLimiter) Forget(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.lastCall, key)
}

// SetClock overrides the time source. Test hook.
func (l *IntervalLimiter) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}
