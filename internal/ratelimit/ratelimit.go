// Package ratelimit implements a fixed-window attempt counter used to
// throttle login attempts per email address. It's process-local on purpose:
// entries live in a plain map and are lost on restart. Horizontally scaled
// deployments need a shared store instead.
package ratelimit

import (
	"sync"
	"time"
)

type entry struct {
	attempts int
	resetAt  time.Time
}

// Result is the outcome of a single permit check.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry

	maxAttempts int
	window      time.Duration

	now  func() time.Time
	stop chan struct{}
}

// New returns a limiter allowing maxAttempts permits per identifier within
// each fixed window.
func New(maxAttempts int, window time.Duration) *Limiter {
	return &Limiter{
		entries:     make(map[string]*entry),
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

// Check records an attempt for id and reports whether it's still allowed.
// The first attempt for an id, or the first after its window expired, opens
// a fresh window with the counter at 1.
func (l *Limiter) Check(id string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	e, ok := l.entries[id]
	if !ok || now.After(e.resetAt) {
		e = &entry{attempts: 1, resetAt: now.Add(l.window)}
		l.entries[id] = e

		return Result{
			Allowed:   true,
			Remaining: l.maxAttempts - 1,
			ResetAt:   e.resetAt,
		}
	}

	if e.attempts < l.maxAttempts {
		e.attempts++

		return Result{
			Allowed:   true,
			Remaining: l.maxAttempts - e.attempts,
			ResetAt:   e.resetAt,
		}
	}

	return Result{Allowed: false, Remaining: 0, ResetAt: e.resetAt}
}

// Reset drops the entry for id. Called after a successful login so correct
// follow-up attempts aren't penalized.
func (l *Limiter) Reset(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.entries, id)
}

// StartSweeper launches a goroutine that periodically drops expired entries
// to bound memory. Stop it with Stop.
func (l *Limiter) StartSweeper(interval time.Duration) {
	l.stop = make(chan struct{})

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-t.C:
				l.sweep()
			case <-l.stop:
				return
			}
		}
	}()
}

func (l *Limiter) Stop() {
	if l.stop != nil {
		close(l.stop)
	}
}

func (l *Limiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for id, e := range l.entries {
		if now.After(e.resetAt) {
			delete(l.entries, id)
		}
	}
}
