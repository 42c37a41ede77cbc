package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckAllowsUpToMax(t *testing.T) {
	l := New(5, time.Minute)

	for i := range 5 {
		r := l.Check("bob@example.com")
		assert.True(t, r.Allowed, "attempt %d should be allowed", i+1)
		assert.Equal(t, 4-i, r.Remaining)
	}

	r := l.Check("bob@example.com")
	assert.False(t, r.Allowed)
	assert.Equal(t, 0, r.Remaining)
}

func TestCheckIsolatesIdentifiers(t *testing.T) {
	l := New(5, time.Minute)

	for range 6 {
		l.Check("victim@example.com")
	}

	r := l.Check("other@example.com")
	assert.True(t, r.Allowed)
	assert.Equal(t, 4, r.Remaining)
}

func TestExpiredWindowOpensFreshOne(t *testing.T) {
	l := New(5, time.Minute)

	now := time.Now()
	l.now = func() time.Time { return now }

	for range 6 {
		l.Check("bob@example.com")
	}
	assert.False(t, l.Check("bob@example.com").Allowed)

	now = now.Add(time.Minute + time.Second)

	r := l.Check("bob@example.com")
	assert.True(t, r.Allowed)
	assert.Equal(t, 4, r.Remaining)
	assert.Equal(t, now.Add(time.Minute), r.ResetAt)
}

func TestResetClearsCounter(t *testing.T) {
	l := New(5, time.Minute)

	for range 6 {
		l.Check("bob@example.com")
	}
	assert.False(t, l.Check("bob@example.com").Allowed)

	l.Reset("bob@example.com")

	r := l.Check("bob@example.com")
	assert.True(t, r.Allowed)
	assert.Equal(t, 4, r.Remaining)
}

func TestSweepDropsExpiredEntries(t *testing.T) {
	l := New(5, time.Minute)

	now := time.Now()
	l.now = func() time.Time { return now }

	l.Check("old@example.com")
	now = now.Add(2 * time.Minute)
	l.Check("fresh@example.com")

	l.sweep()

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.entries, "old@example.com")
	assert.Contains(t, l.entries, "fresh@example.com")
}
