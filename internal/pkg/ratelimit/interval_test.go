package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllow_EnforcesMinimumInterval(t *testing.T) {
	limiter := NewIntervalLimiter(10 * time.Second)

	current := time.Unix(1_700_000_000, 0)
	limiter.SetClock(func() time.Time { return current })

	assert.True(t, limiter.Allow("session-1"))
	assert.False(t, limiter.Allow("session-1"), "second call inside the window is rejected")

	current = current.Add(9 * time.Second)
	assert.False(t, limiter.Allow("session-1"))

	current = current.Add(1 * time.Second)
	assert.True(t, limiter.Allow("session-1"))
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	limiter := NewIntervalLimiter(10 * time.Second)

	current := time.Unix(1_700_000_000, 0)
	limiter.SetClock(func() time.Time { return current })

	assert.True(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("b"))
	assert.False(t, limiter.Allow("a"))
	assert.False(t, limiter.Allow("b"))
}

func TestAllow_ZeroIntervalAllowsEverything(t *testing.T) {
	limiter := NewIntervalLimiter(0)

	assert.True(t, limiter.Allow("x"))
	assert.True(t, limiter.Allow("x"))
}

func TestForget_ReallowsImmediately(t *testing.T) {
	limiter := NewIntervalLimiter(time.Minute)

	assert.True(t, limiter.Allow("session-1"))
	assert.False(t, limiter.Allow("session-1"))

	limiter.Forget("session-1")
	assert.True(t, limiter.Allow("session-1"))
}
