package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryLimiter_Burst(t *testing.T) {
	t.Parallel()

	l := NewInMemoryLimiter(30, time.Minute, 10)
	fixed := time.Now()
	l.now = func() time.Time { return fixed }

	for i := 0; i < 10; i++ {
		assert.True(t, l.Allow("10.0.0.1"), "request %d within burst", i)
	}
	assert.False(t, l.Allow("10.0.0.1"), "burst+1 must be refused")
	assert.True(t, l.Allow("10.0.0.2"), "other clients are unaffected")
}

func TestInMemoryLimiter_Refill(t *testing.T) {
	t.Parallel()

	l := NewInMemoryLimiter(30, time.Minute, 1)
	now := time.Now()
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("k"))
	assert.False(t, l.Allow("k"))

	now = now.Add(2 * time.Second)
	assert.True(t, l.Allow("k"))
}

func TestInMemoryLimiter_PrunesIdleClients(t *testing.T) {
	t.Parallel()

	l := NewInMemoryLimiter(30, time.Minute, 5)
	now := time.Now()
	l.now = func() time.Time { return now }

	l.Allow("a")
	l.Allow("b")
	assert.Equal(t, 2, l.Len())

	now = now.Add(2 * time.Minute)
	l.Allow("c")
	assert.Equal(t, 1, l.Len())
}
