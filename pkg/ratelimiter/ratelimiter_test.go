package ratelimiter

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateLimiter(t *testing.T) {
	rl := NewRateLimiter()
	require.NotNil(t, rl)
	assert.NotNil(t, rl.windows)
	assert.NotNil(t, rl.policies)

	rl.Stop()
}

func TestRateLimiter_Allow_BasicLimiting(t *testing.T) {
	rl := NewRateLimiter()
	defer rl.Stop()

	rl.SetPolicy("upload", 3, time.Second)
	key := "203.0.113.7"

	assert.True(t, rl.Allow("upload", key), "first request should be allowed")
	assert.True(t, rl.Allow("upload", key), "second request should be allowed")
	assert.True(t, rl.Allow("upload", key), "third request should be allowed")

	assert.False(t, rl.Allow("upload", key), "fourth request should be blocked")
	assert.False(t, rl.Allow("upload", key), "fifth request should be blocked")
}

func TestRateLimiter_Allow_MissingPolicy(t *testing.T) {
	rl := NewRateLimiter()
	defer rl.Stop()

	// Fail closed when the namespace has no policy
	assert.False(t, rl.Allow("nonexistent", "203.0.113.7"))
}

func TestRateLimiter_Allow_WindowExpiration(t *testing.T) {
	rl := NewRateLimiter()
	defer rl.Stop()

	rl.SetPolicy("upload", 2, 300*time.Millisecond)
	key := "203.0.113.7"

	assert.True(t, rl.Allow("upload", key))
	assert.True(t, rl.Allow("upload", key))
	assert.False(t, rl.Allow("upload", key), "should be blocked inside window")

	time.Sleep(400 * time.Millisecond)

	assert.True(t, rl.Allow("upload", key), "should be allowed after window expires")
}

func TestRateLimiter_Allow_DifferentKeys(t *testing.T) {
	rl := NewRateLimiter()
	defer rl.Stop()

	rl.SetPolicy("upload", 2, time.Second)

	assert.True(t, rl.Allow("upload", "198.51.100.1"))
	assert.True(t, rl.Allow("upload", "198.51.100.1"))
	assert.False(t, rl.Allow("upload", "198.51.100.1"))

	// Other keys are unaffected
	assert.True(t, rl.Allow("upload", "198.51.100.2"))
}

func TestRateLimiter_MultipleNamespaces(t *testing.T) {
	rl := NewRateLimiter()
	defer rl.Stop()

	rl.SetPolicy("upload", 1, time.Second)
	rl.SetPolicy("api", 5, time.Second)

	key := "203.0.113.7"

	assert.True(t, rl.Allow("upload", key))
	assert.False(t, rl.Allow("upload", key), "upload namespace should be exhausted")

	// The api namespace has its own counter
	assert.True(t, rl.Allow("api", key))
}

func TestRateLimiter_Reset(t *testing.T) {
	rl := NewRateLimiter()
	defer rl.Stop()

	rl.SetPolicy("upload", 1, time.Minute)
	key := "203.0.113.7"

	assert.True(t, rl.Allow("upload", key))
	assert.False(t, rl.Allow("upload", key))

	rl.Reset("upload", key)

	assert.True(t, rl.Allow("upload", key), "should be allowed after reset")
}

func TestRateLimiter_ConcurrentAccess(t *testing.T) {
	rl := NewRateLimiter()
	defer rl.Stop()

	rl.SetPolicy("upload", 50, time.Second)

	var wg sync.WaitGroup
	allowed := make(chan bool, 100)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			allowed <- rl.Allow("upload", fmt.Sprintf("host-%d", n%2))
		}(i)
	}
	wg.Wait()
	close(allowed)

	count := 0
	for ok := range allowed {
		if ok {
			count++
		}
	}
	// 2 keys x 50 requests allowed each
	assert.Equal(t, 100, count)

	assert.False(t, rl.Allow("upload", "host-0"))
	assert.False(t, rl.Allow("upload", "host-1"))
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter()
	rl.Stop()
	assert.NotPanics(t, func() { rl.Stop() })
}
