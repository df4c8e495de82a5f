package ratelimiter

import (
	"sync"
	"time"
)

// RatePolicy defines the rate limit configuration for a namespace
type RatePolicy struct {
	MaxRequests int
	Window      time.Duration
}

type window struct {
	count   int
	resetAt time.Time
}

// RateLimiter provides in-memory, fixed-window rate limiting with namespace
// support. It counts requests per namespace:key combination and enforces the
// policy configured for that namespace. Instances are meant to be injected
// into handlers, not shared as package-level state.
//
// Example usage:
//
//	rl := ratelimiter.NewRateLimiter()
//	rl.SetPolicy("upload", 5, time.Minute)
//
//	if !rl.Allow("upload", clientIP) {
//	    return http.StatusTooManyRequests
//	}
type RateLimiter struct {
	mu          sync.Mutex
	windows     map[string]*window    // "namespace:key" -> current window
	policies    map[string]RatePolicy // namespace -> policy
	stopCleanup chan struct{}
	stopped     bool
}

// NewRateLimiter creates a rate limiter and starts a background sweeper that
// drops expired windows to keep memory bounded.
func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		windows:     make(map[string]*window),
		policies:    make(map[string]RatePolicy),
		stopCleanup: make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

// SetPolicy configures the rate limit policy for a namespace. Call during
// initialization, before Allow is used for that namespace.
func (rl *RateLimiter) SetPolicy(namespace string, maxRequests int, window time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.policies[namespace] = RatePolicy{
		MaxRequests: maxRequests,
		Window:      window,
	}
}

// Allow reports whether a request for the given namespace and key should be
// allowed. A namespace without a configured policy fails closed.
func (rl *RateLimiter) Allow(namespace, key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	policy, exists := rl.policies[namespace]
	if !exists {
		return false
	}

	now := time.Now()
	compositeKey := namespace + ":" + key

	w, ok := rl.windows[compositeKey]
	if !ok || now.After(w.resetAt) {
		rl.windows[compositeKey] = &window{count: 1, resetAt: now.Add(policy.Window)}
		return true
	}

	if w.count >= policy.MaxRequests {
		return false
	}

	w.count++
	return true
}

// Reset clears the current window for the given namespace and key.
func (rl *RateLimiter) Reset(namespace, key string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	delete(rl.windows, namespace+":"+key)
}

// Stop terminates the background sweeper. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if !rl.stopped {
		close(rl.stopCleanup)
		rl.stopped = true
	}
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopCleanup:
			return
		case <-ticker.C:
			rl.removeExpired()
		}
	}
}

func (rl *RateLimiter) removeExpired() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, w := range rl.windows {
		if now.After(w.resetAt) {
			delete(rl.windows, key)
		}
	}
}
