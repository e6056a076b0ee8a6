// Package ratelimit provides spam protection for the public form
// endpoints.
//
// The two forms (membership, contact) accept anonymous POSTs, so the
// limiter is keyed by client IP. Counting uses a short window with a
// separate, longer cooldown: a handful of submissions inside the window
// is fine, but exceeding it locks the IP out for the cooldown period.
package ratelimit

import (
	"sync"
	"time"
)

// formBucket tracks one client's submission count and cooldown state.
type formBucket struct {
	count         int
	windowStart   time.Time
	cooldownUntil time.Time // zero value = no cooldown
}

// FormRateLimiter limits form submissions per client key.
type FormRateLimiter struct {
	mu          sync.Mutex
	buckets     map[string]*formBucket
	maxSubmits  int
	window      time.Duration
	cooldown    time.Duration
	stopCleanup chan struct{}
}

// NewFormRateLimiter builds a limiter allowing maxSubmits per window, with
// a cooldown penalty once the limit is exceeded, and starts the background
// bucket cleanup.
func NewFormRateLimiter(maxSubmits int, window, cooldown time.Duration) *FormRateLimiter {
	rl := &FormRateLimiter{
		buckets:     make(map[string]*formBucket),
		maxSubmits:  maxSubmits,
		window:      window,
		cooldown:    cooldown,
		stopCleanup: make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Allow reports whether the client identified by key may submit now.
func (rl *FormRateLimiter) Allow(key string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, exists := rl.buckets[key]
	if !exists {
		rl.buckets[key] = &formBucket{count: 1, windowStart: now}
		return true
	}

	if now.Before(b.cooldownUntil) {
		return false
	}

	if now.Sub(b.windowStart) >= rl.window {
		// Window expired — start a fresh one.
		b.count = 1
		b.windowStart = now
		b.cooldownUntil = time.Time{}
		return true
	}

	b.count++
	if b.count > rl.maxSubmits {
		b.cooldownUntil = now.Add(rl.cooldown)
		return false
	}

	return true
}

// Stop terminates the cleanup goroutine.
func (rl *FormRateLimiter) Stop() {
	close(rl.stopCleanup)
}

// cleanupLoop periodically drops buckets that are past both their window
// and cooldown, so idle clients do not accumulate memory.
func (rl *FormRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			rl.mu.Lock()
			for key, b := range rl.buckets {
				if now.Sub(b.windowStart) >= rl.window && now.After(b.cooldownUntil) {
					delete(rl.buckets, key)
				}
			}
			rl.mu.Unlock()
		case <-rl.stopCleanup:
			return
		}
	}
}
