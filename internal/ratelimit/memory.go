package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Bucket sweep tuning. A dashboard client that stops polling stops paying
// for its bucket within staleThreshold.
const (
	sweepInterval  = time.Minute
	staleThreshold = 10 * time.Minute
)

// tokenBucket tracks the remaining allowance for one client key. Tokens are
// refilled lazily on access rather than by a timer, so an idle bucket costs
// nothing until the sweep reclaims it.
type tokenBucket struct {
	tokens     float64
	lastAccess time.Time
}

// MemoryLimiter is an in-process Limiter: one token bucket per key, refilled
// at a sustained rate up to a burst ceiling. Suitable here because the portal
// runs as a single process; a multi-instance deployment would need a shared
// store behind the same Limiter interface.
type MemoryLimiter struct {
	rate  float64
	burst float64

	mu      sync.Mutex
	buckets map[string]*tokenBucket

	stopOnce sync.Once
	done     chan struct{}
}

// NewMemoryLimiter creates a limiter allowing `rate` sustained requests per
// second per key with bursts up to `burst`. It starts a sweep goroutine that
// drops idle buckets; call Close to stop it.
func NewMemoryLimiter(rate float64, burst int) *MemoryLimiter {
	m := &MemoryLimiter{
		rate:    rate,
		burst:   float64(burst),
		buckets: make(map[string]*tokenBucket),
		done:    make(chan struct{}),
	}
	go m.sweepLoop()
	return m
}

// Allow takes one token for key, reporting whether the request may proceed.
// It never returns an error; the error slot exists for Limiter
// implementations backed by a network hop.
func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	b := m.buckets[key]
	if b == nil {
		b = &tokenBucket{tokens: m.burst, lastAccess: now}
		m.buckets[key] = b
	} else {
		// Lazy refill for the time since the previous request.
		b.tokens += now.Sub(b.lastAccess).Seconds() * m.rate
		if b.tokens > m.burst {
			b.tokens = m.burst
		}
		b.lastAccess = now
	}

	if b.tokens < 1 {
		return false, nil
	}
	b.tokens--
	return true, nil
}

// Close stops the sweep goroutine. Safe to call more than once.
func (m *MemoryLimiter) Close() error {
	m.stopOnce.Do(func() { close(m.done) })
	return nil
}

func (m *MemoryLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.evictStale()
		}
	}
}

// evictStale drops buckets whose last request predates the stale threshold.
func (m *MemoryLimiter) evictStale() {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-staleThreshold)
	for key, b := range m.buckets {
		if b.lastAccess.Before(cutoff) {
			delete(m.buckets, key)
		}
	}
}
