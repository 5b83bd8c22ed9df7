package ratelimit

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Limiter enforces a minimum delay between page visits so the run
// stays polite to the target site.
type Limiter struct {
	minDelay   time.Duration
	maxDelay   time.Duration
	lastAction time.Time
	mu         sync.Mutex
}

// New returns a limiter that waits between minDelay and maxDelay
// (jittered) between actions.
func New(minDelay, maxDelay time.Duration) *Limiter {
	return &Limiter{
		minDelay: minDelay,
		maxDelay: maxDelay,
	}
}

func (l *Limiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	elapsed := time.Since(l.lastAction)
	delay := l.calculateDelay()

	if elapsed < delay {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay - elapsed):
		}
	}

	l.lastAction = time.Now()
	return nil
}

func (l *Limiter) calculateDelay() time.Duration {
	if l.maxDelay <= l.minDelay {
		return l.minDelay
	}
	jitter := time.Duration(rand.Int63n(int64(l.maxDelay - l.minDelay)))
	return l.minDelay + jitter
}
