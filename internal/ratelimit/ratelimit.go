package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/devhire/devhire/internal/model"
)

// Limiter enforces a minimum delay between consecutive requests to the same
// job source. RapidAPI-metered sources in particular throttle hard on bursts.
type Limiter struct {
	mu       sync.Mutex
	lastCall map[string]time.Time // key: source name
	minDelay time.Duration
}

// NewLimiter creates a limiter that enforces minDelay between consecutive
// requests to the same source.
func NewLimiter(minDelay time.Duration) *Limiter {
	return &Limiter{
		lastCall: make(map[string]time.Time),
		minDelay: minDelay,
	}
}

// Wait blocks until enough time has passed since the last request to the
// given source. Returns an error if the context is cancelled while waiting.
func (l *Limiter) Wait(ctx context.Context, source string) error {
	l.mu.Lock()
	last, ok := l.lastCall[source]
	now := time.Now()

	if !ok {
		// First request for this source — no wait needed.
		l.lastCall[source] = now
		l.mu.Unlock()
		return nil
	}

	elapsed := now.Sub(last)
	if elapsed >= l.minDelay {
		l.lastCall[source] = now
		l.mu.Unlock()
		return nil
	}

	remaining := l.minDelay - elapsed
	l.mu.Unlock()

	select {
	case <-ctx.Done():
		return fmt.Errorf("rate limiter wait for %s: %w", source, ctx.Err())
	case <-time.After(remaining):
	}

	// Record the actual time after waiting.
	l.mu.Lock()
	l.lastCall[source] = time.Now()
	l.mu.Unlock()

	return nil
}

// Source is a decorator that enforces per-source rate limiting before
// delegating to the wrapped source.
type Source struct {
	inner   model.Source
	limiter *Limiter
}

// NewSource wraps a source with rate limiting. All sources sharing one quota
// should share the same limiter instance.
func NewSource(inner model.Source, limiter *Limiter) *Source {
	return &Source{
		inner:   inner,
		limiter: limiter,
	}
}

// Name delegates to the wrapped source.
func (s *Source) Name() string { return s.inner.Name() }

// Search waits for the rate limiter to allow a request, then delegates to
// the wrapped source.
func (s *Source) Search(ctx context.Context, req model.SearchRequest) ([]model.Job, error) {
	if err := s.limiter.Wait(ctx, s.inner.Name()); err != nil {
		return nil, err
	}
	return s.inner.Search(ctx, req)
}
