// Package ratelimit provides a token bucket limiter for outbound scraping.
// Marketplace search endpoints tolerate very little traffic, so the comps
// client takes a token before every request.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter implements a token bucket rate limiter.
type Limiter struct {
	tokens     int
	maxTokens  int
	refillRate time.Duration
	mu         sync.Mutex
	lastRefill time.Time
}

// NewLimiter creates a token bucket holding maxTokens, refilling one token
// every refillRate/maxTokens.
func NewLimiter(maxTokens int, refillRate time.Duration) *Limiter {
	return &Limiter{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// Allow consumes a token if one is available.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refillTokens()

	if l.tokens > 0 {
		l.tokens--
		return true
	}

	return false
}

// Wait blocks until a token is available.
func (l *Limiter) Wait() {
	for !l.Allow() {
		time.Sleep(l.refillRate / time.Duration(l.maxTokens))
	}
}

// WaitContext blocks until a token is available or ctx is done.
func (l *Limiter) WaitContext(ctx context.Context) error {
	interval := l.refillRate / time.Duration(l.maxTokens)
	for !l.Allow() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
	return nil
}

// TokensAvailable reports the current token count, refilling first.
func (l *Limiter) TokensAvailable() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refillTokens()
	return l.tokens
}

func (l *Limiter) refillTokens() {
	now := time.Now()
	elapsed := now.Sub(l.lastRefill)
	if elapsed < l.refillRate/time.Duration(l.maxTokens) {
		return
	}

	refill := int(elapsed / (l.refillRate / time.Duration(l.maxTokens)))
	if refill > 0 {
		l.tokens += refill
		if l.tokens > l.maxTokens {
			l.tokens = l.maxTokens
		}
		l.lastRefill = now
	}
}
