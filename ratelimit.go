package gibberify

import (
	"context"
	"sync"
	"time"
)

// RateLimiter is a token bucket guarding calls to remote oracles.
type RateLimiter struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// RateLimitConfig configures the rate limiter.
type RateLimitConfig struct {
	RequestsPerMinute int // Maximum requests per minute (default: 60)
	BurstSize         int // Maximum burst size (default: same as RPM)
}

// NewRateLimiter creates a rate limiter with a full bucket.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	rpm := float64(cfg.RequestsPerMinute)
	if rpm <= 0 {
		rpm = 60
	}
	burst := float64(cfg.BurstSize)
	if burst <= 0 {
		burst = rpm
	}

	return &RateLimiter{
		tokens:     burst,
		maxTokens:  burst,
		refillRate: rpm / 60.0,
		lastRefill: time.Now(),
	}
}

// Wait blocks until a token is available or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		wait, ok := r.reserve()
		if ok {
			return nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// TryAcquire takes a token without blocking and reports whether it could.
func (r *RateLimiter) TryAcquire() bool {
	_, ok := r.reserve()
	return ok
}

// reserve takes a token if one is available; otherwise it returns how long
// until the next token is due.
func (r *RateLimiter) reserve() (time.Duration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.refill()
	if r.tokens >= 1 {
		r.tokens--
		return 0, true
	}
	missing := 1 - r.tokens
	return time.Duration(missing / r.refillRate * float64(time.Second)), false
}

// refill adds tokens for the elapsed time. Must be called with mu held.
func (r *RateLimiter) refill() {
	now := time.Now()
	r.tokens += now.Sub(r.lastRefill).Seconds() * r.refillRate
	if r.tokens > r.maxTokens {
		r.tokens = r.maxTokens
	}
	r.lastRefill = now
}

// Available returns the current number of available tokens.
func (r *RateLimiter) Available() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refill()
	return r.tokens
}

// RateLimitedHyphenator wraps a Hyphenator with rate limiting.
type RateLimitedHyphenator struct {
	hyphenator Hyphenator
	limiter    *RateLimiter
}

// NewRateLimitedHyphenator creates a rate-limited Hyphenator.
func NewRateLimitedHyphenator(h Hyphenator, cfg RateLimitConfig) *RateLimitedHyphenator {
	return &RateLimitedHyphenator{
		hyphenator: h,
		limiter:    NewRateLimiter(cfg),
	}
}

// Hyphenate implements Hyphenator with rate limiting.
func (h *RateLimitedHyphenator) Hyphenate(ctx context.Context, req HyphenateRequest) ([][]string, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		return nil, &HyphenationError{
			Message:   "rate limit wait cancelled",
			Cause:     err,
			Retryable: false,
		}
	}
	return h.hyphenator.Hyphenate(ctx, req)
}

// Limiter returns the underlying rate limiter for inspection.
func (h *RateLimitedHyphenator) Limiter() *RateLimiter {
	return h.limiter
}

var _ Hyphenator = (*RateLimitedHyphenator)(nil)
