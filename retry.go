package gibberify

import (
	"context"
	"errors"
	"time"
)

// RetryConfig holds configuration for retrying remote hyphenation oracles.
type RetryConfig struct {
	MaxRetries int           // Maximum number of retry attempts
	BaseDelay  time.Duration // Initial delay between retries
	MaxDelay   time.Duration // Maximum delay between retries
}

// DefaultRetryConfig returns the retry policy used by the CLI for remote oracles.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  1 * time.Second,
		MaxDelay:   30 * time.Second,
	}
}

// backoff returns the delay before retry number attempt (0-based).
func (c RetryConfig) backoff(attempt int) time.Duration {
	delay := c.BaseDelay * time.Duration(1<<attempt)
	if delay > c.MaxDelay || delay <= 0 {
		delay = c.MaxDelay
	}
	return delay
}

// RetryFunc is a function that can be retried.
type RetryFunc[T any] func() (T, error)

// WithRetry runs fn until it succeeds, fails with a non-retryable error,
// runs out of attempts, or ctx is done.
func WithRetry[T any](ctx context.Context, cfg RetryConfig, fn RetryFunc[T]) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		if !IsRetryable(err) {
			return zero, err
		}
		lastErr = err

		if attempt == cfg.MaxRetries {
			break
		}

		timer := time.NewTimer(cfg.backoff(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	return zero, lastErr
}

// IsRetryable reports whether err is a HyphenationError marked retryable.
// Context errors are never retried.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var hyphErr *HyphenationError
	if errors.As(err, &hyphErr) {
		return hyphErr.Retryable
	}
	return false
}

// RetryableHyphenator wraps a Hyphenator with retry logic.
type RetryableHyphenator struct {
	hyphenator Hyphenator
	config     RetryConfig
}

// NewRetryableHyphenator creates a Hyphenator that retries transient failures.
func NewRetryableHyphenator(h Hyphenator, cfg RetryConfig) *RetryableHyphenator {
	return &RetryableHyphenator{
		hyphenator: h,
		config:     cfg,
	}
}

// Hyphenate implements Hyphenator with retry logic.
func (h *RetryableHyphenator) Hyphenate(ctx context.Context, req HyphenateRequest) ([][]string, error) {
	return WithRetry(ctx, h.config, func() ([][]string, error) {
		return h.hyphenator.Hyphenate(ctx, req)
	})
}

var _ Hyphenator = (*RetryableHyphenator)(nil)
