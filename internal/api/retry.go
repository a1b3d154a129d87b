package api

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"
)

// RetryConfig configures retry behavior for failed HTTP requests.
type RetryConfig struct {
	// MaxRetries is the maximum number of retry attempts after the
	// initial request.
	MaxRetries int
	// BaseDelay is the delay before the first retry; subsequent delays
	// double each attempt.
	BaseDelay time.Duration
	// MaxDelay caps the computed backoff delay.
	MaxDelay time.Duration
}

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		MaxDelay:   60 * time.Second,
	}
}

// Delay calculates the exponential backoff delay for the given attempt
// (0-based): BaseDelay * 2^attempt, capped at MaxDelay.
func (r *RetryConfig) Delay(attempt int) time.Duration {
	delay := float64(r.BaseDelay) * math.Pow(2, float64(attempt))
	if delay > float64(r.MaxDelay) {
		delay = float64(r.MaxDelay)
	}
	return time.Duration(delay)
}

// RetryAfter returns the server-requested wait from a 429 response,
// falling back to exponential backoff when the header is absent or not an
// integer number of seconds.
func (r *RetryConfig) RetryAfter(header http.Header, attempt int) time.Duration {
	if v := header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return r.Delay(attempt)
}

// Wait sleeps for the given delay, returning early if the context is
// cancelled.
func (r *RetryConfig) Wait(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
