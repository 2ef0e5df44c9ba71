package weather

import (
	"context"
	"errors"
	"time"
)

// RetryConfig configures exponential backoff for archive requests.
type RetryConfig struct {
	MaxAttempts int           // total attempts, including the first
	BaseDelay   time.Duration // delay before the second attempt
	MaxDelay    time.Duration // upper bound for any single delay
	Multiplier  float64       // growth factor between delays
}

// DefaultRetryConfig returns the backoff used when none is configured.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   200 * time.Millisecond,
		MaxDelay:    2 * time.Second,
		Multiplier:  2.0,
	}
}

// permanentError marks a failure that retrying cannot fix, such as a 4xx
// response or an undecodable body.
type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

func permanent(err error) error { return &permanentError{err: err} }

// retryWithBackoff calls fn until it succeeds, returns a permanent error,
// the attempts run out or ctx is done.
func retryWithBackoff[T any](ctx context.Context, cfg RetryConfig, fn func() (T, error)) (T, error) {
	var zero T
	attempts := max(cfg.MaxAttempts, 1)
	delay := cfg.BaseDelay

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		v, err := fn()
		if err == nil {
			return v, nil
		}
		lastErr = err

		var p *permanentError
		if errors.As(err, &p) {
			return zero, p.err
		}
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}

		if attempt < attempts-1 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
			delay = time.Duration(float64(delay) * cfg.Multiplier)
			if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
				delay = cfg.MaxDelay
			}
		}
	}
	return zero, lastErr
}
