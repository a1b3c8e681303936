// internal/ai/retry.go
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// BackoffFunc returns how long to wait after a failed attempt (1-based).
type BackoffFunc func(attempt int) time.Duration

// RetryPolicy is a fixed attempt budget with a pluggable wait between
// attempts. Transient network errors and non-2xx responses are treated the
// same: every failure consumes one attempt.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     BackoffFunc
}

// DefaultRetryPolicy matches the provider call discipline: three attempts
// total, waiting 2s then 4s before the retries.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Backoff: func(attempt int) time.Duration {
			return time.Duration(2*attempt) * time.Second
		},
	}
}

// Do runs fn until it succeeds or the attempt budget is spent. The wait
// between attempts honors ctx cancellation. On exhaustion the returned error
// wraps the last failure.
func (p RetryPolicy) Do(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		logrus.WithFields(logrus.Fields{
			"operation": operation,
			"attempt":   attempt,
			"remaining": p.MaxAttempts - attempt,
			"error":     lastErr.Error(),
		}).Warn("attempt failed")

		if attempt == p.MaxAttempts {
			break
		}

		wait := time.Duration(0)
		if p.Backoff != nil {
			wait = p.Backoff(attempt)
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%s canceled after %d attempts: %w", operation, attempt, ctx.Err())
		case <-time.After(wait):
		}
	}

	logrus.WithFields(logrus.Fields{
		"operation": operation,
		"attempts":  p.MaxAttempts,
		"error":     lastErr.Error(),
	}).Error("all attempts failed")

	return fmt.Errorf("%s failed after %d attempts: %w", operation, p.MaxAttempts, lastErr)
}
