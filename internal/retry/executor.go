package retry

import (
	"context"
	"time"

	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

// Executor runs an operation, retrying while the classifier reports the
// failure as transient and the strategy allows another attempt.
type Executor struct {
	classifier sfdelta.ErrorClassifier
	strategy   sfdelta.BackoffStrategy
	onRetry    func(attempt int, err error, delay time.Duration)
}

// NewExecutor creates an Executor. Panics if classifier or strategy is nil.
func NewExecutor(classifier sfdelta.ErrorClassifier, strategy sfdelta.BackoffStrategy) *Executor {
	if classifier == nil {
		panic("classifier cannot be nil")
	}
	if strategy == nil {
		panic("strategy cannot be nil")
	}
	return &Executor{classifier: classifier, strategy: strategy}
}

// WithOnRetry returns a copy of e that calls callback before each wait.
// The receiver is not modified.
func (e *Executor) WithOnRetry(callback func(attempt int, err error, delay time.Duration)) *Executor {
	clone := *e
	clone.onRetry = callback
	return &clone
}

// WithLogger returns a copy of e that logs each retry as a warning.
func (e *Executor) WithLogger(logger sfdelta.Logger) *Executor {
	return e.WithOnRetry(func(attempt int, err error, delay time.Duration) {
		logger.Warn("attempt %d failed, retrying in %v: %v", attempt+1, delay, err)
	})
}

// Execute runs operation until it succeeds, fails permanently, the
// strategy's attempts are exhausted, or ctx is done. The last error is
// returned. A negative MaxAttempts retries indefinitely.
func (e *Executor) Execute(ctx context.Context, operation func(ctx context.Context) error) error {
	lastErr := operation(ctx)
	if lastErr == nil || !e.classifier.IsTransient(lastErr) {
		return lastErr
	}

	maxAttempts := e.strategy.MaxAttempts()
	for attempt := 0; maxAttempts < 0 || attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		delay := e.strategy.NextDelay(attempt)
		if e.onRetry != nil {
			e.onRetry(attempt, lastErr, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		lastErr = operation(ctx)
		if lastErr == nil || !e.classifier.IsTransient(lastErr) {
			return lastErr
		}
	}

	return lastErr
}
