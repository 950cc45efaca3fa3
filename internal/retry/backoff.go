package retry

import (
	"math"
	"math/rand"
	"time"

	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

// ExponentialBackoff grows the delay by multiplier per attempt, capped at
// maxDelay, with symmetric jitter.
type ExponentialBackoff struct {
	initialDelay time.Duration
	maxDelay     time.Duration
	multiplier   float64
	maxAttempts  int

	// jitter is the fractional spread applied to each delay (0.1 = ±10%).
	jitter     float64
	jitterFunc func() float64
}

// BackoffOption configures an ExponentialBackoff.
type BackoffOption func(*ExponentialBackoff)

// WithInitialDelay sets the delay before the first retry.
func WithInitialDelay(d time.Duration) BackoffOption {
	return func(b *ExponentialBackoff) { b.initialDelay = d }
}

// WithMaxDelay caps every delay.
func WithMaxDelay(d time.Duration) BackoffOption {
	return func(b *ExponentialBackoff) { b.maxDelay = d }
}

// WithMultiplier sets the growth factor between attempts.
func WithMultiplier(m float64) BackoffOption {
	return func(b *ExponentialBackoff) { b.multiplier = m }
}

// WithJitter sets the jitter spread; 0 disables it.
func WithJitter(j float64) BackoffOption {
	return func(b *ExponentialBackoff) { b.jitter = j }
}

// WithJitterFunc replaces the random source, for deterministic tests.
func WithJitterFunc(f func() float64) BackoffOption {
	return func(b *ExponentialBackoff) { b.jitterFunc = f }
}

// NewExponentialBackoff creates a strategy allowing maxAttempts retries.
// Defaults come from the sfdelta package constants.
func NewExponentialBackoff(maxAttempts int, opts ...BackoffOption) *ExponentialBackoff {
	b := &ExponentialBackoff{
		initialDelay: sfdelta.DefaultRetryInitialDelay,
		maxDelay:     sfdelta.DefaultRetryMaxDelay,
		multiplier:   2.0,
		maxAttempts:  maxAttempts,
		jitter:       0.1,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NextDelay returns the wait before retry number attempt (zero-based).
func (b *ExponentialBackoff) NextDelay(attempt int) time.Duration {
	delayMs := float64(b.initialDelay.Milliseconds()) * math.Pow(b.multiplier, float64(attempt))
	if maxMs := float64(b.maxDelay.Milliseconds()); delayMs > maxMs {
		delayMs = maxMs
	}

	if b.jitter > 0 {
		random := b.jitterFunc
		if random == nil {
			random = rand.Float64
		}
		// Map [0,1) to [-1,1).
		delayMs *= 1.0 + b.jitter*(random()-0.5)*2.0
	}

	return time.Duration(delayMs) * time.Millisecond
}

// MaxAttempts returns the number of retries allowed.
func (b *ExponentialBackoff) MaxAttempts() int { return b.maxAttempts }

// InitialDelay returns the configured first delay.
func (b *ExponentialBackoff) InitialDelay() time.Duration { return b.initialDelay }

// MaxDelay returns the configured delay cap.
func (b *ExponentialBackoff) MaxDelay() time.Duration { return b.maxDelay }

var _ sfdelta.BackoffStrategy = (*ExponentialBackoff)(nil)
