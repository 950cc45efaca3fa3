package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransient = &StatusError{StatusCode: 503}

type flakyOperation struct {
	calls     int
	failUntil int
	failWith  error
}

func (f *flakyOperation) run(context.Context) error {
	f.calls++
	if f.calls < f.failUntil {
		return f.failWith
	}
	return nil
}

func fastBackoff(attempts int) *ExponentialBackoff {
	return NewExponentialBackoff(attempts, WithInitialDelay(time.Millisecond), WithJitter(0))
}

func TestExecute_SuccessFirstAttempt(t *testing.T) {
	op := &flakyOperation{failUntil: 1, failWith: errTransient}

	err := NewExecutor(NewHTTPErrorClassifier(), fastBackoff(3)).Execute(context.Background(), op.run)

	require.NoError(t, err)
	assert.Equal(t, 1, op.calls)
}

func TestExecute_SuccessAfterRetries(t *testing.T) {
	op := &flakyOperation{failUntil: 3, failWith: errTransient}
	var retries []int

	exec := NewExecutor(NewHTTPErrorClassifier(), fastBackoff(5)).
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			retries = append(retries, attempt)
		})
	err := exec.Execute(context.Background(), op.run)

	require.NoError(t, err)
	assert.Equal(t, 3, op.calls)
	assert.Equal(t, []int{0, 1}, retries)
}

func TestExecute_FatalErrorNotRetried(t *testing.T) {
	fatal := &StatusError{StatusCode: 401}
	op := &flakyOperation{failUntil: 10, failWith: fatal}

	err := NewExecutor(NewHTTPErrorClassifier(), fastBackoff(5)).Execute(context.Background(), op.run)

	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, op.calls)
}

func TestExecute_ExhaustsAttempts(t *testing.T) {
	op := &flakyOperation{failUntil: 100, failWith: errTransient}

	err := NewExecutor(NewHTTPErrorClassifier(), fastBackoff(2)).Execute(context.Background(), op.run)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, 3, op.calls)
}

func TestExecute_ContextCanceledDuringWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	op := &flakyOperation{failUntil: 100, failWith: errTransient}

	exec := NewExecutor(NewHTTPErrorClassifier(),
		NewExponentialBackoff(5, WithInitialDelay(time.Hour), WithMaxDelay(time.Hour), WithJitter(0))).
		WithOnRetry(func(int, error, time.Duration) { cancel() })

	err := exec.Execute(ctx, op.run)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, op.calls)
}

func TestWithOnRetry_DoesNotModifyReceiver(t *testing.T) {
	base := NewExecutor(NewHTTPErrorClassifier(), fastBackoff(1))
	derived := base.WithOnRetry(func(int, error, time.Duration) {})

	assert.Nil(t, base.onRetry)
	assert.NotNil(t, derived.onRetry)
}

func TestNewExecutor_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewExecutor(nil, fastBackoff(1)) })
	assert.Panics(t, func() { NewExecutor(NewHTTPErrorClassifier(), nil) })
}
