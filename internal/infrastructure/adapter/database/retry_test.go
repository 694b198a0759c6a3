package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/logger"
)

func fastRetryConfig(retries int) RetryConfig {
	return RetryConfig{
		MaxRetries:    retries,
		RetryInterval: time.Millisecond,
		MaxInterval:   5 * time.Millisecond,
	}
}

func TestRetryOnTransientError(t *testing.T) {
	log := logger.NewNoopLogger()

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetryConfig(3), func() error {
			calls++
			if calls < 3 {
				return errors.New("dial tcp 127.0.0.1:5432: connection refused")
			}
			return nil
		}, log)

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on non-transient error", func(t *testing.T) {
		calls := 0
		permanent := errors.New("password authentication failed")
		err := RetryOnTransientError(context.Background(), fastRetryConfig(5), func() error {
			calls++
			return permanent
		}, log)

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetryConfig(2), func() error {
			calls++
			return errors.New("connection reset by peer")
		}, log)

		assert.Error(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("zero retries still runs once", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetryConfig(0), func() error {
			calls++
			return nil
		}, log)

		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("canceled context stops retrying", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		config := fastRetryConfig(5)
		config.RetryInterval = time.Second
		config.MaxInterval = time.Second
		err := RetryOnTransientError(ctx, config, func() error {
			return errors.New("connection refused")
		}, log)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestIsTransientError(t *testing.T) {
	assert.False(t, isTransientError(nil))
	assert.True(t, isTransientError(errors.New("connection refused")))
	assert.True(t, isTransientError(errors.New("FATAL: sorry, too many connections for role")))
	assert.False(t, isTransientError(errors.New("duplicate key value violates unique constraint")))
	assert.False(t, isTransientError(errors.New("could not serialize access due to concurrent update")))
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	config := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: time.Second, JitterFactor: 0.2}

	assert.GreaterOrEqual(t, calculateBackoffWithJitter(0, config), 100*time.Millisecond)
	assert.LessOrEqual(t, calculateBackoffWithJitter(0, config), 120*time.Millisecond)
	assert.GreaterOrEqual(t, calculateBackoffWithJitter(2, config), 400*time.Millisecond)
	assert.LessOrEqual(t, calculateBackoffWithJitter(10, config), 1200*time.Millisecond)
}
