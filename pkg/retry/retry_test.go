package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(attempts int) Config {
	cfg := DefaultConfig()
	cfg.MaxAttempts = attempts
	cfg.InitialDelay = 5 * time.Millisecond
	cfg.MaxDelay = 20 * time.Millisecond
	return cfg
}

func TestDo(t *testing.T) {
	t.Run("success on first attempt", func(t *testing.T) {
		attempts := 0
		err := Do(context.Background(), fastConfig(3), func() error {
			attempts++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("succeeds after transient failures", func(t *testing.T) {
		attempts := 0
		var notified []int
		cfg := fastConfig(3)
		cfg.OnRetry = func(attempt int, _ error, _ time.Duration) {
			notified = append(notified, attempt)
		}

		err := Do(context.Background(), cfg, func() error {
			attempts++
			if attempts < 3 {
				return errors.New("dial tcp: connection refused")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
		assert.Equal(t, []int{1, 2}, notified)
	})

	t.Run("returns last error after max attempts", func(t *testing.T) {
		attempts := 0
		err := Do(context.Background(), fastConfig(3), func() error {
			attempts++
			return errors.New("persistent error")
		})
		require.Error(t, err)
		assert.Equal(t, 3, attempts)
		assert.Contains(t, err.Error(), "persistent error")
	})

	t.Run("stops on non-retryable error", func(t *testing.T) {
		cfg := fastConfig(5)
		cfg.RetryableErrors = []string{"connection refused"}

		attempts := 0
		err := Do(context.Background(), cfg, func() error {
			attempts++
			return errors.New("password authentication failed")
		})
		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("zero attempts is invalid", func(t *testing.T) {
		attempts := 0
		err := Do(context.Background(), fastConfig(0), func() error {
			attempts++
			return nil
		})
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Equal(t, 0, attempts)
	})

	t.Run("context timeout interrupts waiting", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()

		cfg := fastConfig(10)
		cfg.InitialDelay = 100 * time.Millisecond
		cfg.MaxDelay = time.Second

		attempts := 0
		err := Do(ctx, cfg, func() error {
			attempts++
			return errors.New("temporary")
		})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, attempts, 10)
	})
}

func TestDoWithResult(t *testing.T) {
	attempts := 0
	result, err := DoWithResult(context.Background(), fastConfig(3), func() (int, error) {
		attempts++
		if attempts < 2 {
			return 0, errors.New("i/o timeout")
		}
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestCalculateDelay(t *testing.T) {
	cfg := Config{InitialDelay: time.Second, MaxDelay: 10 * time.Second, Multiplier: 2}

	assert.Equal(t, time.Second, calculateDelay(-1, cfg))
	assert.Equal(t, time.Second, calculateDelay(0, cfg))
	assert.Equal(t, 4*time.Second, calculateDelay(2, cfg))
	assert.Equal(t, 10*time.Second, calculateDelay(6, cfg))
}

func TestAddJitter(t *testing.T) {
	for i := 0; i < 50; i++ {
		jittered := addJitter(time.Second)
		assert.GreaterOrEqual(t, jittered, 900*time.Millisecond)
		assert.LessOrEqual(t, jittered, 1100*time.Millisecond)
	}
}

func TestIsRetryableError(t *testing.T) {
	pg := PostgresConfig()
	assert.False(t, IsRetryableError(nil, pg))
	assert.True(t, IsRetryableError(errors.New("FATAL: the database system is starting up"), pg))
	assert.True(t, IsRetryableError(errors.New("DIAL TCP 127.0.0.1:5432"), pg))
	assert.False(t, IsRetryableError(errors.New("relation does not exist"), pg))
	assert.True(t, IsRetryableError(errors.New("anything"), DefaultConfig()))
	assert.True(t, IsRetryableError(errors.New("nats: no servers available for connection"), NATSConfig()))
}
