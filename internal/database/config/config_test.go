package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		cfg := LoadConfigFromEnv()
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, "group_champs", cfg.DBName)
		assert.Equal(t, "5432", cfg.Port)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_NAME", "champs_test")
		t.Setenv("DB_PORT", "6543")

		cfg := LoadConfigFromEnv()
		assert.Equal(t, "db.internal", cfg.Host)
		assert.Equal(t, "champs_test", cfg.DBName)
		assert.Equal(t, "6543", cfg.Port)
	})
}

func TestBuildDSN(t *testing.T) {
	dsn := BuildDSN(Config{
		Host: "localhost", User: "u", Password: "p", DBName: "d",
		Port: "5432", SSLMode: "disable", TimeZone: "UTC",
	})
	assert.Equal(t, "host=localhost user=u password=p dbname=d port=5432 sslmode=disable TimeZone=UTC", dsn)
}

func TestSanitizeError(t *testing.T) {
	assert.NoError(t, SanitizeError(nil, Config{}))

	cfg := Config{Password: "s3cret"}
	err := SanitizeError(errors.New("auth failed for password=s3cret"), cfg)
	assert.NotContains(t, err.Error(), "s3cret")
	assert.Contains(t, err.Error(), "***")
	assert.Contains(t, err.Error(), "failed to connect to database")
}

func TestLoadRetryConfigFromEnv(t *testing.T) {
	t.Setenv("DB_RETRY_MAX_ATTEMPTS", "7")
	t.Setenv("DB_RETRY_INITIAL_DELAY", "250ms")
	t.Setenv("DB_RETRY_MULTIPLIER", "1.5")

	cfg := LoadRetryConfigFromEnv()
	assert.Equal(t, 7, cfg.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.InitialDelay)
	assert.Equal(t, 1.5, cfg.Multiplier)
	assert.NotEmpty(t, cfg.RetryableErrors)
}

func TestLoadPoolConfigFromEnv(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "40")
	t.Setenv("DB_CONN_MAX_LIFETIME", "1m")

	cfg := LoadPoolConfigFromEnv()
	assert.Equal(t, 40, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)
	assert.Equal(t, time.Minute, cfg.ConnMaxLifetime)
}
