package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host string
	// Port accepts both ":8080" and "8080".
	Port string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// ShutdownTimeout bounds the graceful drain of in-flight requests on SIGTERM.
	ShutdownTimeout time.Duration
}

// LoadServerConfigFromEnv loads listener settings from SERVER_* variables.
func LoadServerConfigFromEnv() ServerConfig {
	return ServerConfig{
		Host:            GetEnv("SERVER_HOST", ""),
		Port:            GetEnv("SERVER_PORT", ":8080"),
		ReadTimeout:     GetEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    GetEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:     GetEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		ShutdownTimeout: GetEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

// GetAddress returns the listen address for http.Server.
func (c ServerConfig) GetAddress() string {
	if c.Host == "" {
		return c.Port
	}
	return net.JoinHostPort(c.Host, strings.TrimPrefix(c.Port, ":"))
}

// Validate checks the port and that every timeout is positive.
func (c ServerConfig) Validate() error {
	port, err := cast.ToIntE(strings.TrimPrefix(c.Port, ":"))
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid SERVER_PORT: %q", c.Port)
	}

	timeouts := []struct {
		name  string
		value time.Duration
	}{
		{"ReadTimeout", c.ReadTimeout},
		{"WriteTimeout", c.WriteTimeout},
		{"IdleTimeout", c.IdleTimeout},
		{"ShutdownTimeout", c.ShutdownTimeout},
	}
	for _, tt := range timeouts {
		if tt.value <= 0 {
			return fmt.Errorf("%s must be greater than 0", tt.name)
		}
	}
	return nil
}
