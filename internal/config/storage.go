package config

import (
	"fmt"
	"time"
)

// StorageConfig holds S3-compatible object store configuration.
// An empty Bucket disables reference validation.
type StorageConfig struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	// PublicBaseURL is the prefix of public object URLs (CDN or bucket URL).
	PublicBaseURL string
}

// LoadStorageConfigFromEnv loads storage configuration from environment variables.
func LoadStorageConfigFromEnv() StorageConfig {
	return StorageConfig{
		Bucket:          GetEnv("STORAGE_BUCKET", ""),
		Region:          GetEnv("STORAGE_REGION", "auto"),
		Endpoint:        GetEnv("STORAGE_ENDPOINT", ""),
		AccessKeyID:     GetEnv("STORAGE_ACCESS_KEY_ID", ""),
		SecretAccessKey: GetEnv("STORAGE_SECRET_ACCESS_KEY", ""),
		PublicBaseURL:   GetEnv("STORAGE_PUBLIC_BASE_URL", ""),
	}
}

// Enabled reports whether an object store is configured.
func (c StorageConfig) Enabled() bool {
	return c.Bucket != ""
}

// Validate validates storage configuration.
func (c StorageConfig) Validate() error {
	if !c.Enabled() {
		return nil
	}
	if c.AccessKeyID == "" || c.SecretAccessKey == "" {
		return fmt.Errorf("storage credentials are required when STORAGE_BUCKET is set")
	}
	if c.PublicBaseURL == "" {
		return fmt.Errorf("STORAGE_PUBLIC_BASE_URL is required when STORAGE_BUCKET is set")
	}
	return nil
}

// EventsConfig holds the audit event bus configuration.
type EventsConfig struct {
	// NATSURL is the NATS server URL; empty disables publishing.
	NATSURL string
	// AuditSubject is the subject audit entries are published on.
	AuditSubject string
	// AuditTimeout bounds the background sink writes of one audit entry.
	AuditTimeout time.Duration
}

// LoadEventsConfigFromEnv loads event bus configuration from environment variables.
func LoadEventsConfigFromEnv() EventsConfig {
	return EventsConfig{
		NATSURL:      GetEnv("NATS_URL", ""),
		AuditSubject: GetEnv("AUDIT_NATS_SUBJECT", "championship.audit"),
		AuditTimeout: GetEnvDuration("AUDIT_TIMEOUT", 3*time.Second),
	}
}

// Validate validates event bus configuration.
func (c EventsConfig) Validate() error {
	if c.AuditTimeout <= 0 {
		return fmt.Errorf("AuditTimeout must be greater than 0")
	}
	if c.Enabled() && c.AuditSubject == "" {
		return fmt.Errorf("AUDIT_NATS_SUBJECT is required when NATS_URL is set")
	}
	return nil
}

// Enabled reports whether audit publishing is configured.
func (c EventsConfig) Enabled() bool {
	return c.NATSURL != ""
}
