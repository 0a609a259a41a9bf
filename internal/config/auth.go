package config

import "fmt"

// minSecretLength is the shortest accepted HMAC secret.
const minSecretLength = 16

// AuthConfig holds identity token configuration.
type AuthConfig struct {
	// JWTSecret is the HMAC secret used to verify caller tokens.
	JWTSecret string
	// Issuer is the expected token issuer; empty disables the check.
	Issuer string
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		JWTSecret: GetEnv("AUTH_JWT_SECRET", ""),
		Issuer:    GetEnv("AUTH_JWT_ISSUER", ""),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if len(c.JWTSecret) < minSecretLength {
		return fmt.Errorf("AUTH_JWT_SECRET must be at least %d characters", minSecretLength)
	}
	return nil
}
