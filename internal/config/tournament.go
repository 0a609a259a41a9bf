package config

import "fmt"

// Confirmation policy names accepted in TOURNAMENT_CONFIRMATION_POLICY.
const (
	PolicyAdminReview     = "admin_review"
	PolicyWinnerCertifies = "winner_certifies"
)

// TournamentConfig holds championship engine settings.
type TournamentConfig struct {
	// PoolSize is the maximum number of non-finished championships.
	PoolSize int
	// DefaultMaxTeams is the capacity used when a championship is created without one.
	DefaultMaxTeams int
	// ConfirmationPolicy is the default result confirmation policy for new championships.
	ConfirmationPolicy string
	// CredentialDomain is the domain used for generated team logins.
	CredentialDomain string
}

// LoadTournamentConfigFromEnv loads tournament configuration from environment variables.
func LoadTournamentConfigFromEnv() TournamentConfig {
	return TournamentConfig{
		PoolSize:           GetEnvInt("TOURNAMENT_POOL_SIZE", 4),
		DefaultMaxTeams:    GetEnvInt("TOURNAMENT_DEFAULT_MAX_TEAMS", 16),
		ConfirmationPolicy: GetEnv("TOURNAMENT_CONFIRMATION_POLICY", PolicyAdminReview),
		CredentialDomain:   GetEnv("CREDENTIAL_DOMAIN", "copamaster.com"),
	}
}

// Validate validates tournament configuration.
func (c TournamentConfig) Validate() error {
	if c.PoolSize <= 0 {
		return fmt.Errorf("PoolSize must be greater than 0")
	}
	if c.DefaultMaxTeams <= 0 {
		return fmt.Errorf("DefaultMaxTeams must be greater than 0")
	}
	if c.ConfirmationPolicy != PolicyAdminReview && c.ConfirmationPolicy != PolicyWinnerCertifies {
		return fmt.Errorf("invalid confirmation policy: %s (must be: %s, %s)",
			c.ConfirmationPolicy, PolicyAdminReview, PolicyWinnerCertifies)
	}
	if c.CredentialDomain == "" {
		return fmt.Errorf("CredentialDomain is required")
	}
	return nil
}
