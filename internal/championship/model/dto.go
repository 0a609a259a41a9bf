package model

import "time"

// CreateChampionshipRequest is the body of POST /championships.
type CreateChampionshipRequest struct {
	Name    string `json:"name"    binding:"required"`
	Edition string `json:"edition" binding:"required"`
	// MaxTeams defaults to the configured capacity.
	MaxTeams *int `json:"max_teams,omitempty"`
	// ConfirmationPolicy defaults to the configured policy.
	ConfirmationPolicy ConfirmationPolicy `json:"confirmation_policy,omitempty"`
}

// ChampionshipResponse is the public view of a championship.
type ChampionshipResponse struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Edition            string             `json:"edition"`
	Status             Status             `json:"status"`
	RegistrationOpen   bool               `json:"registration_open"`
	MaxTeams           int                `json:"max_teams"`
	ConfirmedTeamCount int                `json:"confirmed_team_count"`
	ConfirmationPolicy ConfirmationPolicy `json:"confirmation_policy"`
	CreatedAt          string             `json:"created_at"`
}

// CloseRegistrationResponse reports the outcome of closing registration.
type CloseRegistrationResponse struct {
	Championship    ChampionshipResponse `json:"championship"`
	FixturesCreated int                  `json:"fixtures_created"`
}

// CloseChampionshipResponse reports the closed championship and its successor, if any.
type CloseChampionshipResponse struct {
	Championship ChampionshipResponse  `json:"championship"`
	Successor    *ChampionshipResponse `json:"successor,omitempty"`
}

// ToResponse converts a championship to its public view.
func ToResponse(c *Championship) ChampionshipResponse {
	return ChampionshipResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Edition:            c.Edition,
		Status:             c.Status,
		RegistrationOpen:   c.RegistrationOpen,
		MaxTeams:           c.MaxTeams,
		ConfirmedTeamCount: c.ConfirmedTeamCount,
		ConfirmationPolicy: c.ConfirmationPolicy,
		CreatedAt:          c.CreatedAt.UTC().Format(time.RFC3339),
	}
}
