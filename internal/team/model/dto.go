package model

import "time"

// SetActiveRequest is the body of POST /teams/:id/active.
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetBadgeRequest is the body of POST /teams/:id/badge.
type SetBadgeRequest struct {
	BadgeRef string `json:"badge_ref" binding:"required"`
}

// TeamResponse is the public view of a team.
type TeamResponse struct {
	ID              string `json:"id"`
	ChampionshipID  string `json:"championship_id"`
	Name            string `json:"name"`
	ResponsibleName string `json:"responsible_name"`
	ContactPhone    string `json:"contact_phone,omitempty"`
	BadgeRef        string `json:"badge_ref,omitempty"`
	BadgeURL        string `json:"badge_url,omitempty"`
	Active          bool   `json:"active"`
	Login           string `json:"login"`
	CreatedAt       string `json:"created_at"`
}

// DeleteTeamResponse reports what a team deletion removed.
type DeleteTeamResponse struct {
	TeamID         string `json:"team_id"`
	MatchesDeleted int64  `json:"matches_deleted"`
	GroupID        string `json:"group_id,omitempty"`
}

// ToResponse converts a team to its public view.
func ToResponse(t *Team) TeamResponse {
	resp := TeamResponse{
		ID:              t.ID,
		ChampionshipID:  t.ChampionshipID,
		Name:            t.Name,
		ResponsibleName: t.ResponsibleName,
		ContactPhone:    t.ContactPhone,
		Active:          t.Active,
		Login:           t.Login,
		CreatedAt:       t.CreatedAt.UTC().Format(time.RFC3339),
	}
	if t.BadgeRef != nil {
		resp.BadgeRef = *t.BadgeRef
	}
	return resp
}
